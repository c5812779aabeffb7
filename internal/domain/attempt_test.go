package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestAttemptFinishesOnce(t *testing.T) {
	a := NewAttempt(ResultEvent{ProblemID: "p5_600_001"})
	if s := a.Snapshot(); s.State != AttemptPending || s.FinishedAt != nil {
		t.Fatalf("expected pending attempt, got %+v", s)
	}

	a.Succeed(json.RawMessage(`{"status":"ok"}`))
	a.Fail("late failure")

	select {
	case <-a.Done():
	default:
		t.Fatalf("expected done channel to be closed")
	}
	s := a.Snapshot()
	if s.State != AttemptDelivered {
		t.Fatalf("expected delivered, got %s", s.State)
	}
	if s.Error != "" {
		t.Fatalf("expected no error, got %q", s.Error)
	}
	if string(s.RemoteResponse) != `{"status":"ok"}` {
		t.Fatalf("unexpected response %s", s.RemoteResponse)
	}
	if !a.FinishedBefore(time.Now().Add(time.Second)) {
		t.Fatalf("expected attempt to be finished")
	}
}

func TestAttemptPendingIsNeverFinished(t *testing.T) {
	a := NewAttempt(ResultEvent{})
	if a.FinishedBefore(time.Now().Add(time.Hour)) {
		t.Fatalf("pending attempt must not report finished")
	}
}
