package domain

import "testing"

func TestBuildStatusRecordLastWriteWins(t *testing.T) {
	record := BuildStatusRecord([]ResultRecord{
		{ProblemID: "p5_600_001", Result: StatusIncorrect},
		{ProblemID: "p5_600_002", Result: StatusCorrect},
		{ProblemID: "p5_600_001", Result: StatusCorrect},
	})
	if got := record.Status("p5_600_001"); got != StatusCorrect {
		t.Fatalf("expected last entry to win, got %q", got)
	}
	if got := record.Status("p5_600_002"); got != StatusCorrect {
		t.Fatalf("expected correct, got %q", got)
	}
}

func TestBuildStatusRecordDefaults(t *testing.T) {
	record := BuildStatusRecord([]ResultRecord{
		{ProblemID: "p5_600_001", Result: ""},
		{ProblemID: "p5_600_002", Result: "skipped"},
	})
	for _, id := range []string{"p5_600_001", "p5_600_002", "p5_600_003"} {
		if got := record.Status(id); got != StatusUnanswered {
			t.Fatalf("%s: expected unanswered, got %q", id, got)
		}
	}
	if len(BuildStatusRecord(nil)) != 0 {
		t.Fatalf("expected empty record for nil input")
	}
}
