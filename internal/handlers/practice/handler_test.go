package practice

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gorilla/mux"

	"gitlab.com/toeic-drill.net/internal/adapter/catalog"
	"gitlab.com/toeic-drill.net/internal/adapter/logging"
	"gitlab.com/toeic-drill.net/internal/adapter/webhook"
	"gitlab.com/toeic-drill.net/internal/config"
	"gitlab.com/toeic-drill.net/internal/core/services/practice"
	"gitlab.com/toeic-drill.net/internal/core/services/relay"
	"gitlab.com/toeic-drill.net/internal/core/services/submission"
	"gitlab.com/toeic-drill.net/internal/domain"
)

const part5Set = `[
  {"id":"p5_600_001","content":"","questions":[{"id":"q1","problem":"The report ___ yesterday.","options":{"A":"submit","B":"submitted","C":"was submitted","D":"submitting"},"answer":"C","explanation":"Passive voice."}]},
  {"id":"p5_600_002","content":"","questions":[{"id":"q1","problem":"Please ___ the form.","options":{"A":"complete","B":"completes","C":"completed","D":"completing"},"answer":"A","explanation":"Imperative."}]}
]`

type staticEndpoint struct{ url string }

func (e *staticEndpoint) Get() string                               { return e.url }
func (e *staticEndpoint) Set(ctx context.Context, url string) error { e.url = url; return nil }

// fakeSheet stands in for the external spreadsheet endpoint
type fakeSheet struct {
	mu     sync.Mutex
	posted []domain.ResultEvent
	fail   atomic.Bool
}

func (f *fakeSheet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if f.fail.Load() {
		w.WriteHeader(http.StatusBadGateway)
		return
	}
	if r.Method == http.MethodPost {
		data, _ := io.ReadAll(r.Body)
		var event domain.ResultEvent
		_ = json.Unmarshal(data, &event)
		f.mu.Lock()
		f.posted = append(f.posted, event)
		f.mu.Unlock()
		_, _ = w.Write([]byte(`{"status":"success"}`))
		return
	}
	_, _ = w.Write([]byte(`{"status":"success","data":[{"problemId":"p5_600_002","result":"incorrect"}]}`))
}

type fixture struct {
	router *mux.Router
	subs   *submission.SubmissionService
	sheet  *fakeSheet
}

func newFixture(t *testing.T, withEndpoint bool) *fixture {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "part5"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "part5", "600.json"), []byte(part5Set), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	sheet := &fakeSheet{}
	ext := httptest.NewServer(sheet)
	t.Cleanup(ext.Close)

	endpointStore := &staticEndpoint{}
	if withEndpoint {
		endpointStore.url = ext.URL
	}

	log := logging.NewNopLogger()
	relaySvc := relay.NewRelayService(webhook.NewClient(&config.RelayConfig{}, log), log)
	subs := submission.NewSubmissionService(relaySvc, log)
	svc := practice.NewPracticeService(catalog.NewFileCatalog(dir, log), relaySvc, subs, endpointStore, log)

	r := mux.NewRouter()
	NewPracticeHandler(svc, subs, log).RegisterRoutes(r)
	return &fixture{router: r, subs: subs, sheet: sheet}
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestCatalogRoutes(t *testing.T) {
	f := newFixture(t, false)

	rec := f.do(http.MethodGet, "/api/parts", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"part5"`) {
		t.Fatalf("parts: %d %s", rec.Code, rec.Body.String())
	}

	rec = f.do(http.MethodGet, "/api/parts/part5/difficulties", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"600"`) {
		t.Fatalf("difficulties: %d %s", rec.Code, rec.Body.String())
	}

	if rec = f.do(http.MethodGet, "/api/parts/part9/difficulties", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown part, got %d", rec.Code)
	}
}

func TestListProblemsWithRecordedResults(t *testing.T) {
	f := newFixture(t, true)

	rec := f.do(http.MethodGet, "/api/problems/part5/600", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var list domain.ProblemList
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !list.ResultsLoaded || len(list.Problems) != 2 {
		t.Fatalf("unexpected list %+v", list)
	}
	if list.Problems[0].Status != domain.StatusUnanswered || list.Problems[1].Status != domain.StatusIncorrect {
		t.Fatalf("unexpected statuses %+v", list.Problems)
	}
}

func TestListProblemsRemoteDown(t *testing.T) {
	f := newFixture(t, true)
	f.sheet.fail.Store(true)

	rec := f.do(http.MethodGet, "/api/problems/part5/600", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var list domain.ProblemList
	_ = json.Unmarshal(rec.Body.Bytes(), &list)
	for _, p := range list.Problems {
		if p.Status != domain.StatusUnanswered {
			t.Fatalf("expected unanswered, got %+v", p)
		}
	}
}

func TestGetProblem(t *testing.T) {
	f := newFixture(t, false)

	rec := f.do(http.MethodGet, "/api/problems/part5/600/p5_600_001", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "Passive voice") || strings.Contains(rec.Body.String(), `"answer"`) {
		t.Fatalf("answer key leaked: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"nextProblemId":"p5_600_002"`) {
		t.Fatalf("missing next id: %s", rec.Body.String())
	}

	if rec = f.do(http.MethodGet, "/api/problems/part5/600/p5_600_404", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if rec = f.do(http.MethodGet, "/api/problems/part5/650/p5_600_001", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAnswerDispatchesAttempt(t *testing.T) {
	f := newFixture(t, true)

	rec := f.do(http.MethodPost, "/api/problems/part5/600/p5_600_001/answers", `{"answers":{"q1":"C"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var outcome domain.AnswerOutcome
	if err := json.Unmarshal(rec.Body.Bytes(), &outcome); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if outcome.Status != domain.StatusCorrect || outcome.AttemptID == nil {
		t.Fatalf("unexpected outcome %+v", outcome)
	}

	f.subs.Wait()

	rec = f.do(http.MethodGet, "/api/attempts/"+outcome.AttemptID.String(), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var snap domain.AttemptSnapshot
	_ = json.Unmarshal(rec.Body.Bytes(), &snap)
	if snap.State != domain.AttemptDelivered {
		t.Fatalf("expected delivered, got %+v", snap)
	}

	f.sheet.mu.Lock()
	defer f.sheet.mu.Unlock()
	if len(f.sheet.posted) != 1 || f.sheet.posted[0].ProblemID != "p5_600_001" || f.sheet.posted[0].Result != domain.StatusCorrect {
		t.Fatalf("unexpected posted events %+v", f.sheet.posted)
	}
}

func TestAnswerRemoteFailureKeepsGrade(t *testing.T) {
	f := newFixture(t, true)
	f.sheet.fail.Store(true)

	rec := f.do(http.MethodPost, "/api/problems/part5/600/p5_600_002/answers", `{"answers":{"q1":"B"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var outcome domain.AnswerOutcome
	_ = json.Unmarshal(rec.Body.Bytes(), &outcome)
	if outcome.Status != domain.StatusIncorrect {
		t.Fatalf("expected incorrect, got %s", outcome.Status)
	}
	f.subs.Wait()
}

func TestAnswerValidation(t *testing.T) {
	f := newFixture(t, false)

	cases := map[string]struct {
		target string
		body   string
		code   int
	}{
		"malformed":   {"/api/problems/part5/600/p5_600_001/answers", `{`, http.StatusBadRequest},
		"unanswered":  {"/api/problems/part5/600/p5_600_001/answers", `{"answers":{}}`, http.StatusBadRequest},
		"bad option":  {"/api/problems/part5/600/p5_600_001/answers", `{"answers":{"q1":"E"}}`, http.StatusBadRequest},
		"unknown":     {"/api/problems/part5/600/p5_600_099/answers", `{"answers":{"q1":"A"}}`, http.StatusNotFound},
		"bad attempt": {"/api/attempts/not-a-uuid", "", http.StatusBadRequest},
	}
	for name, tc := range cases {
		method := http.MethodPost
		if strings.HasPrefix(tc.target, "/api/attempts") {
			method = http.MethodGet
		}
		if rec := f.do(method, tc.target, tc.body); rec.Code != tc.code {
			t.Fatalf("%s: expected %d, got %d", name, tc.code, rec.Code)
		}
	}
}
