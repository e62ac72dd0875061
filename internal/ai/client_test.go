package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dryleaf/dryleaf/internal/model"
)

func cannedServer(t *testing.T, payload string, capture *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			var req generateRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decode request: %v", err)
			}
			if len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
				*capture = req.Contents[0].Parts[0].Text
			}
		}
		encoded, _ := json.Marshal(payload)
		fmt.Fprintf(w, `{"candidates":[{"content":{"parts":[{"text":%s}]}}]}`, encoded)
	}))
}

func testClient(srv *httptest.Server) *Client {
	return &Client{APIKey: "test-key", BaseURL: srv.URL, HTTPClient: srv.Client()}
}

func TestAvailable(t *testing.T) {
	if New("").Available() {
		t.Fatal("expected client without key to be unavailable")
	}
	if !New("k").Available() {
		t.Fatal("expected keyed client to be available")
	}
}

func TestPrioritizeUnavailable(t *testing.T) {
	_, err := New("").Prioritize(context.Background(), []Item{{ID: "1", Text: "x"}})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestPrioritizeFiltersUnknownAndInvalid(t *testing.T) {
	var prompt string
	srv := cannedServer(t, `[
		{"id":"1","priority":"high"},
		{"id":"ghost","priority":"low"},
		{"id":"2","priority":"urgent"}
	]`, &prompt)
	defer srv.Close()

	got, err := testClient(srv).Prioritize(context.Background(), []Item{
		{ID: "1", Text: "write report"},
		{ID: "2", Text: "water plants"},
	})
	if err != nil {
		t.Fatalf("prioritize: %v", err)
	}
	if len(got) != 1 || got[0].ID != "1" || got[0].Priority != model.PriorityHigh {
		t.Fatalf("unexpected assignments: %#v", got)
	}
	if !strings.Contains(prompt, "write report") {
		t.Fatalf("expected task text in prompt, got %q", prompt)
	}
}

func TestApplyAssignmentsSortsByRank(t *testing.T) {
	tasks := []model.Task{
		{ID: "a", Text: "a", Priority: model.PriorityMedium, SubjectID: "s"},
		{ID: "b", Text: "b", Priority: model.PriorityMedium, SubjectID: "s"},
		{ID: "c", Text: "c", Priority: model.PriorityMedium, SubjectID: "s"},
	}
	got := ApplyAssignments(tasks, []Assignment{
		{ID: "c", Priority: model.PriorityHigh},
		{ID: "a", Priority: model.PriorityLow},
	})
	if got[0].ID != "c" || got[1].ID != "b" || got[2].ID != "a" {
		t.Fatalf("unexpected order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
	if got[1].Priority != model.PriorityMedium {
		t.Fatalf("expected unassigned task to keep prior priority, got %s", got[1].Priority)
	}
	if tasks[0].Priority != model.PriorityMedium {
		t.Fatal("expected input slice untouched")
	}
}

func TestIdeaToTasksTrimsBlankEntries(t *testing.T) {
	srv := cannedServer(t, `["  plan menu  ","","buy groceries"]`, nil)
	defer srv.Close()

	got, err := testClient(srv).IdeaToTasks(context.Background(), "host a dinner party")
	if err != nil {
		t.Fatalf("idea to tasks: %v", err)
	}
	if len(got) != 2 || got[0] != "plan menu" || got[1] != "buy groceries" {
		t.Fatalf("unexpected tasks: %#v", got)
	}
}

func TestIdeaToTasksRejectsEmptyResult(t *testing.T) {
	srv := cannedServer(t, `["",""]`, nil)
	defer srv.Close()

	if _, err := testClient(srv).IdeaToTasks(context.Background(), "anything"); err == nil {
		t.Fatal("expected error on all-blank result")
	}
}

func TestEncouragementSkipsCallWhenNothingOpen(t *testing.T) {
	got, err := New("").Encouragement(context.Background(), nil)
	if err != nil {
		t.Fatalf("encouragement: %v", err)
	}
	if got != AllDoneMessage {
		t.Fatalf("expected canned celebration, got %q", got)
	}
}

func TestEncouragementTrimsModelText(t *testing.T) {
	srv := cannedServer(t, "  You can do this, one task at a time.  \n", nil)
	defer srv.Close()

	got, err := testClient(srv).Encouragement(context.Background(), []string{"file taxes"})
	if err != nil {
		t.Fatalf("encouragement: %v", err)
	}
	if got != "You can do this, one task at a time." {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestMotivationalQuotesFallsBackWhenUnavailable(t *testing.T) {
	got := New("").MotivationalQuotes(context.Background())
	if len(got) != 10 || got[0] != "One step at a time." {
		t.Fatalf("expected default quotes, got %#v", got)
	}
}

func TestMotivationalQuotesUsesModelOutput(t *testing.T) {
	srv := cannedServer(t, `["Keep going.","Almost there."]`, nil)
	defer srv.Close()

	got := testClient(srv).MotivationalQuotes(context.Background())
	if len(got) != 2 || got[0] != "Keep going." {
		t.Fatalf("unexpected quotes: %#v", got)
	}
}

func TestGenerateSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"code":400,"message":"API key not valid"}}`)
	}))
	defer srv.Close()

	_, err := testClient(srv).IdeaToTasks(context.Background(), "anything")
	if err == nil || !strings.Contains(err.Error(), "API key not valid") {
		t.Fatalf("expected surfaced API error, got %v", err)
	}
}
