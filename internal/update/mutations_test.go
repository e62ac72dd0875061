package update

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/dryleaf/dryleaf/internal/model"
	"github.com/dryleaf/dryleaf/internal/storage"
)

func storedTasksMatch(t *testing.T, store *storage.Store, want []model.Task) {
	t.Helper()
	got, err := store.LoadTasks(context.Background())
	if err != nil {
		t.Fatalf("load tasks: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("stored tasks diverged:\n got %+v\nwant %+v", got, want)
	}
}

func TestMutationsWriteThroughToStore(t *testing.T) {
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	m := seededModel()
	m.Store = store
	m.CurrentView = ViewState{Kind: ViewSubject, SubjectID: "s1"}
	m.persistTasks()
	m.persistSubjects()
	storedTasksMatch(t, store, m.Tasks)

	task, ok := m.addTask("lab report", "s1")
	if !ok {
		t.Fatalf("add task failed: %+v", m.Status)
	}
	storedTasksMatch(t, store, m.Tasks)

	m.toggleTask(task.ID)
	storedTasksMatch(t, store, m.Tasks)

	m.deleteTask(task.ID)
	storedTasksMatch(t, store, m.Tasks)

	m.deleteSubject("s2")
	subjects, err := store.LoadSubjects(context.Background())
	if err != nil {
		t.Fatalf("load subjects: %v", err)
	}
	if !reflect.DeepEqual(subjects, m.Subjects) {
		t.Fatalf("stored subjects diverged:\n got %+v\nwant %+v", subjects, m.Subjects)
	}
}

func TestDeleteSubjectPreservesTasks(t *testing.T) {
	m := seededModel()
	m.CurrentView = ViewState{Kind: ViewSubject, SubjectID: "s1"}

	m.deleteSubject("s1")

	if len(m.Subjects) != 1 || m.Subjects[0].ID != "s2" {
		t.Fatalf("unexpected subjects: %+v", m.Subjects)
	}
	if len(m.Tasks) != 3 {
		t.Fatalf("expected tasks preserved, got %d", len(m.Tasks))
	}
	if got := model.OrphanCount(m.Tasks, m.Subjects); got != 2 {
		t.Fatalf("expected 2 unfiled tasks, got %d", got)
	}
	if m.CurrentView.Kind != ViewHome {
		t.Fatalf("expected fallback to home, got %q", m.CurrentView.Kind)
	}
}

func TestDeleteTaskAdjustsCursor(t *testing.T) {
	m := seededModel()
	m.CurrentView = ViewState{Kind: ViewSubject, SubjectID: "s1"}
	m.TaskCursor = 1

	m.deleteTask("t2")

	if len(m.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(m.Tasks))
	}
	if m.TaskCursor != 0 {
		t.Fatalf("expected cursor pulled back, got %d", m.TaskCursor)
	}
}

func TestAddTaskRejectsMissingSubject(t *testing.T) {
	m := seededModel()
	if _, ok := m.addTask("orphan", "nope"); ok {
		t.Fatal("expected add to fail for unknown subject")
	}
	if !m.Status.IsError {
		t.Fatalf("expected error status, got %+v", m.Status)
	}
}

func TestAssignDeadlineNormalizesToMidday(t *testing.T) {
	m := seededModel()
	if err := m.assignDeadline("t1", "2026-03-14"); err != nil {
		t.Fatalf("assign deadline: %v", err)
	}
	got := m.Tasks[0].Deadline
	if got == nil {
		t.Fatal("expected deadline set")
	}
	want := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected midday instant, got %v", got)
	}
}

func TestAssignDeadlineRejectsBadInput(t *testing.T) {
	m := seededModel()
	if err := m.assignDeadline("t1", "next tuesday"); err == nil {
		t.Fatal("expected parse error")
	}
	if m.Tasks[0].Deadline != nil {
		t.Fatal("expected deadline untouched on parse failure")
	}
}

func TestApplySettingsClampsUnparsableInput(t *testing.T) {
	m := seededModel()
	m.SettingsE = SettingsEditorState{
		DarkMode: true,
		Pomodoro: "50",
		Short:    "",
		Long:     "abc",
	}

	m.applySettings()

	if !m.Settings.DarkMode {
		t.Fatal("expected dark mode on")
	}
	if m.Settings.PomodoroDuration != 50 {
		t.Fatalf("expected pomodoro 50, got %d", m.Settings.PomodoroDuration)
	}
	if m.Settings.ShortBreakDuration != 1 || m.Settings.LongBreakDuration != 1 {
		t.Fatalf("expected unparsable durations clamped to 1, got %+v", m.Settings)
	}
}

func TestFactoryResetInvalidatesAssistantResults(t *testing.T) {
	m := seededModel()
	m.Assistant.Busy = true
	before := m.Assistant.Token

	m.factoryReset()

	if m.Assistant.Token == before {
		t.Fatal("expected token bumped so in-flight results are dropped")
	}
	if m.Assistant.Busy {
		t.Fatal("expected busy flag cleared")
	}
}
