package model

import (
	"errors"
	"testing"
	"time"
)

func TestTaskValidate(t *testing.T) {
	task := Task{ID: "t-1", Text: "write notes", Priority: PriorityMedium, SubjectID: "s-1"}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got %v", err)
	}

	task.Priority = Priority("urgent")
	err := task.Validate()
	if !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected invalid priority error, got %v", err)
	}

	task.Priority = PriorityLow
	task.Text = "   "
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for blank text")
	}
}

func TestPriorityRankOrdersHighFirst(t *testing.T) {
	if PriorityHigh.Rank() >= PriorityMedium.Rank() {
		t.Fatal("expected high to rank before medium")
	}
	if PriorityMedium.Rank() >= PriorityLow.Rank() {
		t.Fatal("expected medium to rank before low")
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.PomodoroDuration != 25 || s.ShortBreakDuration != 5 || s.LongBreakDuration != 15 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if s.DarkMode {
		t.Fatal("expected dark mode off by default")
	}
}

func TestClampDurationsFloorsAtOneMinute(t *testing.T) {
	s := Settings{PomodoroDuration: 0, ShortBreakDuration: -3, LongBreakDuration: 15}
	s = s.ClampDurations()
	if s.PomodoroDuration != 1 || s.ShortBreakDuration != 1 {
		t.Fatalf("expected clamped durations, got %+v", s)
	}
	if s.LongBreakDuration != 15 {
		t.Fatalf("expected long break untouched, got %d", s.LongBreakDuration)
	}
}

func TestParseDeadlineNormalizesToLocalMidday(t *testing.T) {
	for _, zone := range []string{"UTC", "America/Los_Angeles", "Asia/Tokyo"} {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			t.Fatalf("load location %s: %v", zone, err)
		}
		got, err := ParseDeadline("2026-03-14", loc)
		if err != nil {
			t.Fatalf("parse deadline in %s: %v", zone, err)
		}
		if got.Hour() != 12 {
			t.Fatalf("expected midday in %s, got hour %d", zone, got.Hour())
		}
		y, m, d := got.Date()
		if y != 2026 || m != time.March || d != 14 {
			t.Fatalf("expected 2026-03-14 in %s, got %v", zone, got)
		}
	}
}

func TestParseDeadlineRejectsGarbage(t *testing.T) {
	if _, err := ParseDeadline("not-a-date", time.UTC); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestTasksForSubjectPreservesOrder(t *testing.T) {
	tasks := []Task{
		{ID: "1", SubjectID: "a"},
		{ID: "2", SubjectID: "b"},
		{ID: "3", SubjectID: "a"},
	}
	got := TasksForSubject(tasks, "a")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("unexpected filter result: %#v", got)
	}
}

func TestOrphanCount(t *testing.T) {
	subjects := []Subject{{ID: "a", Name: "Math"}}
	tasks := []Task{
		{ID: "1", SubjectID: "a"},
		{ID: "2", SubjectID: "gone"},
		{ID: "3", SubjectID: "gone"},
	}
	if got := OrphanCount(tasks, subjects); got != 2 {
		t.Fatalf("expected 2 orphans, got %d", got)
	}
}
