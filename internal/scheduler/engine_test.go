package scheduler

import (
	"testing"
	"time"
)

func waitAlert(t *testing.T, ch <-chan DeadlineEvent, timeout time.Duration) DeadlineEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for alert")
		return DeadlineEvent{}
	}
}

func TestEngineEmitsInDueOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.Schedule(DeadlineEvent{TaskID: "later", DueAt: now.Add(80 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if err := engine.Schedule(DeadlineEvent{TaskID: "sooner", DueAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	first := waitAlert(t, engine.C(), time.Second)
	second := waitAlert(t, engine.C(), time.Second)
	if first.TaskID != "sooner" || second.TaskID != "later" {
		t.Fatalf("unexpected order: first=%s second=%s", first.TaskID, second.TaskID)
	}
}

func TestRescheduleReplacesPendingAlert(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.Schedule(DeadlineEvent{TaskID: "t1", DueAt: now.Add(30 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	replacement := now.Add(60 * time.Millisecond)
	if err := engine.Schedule(DeadlineEvent{TaskID: "t1", DueAt: replacement}); err != nil {
		t.Fatalf("reschedule: %v", err)
	}

	got := waitAlert(t, engine.C(), time.Second)
	if !got.DueAt.Equal(replacement) {
		t.Fatalf("expected replacement due time, got %v", got.DueAt)
	}
	select {
	case extra := <-engine.C():
		t.Fatalf("unexpected second alert: %#v", extra)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestCancelSuppressesAlert(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.Schedule(DeadlineEvent{TaskID: "doomed", DueAt: now.Add(30 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if err := engine.Schedule(DeadlineEvent{TaskID: "kept", DueAt: now.Add(50 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	engine.Cancel("doomed")

	got := waitAlert(t, engine.C(), time.Second)
	if got.TaskID != "kept" {
		t.Fatalf("expected canceled alert suppressed, got %s", got.TaskID)
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	due := time.Now().Add(20 * time.Millisecond)
	for i := 0; i < 25; i++ {
		if err := engine.Schedule(DeadlineEvent{TaskID: string(rune('a' + i)), DueAt: due}); err != nil {
			t.Fatalf("schedule: %v", err)
		}
	}

	time.Sleep(120 * time.Millisecond)
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped alerts > 0, got %d", engine.Dropped())
	}
}

func TestScheduleValidatesDueTime(t *testing.T) {
	engine := NewEngine(1)
	if err := engine.Schedule(DeadlineEvent{TaskID: "bad"}); err != ErrInvalidDueTime {
		t.Fatalf("expected ErrInvalidDueTime, got %v", err)
	}
}

func TestScheduleAfterStop(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	engine.Stop()
	if err := engine.Schedule(DeadlineEvent{TaskID: "late", DueAt: time.Now()}); err != ErrStopped {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
}
