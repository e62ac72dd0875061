package model

import (
	"math"
	"testing"
)

func TestProgressSlicesProportionalToTaskCount(t *testing.T) {
	subjects := []Subject{
		{ID: "a", Name: "Math"},
		{ID: "b", Name: "History"},
	}
	tasks := []Task{
		{ID: "1", SubjectID: "a", Completed: true},
		{ID: "2", SubjectID: "a"},
		{ID: "3", SubjectID: "a"},
		{ID: "4", SubjectID: "b", Completed: true},
	}

	slices := ProgressSlices(subjects, tasks)
	if len(slices) != 2 {
		t.Fatalf("expected 2 slices, got %d", len(slices))
	}
	if slices[0].SubjectID != "a" || slices[1].SubjectID != "b" {
		t.Fatalf("expected subject order preserved, got %#v", slices)
	}
	if math.Abs(slices[0].EndPct-75) > 0.001 {
		t.Fatalf("expected first slice to span 75%%, got %f", slices[0].EndPct)
	}
	if math.Abs(slices[1].StartPct-75) > 0.001 || math.Abs(slices[1].EndPct-100) > 0.001 {
		t.Fatalf("unexpected second slice bounds: %f..%f", slices[1].StartPct, slices[1].EndPct)
	}
	if r := slices[0].Ratio(); math.Abs(r-1.0/3.0) > 0.001 {
		t.Fatalf("unexpected completion ratio: %f", r)
	}
}

func TestProgressSlicesSkipsEmptySubjectsAndOrphans(t *testing.T) {
	subjects := []Subject{
		{ID: "a", Name: "Math"},
		{ID: "empty", Name: "Untouched"},
	}
	tasks := []Task{
		{ID: "1", SubjectID: "a"},
		{ID: "2", SubjectID: "deleted-subject"},
	}
	slices := ProgressSlices(subjects, tasks)
	if len(slices) != 1 {
		t.Fatalf("expected single slice, got %#v", slices)
	}
	if slices[0].Total != 1 {
		t.Fatalf("expected orphan excluded from totals, got %d", slices[0].Total)
	}
}

func TestProgressSlicesEmptyInputs(t *testing.T) {
	if got := ProgressSlices(nil, nil); got != nil {
		t.Fatalf("expected nil for empty inputs, got %#v", got)
	}
}

func TestPaletteColorCycles(t *testing.T) {
	if PaletteColor(0) != PaletteColor(7) {
		t.Fatal("expected palette to cycle every 7 positions")
	}
	if PaletteColor(1) == PaletteColor(2) {
		t.Fatal("expected adjacent positions to differ")
	}
}
