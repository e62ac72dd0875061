package model

import (
	"fmt"
	"sort"
	"time"
)

const UpcomingLimit = 5

type DeadlineEntry struct {
	TaskID      string
	Text        string
	SubjectName string
	Due         time.Time
	Label       string
	Overdue     bool
}

// UpcomingDeadlines lists the earliest incomplete deadlines, at most
// UpcomingLimit entries. Sort is stable so ties keep input order.
func UpcomingDeadlines(tasks []Task, subjects []Subject, now time.Time) []DeadlineEntry {
	pending := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Deadline != nil && !t.Completed {
			pending = append(pending, t)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Deadline.Before(*pending[j].Deadline)
	})
	if len(pending) > UpcomingLimit {
		pending = pending[:UpcomingLimit]
	}

	out := make([]DeadlineEntry, 0, len(pending))
	for _, t := range pending {
		name := "Uncategorized"
		if s, ok := SubjectByID(subjects, t.SubjectID); ok {
			name = s.Name
		}
		label := RelativeDayLabel(*t.Deadline, now)
		out = append(out, DeadlineEntry{
			TaskID:      t.ID,
			Text:        t.Text,
			SubjectName: name,
			Due:         *t.Deadline,
			Label:       label,
			Overdue:     label == "Overdue",
		})
	}
	return out
}

// RelativeDayLabel renders a deadline relative to the local calendar day of
// now: Today, Tomorrow, "In N days" up to a week out, Overdue for the past,
// and a short absolute date beyond that.
func RelativeDayLabel(due, now time.Time) string {
	diff := daysBetween(now, due)
	switch {
	case diff == 0:
		return "Today"
	case diff == 1:
		return "Tomorrow"
	case diff > 1 && diff <= 7:
		return fmt.Sprintf("In %d days", diff)
	case diff < 0:
		return "Overdue"
	default:
		return due.Format("Jan 2")
	}
}

// daysBetween counts whole local calendar days from now's date to due's
// date. Rounding absorbs DST days that are not exactly 24 hours long.
func daysBetween(now, due time.Time) int {
	a := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	b := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, due.Location())
	hours := b.Sub(a).Hours()
	if hours < 0 {
		return int((hours - 12) / 24)
	}
	return int((hours + 12) / 24)
}
