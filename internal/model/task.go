package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidPriority = errors.New("model: invalid task priority")

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Rank orders priorities for sorting: high < medium < low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

type Task struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Completed bool       `json:"completed"`
	Priority  Priority   `json:"priority"`
	SubjectID string     `json:"subjectId"`
	Deadline  *time.Time `json:"deadline,omitempty"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Text) == "" {
		return errors.New("model: task text is required")
	}
	if strings.TrimSpace(t.SubjectID) == "" {
		return errors.New("model: task subject id is required")
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	return nil
}

type Subject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (s Subject) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return errors.New("model: subject id is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("model: subject name is required")
	}
	return nil
}

type Settings struct {
	DarkMode           bool `json:"darkMode"`
	PomodoroDuration   int  `json:"pomodoroDuration"`
	ShortBreakDuration int  `json:"shortBreakDuration"`
	LongBreakDuration  int  `json:"longBreakDuration"`
}

func DefaultSettings() Settings {
	return Settings{
		DarkMode:           false,
		PomodoroDuration:   25,
		ShortBreakDuration: 5,
		LongBreakDuration:  15,
	}
}

// ClampDurations enforces the one-minute floor on every timer duration.
// Numeric input that failed to parse arrives here as zero.
func (s Settings) ClampDurations() Settings {
	if s.PomodoroDuration < 1 {
		s.PomodoroDuration = 1
	}
	if s.ShortBreakDuration < 1 {
		s.ShortBreakDuration = 1
	}
	if s.LongBreakDuration < 1 {
		s.LongBreakDuration = 1
	}
	return s
}

// NormalizeDeadline pins a date-only value to local midday, so the stored
// instant never shifts across a calendar day when converted through UTC.
func NormalizeDeadline(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, loc)
}

// ParseDeadline accepts a YYYY-MM-DD string and returns the midday-normalized
// instant in loc.
func ParseDeadline(value string, loc *time.Location) (time.Time, error) {
	parsed, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("model: parse deadline: %w", err)
	}
	return NormalizeDeadline(parsed.Year(), parsed.Month(), parsed.Day(), loc), nil
}

// TasksForSubject filters tasks to one subject, preserving input order.
// Orphaned tasks never match because their subject id is no longer queried.
func TasksForSubject(tasks []Task, subjectID string) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.SubjectID == subjectID {
			out = append(out, t)
		}
	}
	return out
}

// OrphanCount reports tasks whose subject no longer exists.
func OrphanCount(tasks []Task, subjects []Subject) int {
	known := make(map[string]bool, len(subjects))
	for _, s := range subjects {
		known[s.ID] = true
	}
	n := 0
	for _, t := range tasks {
		if !known[t.SubjectID] {
			n++
		}
	}
	return n
}

func SubjectByID(subjects []Subject, id string) (Subject, bool) {
	for _, s := range subjects {
		if s.ID == id {
			return s, true
		}
	}
	return Subject{}, false
}
