package storage

import (
	"context"
	"errors"

	"github.com/dryleaf/dryleaf/internal/model"
)

// Store wraps the KV layer with typed snapshot accessors. Loads fall back to
// defaults when a document is absent or unreadable; the fallback is never
// persisted until the next explicit save.
type Store struct {
	kv *KV
}

func Open(path string) (*Store, error) {
	kv, err := OpenKV(path)
	if err != nil {
		return nil, err
	}
	return &Store{kv: kv}, nil
}

func (s *Store) Close() error {
	return s.kv.Close()
}

func (s *Store) LoadTasks(ctx context.Context) ([]model.Task, error) {
	var snap taskSnapshot
	if err := s.kv.Get(ctx, KeyTasks, &snap); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	tasks := snap.Tasks
	for i := range tasks {
		if !tasks[i].Priority.IsValid() {
			tasks[i].Priority = model.PriorityMedium
		}
	}
	return tasks, nil
}

func (s *Store) SaveTasks(ctx context.Context, tasks []model.Task) error {
	return s.kv.Set(ctx, KeyTasks, taskSnapshot{SchemaVersion: SchemaVersion, Tasks: tasks})
}

func (s *Store) LoadSubjects(ctx context.Context) ([]model.Subject, error) {
	var snap subjectSnapshot
	if err := s.kv.Get(ctx, KeySubjects, &snap); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return snap.Subjects, nil
}

func (s *Store) SaveSubjects(ctx context.Context, subjects []model.Subject) error {
	return s.kv.Set(ctx, KeySubjects, subjectSnapshot{SchemaVersion: SchemaVersion, Subjects: subjects})
}

// LoadSettings default-fills version-0 documents: a snapshot written before
// timer durations existed decodes with zeroes, which the clamp lifts to the
// one-minute floor. A missing or corrupt document yields the full defaults.
func (s *Store) LoadSettings(ctx context.Context) (model.Settings, error) {
	snap := settingsSnapshot{Settings: model.DefaultSettings()}
	if err := s.kv.Get(ctx, KeySettings, &snap); err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.DefaultSettings(), nil
		}
		return model.DefaultSettings(), err
	}
	return snap.Settings.ClampDurations(), nil
}

func (s *Store) SaveSettings(ctx context.Context, settings model.Settings) error {
	return s.kv.Set(ctx, KeySettings, settingsSnapshot{SchemaVersion: SchemaVersion, Settings: settings})
}

// Reset drops every snapshot. Subsequent loads return defaults.
func (s *Store) Reset(ctx context.Context) error {
	return s.kv.Reset(ctx)
}
