package storage

import "github.com/dryleaf/dryleaf/internal/model"

// Snapshot keys. Each key holds one whole-collection JSON document; there is
// no partial persistence and no cross-key atomicity.
const (
	KeyTasks    = "tasks"
	KeySubjects = "subjects"
	KeySettings = "settings"
)

// SchemaVersion tags every snapshot written from now on. Version 0 documents
// (the field absent) are accepted on load and upgraded by default-filling.
const SchemaVersion = 1

type taskSnapshot struct {
	SchemaVersion int          `json:"schemaVersion"`
	Tasks         []model.Task `json:"tasks"`
}

type subjectSnapshot struct {
	SchemaVersion int             `json:"schemaVersion"`
	Subjects      []model.Subject `json:"subjects"`
}

type settingsSnapshot struct {
	SchemaVersion int            `json:"schemaVersion"`
	Settings      model.Settings `json:"settings"`
}
