package update

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dryleaf/dryleaf/internal/model"
	"github.com/dryleaf/dryleaf/internal/scheduler"
)

// Every mutation writes the whole affected collection back to the store.
// A failed save keeps the in-memory change and surfaces the error in the
// status bar.

func (m *Model) persistTasks() {
	if m.Store == nil {
		return
	}
	if err := m.Store.SaveTasks(context.Background(), m.Tasks); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("save tasks failed: %v", err), IsError: true}
	}
}

func (m *Model) persistSubjects() {
	if m.Store == nil {
		return
	}
	if err := m.Store.SaveSubjects(context.Background(), m.Subjects); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("save subjects failed: %v", err), IsError: true}
	}
}

func (m *Model) persistSettings() {
	if m.Store == nil {
		return
	}
	if err := m.Store.SaveSettings(context.Background(), m.Settings); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("save settings failed: %v", err), IsError: true}
	}
}

func (m *Model) addSubject(name string) (model.Subject, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		m.Status = StatusBar{Text: "subject name is empty", IsError: true}
		return model.Subject{}, false
	}
	subject := model.Subject{ID: uuid.NewString(), Name: trimmed}
	m.Subjects = append(m.Subjects, subject)
	m.persistSubjects()
	m.Status = StatusBar{Text: fmt.Sprintf("subject added: %s", trimmed), IsError: false}
	return subject, true
}

func (m *Model) addTask(text, subjectID string) (model.Task, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		m.Status = StatusBar{Text: "task text is empty", IsError: true}
		return model.Task{}, false
	}
	if _, ok := model.SubjectByID(m.Subjects, subjectID); !ok {
		m.Status = StatusBar{Text: "no subject selected for new task", IsError: true}
		return model.Task{}, false
	}
	task := model.Task{
		ID:        uuid.NewString(),
		Text:      trimmed,
		Priority:  model.PriorityMedium,
		SubjectID: subjectID,
	}
	m.Tasks = append(m.Tasks, task)
	m.persistTasks()
	m.Status = StatusBar{Text: fmt.Sprintf("task added: %s", trimmed), IsError: false}
	return task, true
}

func (m *Model) toggleTask(id string) {
	idx := m.taskIndex(id)
	if idx < 0 {
		return
	}
	m.Tasks[idx].Completed = !m.Tasks[idx].Completed
	if m.Tasks[idx].Completed {
		m.cancelAlert(id)
		m.Status = StatusBar{Text: "task completed", IsError: false}
	} else {
		m.scheduleAlert(m.Tasks[idx])
		m.Status = StatusBar{Text: "task reopened", IsError: false}
	}
	m.persistTasks()
}

func (m *Model) deleteTask(id string) {
	idx := m.taskIndex(id)
	if idx < 0 {
		return
	}
	text := m.Tasks[idx].Text
	m.Tasks = append(m.Tasks[:idx], m.Tasks[idx+1:]...)
	m.cancelAlert(id)
	m.persistTasks()
	if m.TaskCursor > 0 {
		m.TaskCursor--
	}
	m.Status = StatusBar{Text: fmt.Sprintf("task deleted: %s", text), IsError: false}
}

// deleteSubject removes the subject only. Its tasks stay in the collection;
// they surface through the unfiled count until reassigned or deleted.
func (m *Model) deleteSubject(id string) {
	for i, s := range m.Subjects {
		if s.ID == id {
			m.Subjects = append(m.Subjects[:i], m.Subjects[i+1:]...)
			m.persistSubjects()
			m.Status = StatusBar{Text: fmt.Sprintf("subject deleted: %s", s.Name), IsError: false}
			break
		}
	}
	if m.SubCursor >= len(m.Subjects) && m.SubCursor > 0 {
		m.SubCursor--
	}
	m.ensureValidView()
}

func (m *Model) assignDeadline(taskID, raw string) error {
	idx := m.taskIndex(taskID)
	if idx < 0 {
		return fmt.Errorf("task not found")
	}
	due, err := model.ParseDeadline(raw, m.now().Location())
	if err != nil {
		return err
	}
	m.Tasks[idx].Deadline = &due
	if !m.Tasks[idx].Completed {
		m.scheduleAlert(m.Tasks[idx])
	}
	m.persistTasks()
	m.Status = StatusBar{Text: fmt.Sprintf("deadline set: %s", due.Format("Jan 2")), IsError: false}
	return nil
}

func (m *Model) applySettings() {
	m.Settings = model.Settings{
		DarkMode:           m.SettingsE.DarkMode,
		PomodoroDuration:   atoiOrZero(m.SettingsE.Pomodoro),
		ShortBreakDuration: atoiOrZero(m.SettingsE.Short),
		LongBreakDuration:  atoiOrZero(m.SettingsE.Long),
	}.ClampDurations()
	m.persistSettings()
	m.Status = StatusBar{Text: "settings saved", IsError: false}
}

// factoryReset wipes the store and returns every collection to its defaults.
// Only reachable through the confirmation modal.
func (m *Model) factoryReset() {
	if m.Store != nil {
		if err := m.Store.Reset(context.Background()); err != nil {
			m.LastError = err
			m.Status = StatusBar{Text: fmt.Sprintf("reset failed: %v", err), IsError: true}
			return
		}
	}
	for _, t := range m.Tasks {
		m.cancelAlert(t.ID)
	}
	m.Tasks = nil
	m.Subjects = nil
	m.Settings = model.DefaultSettings()
	m.CurrentView = ViewState{Kind: ViewHome}
	m.TaskCursor = 0
	m.SubCursor = 0
	m.Assistant = AssistantState{Token: m.Assistant.Token + 1, Quotes: m.Assistant.Quotes}
	m.Status = StatusBar{Text: "factory reset complete", IsError: false}
}

func (m *Model) scheduleAlert(t model.Task) {
	if m.Scheduler == nil || t.Deadline == nil || t.Completed {
		return
	}
	if !t.Deadline.After(m.now()) {
		return
	}
	err := m.Scheduler.Schedule(scheduler.DeadlineEvent{TaskID: t.ID, Text: t.Text, DueAt: *t.Deadline})
	if err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("schedule alert failed: %v", err), IsError: true}
	}
}

func (m *Model) cancelAlert(taskID string) {
	if m.Scheduler == nil {
		return
	}
	m.Scheduler.Cancel(taskID)
}

// openSubject jumps straight into a subject's detail view.
func (m *Model) openSubject(id string) {
	m.CurrentView = ViewState{Kind: ViewSubject, SubjectID: id}
	m.TaskCursor = 0
}

// ensureValidView sends the UI home when the subject it points at is gone.
func (m *Model) ensureValidView() {
	if m.CurrentView.Kind != ViewSubject {
		return
	}
	if _, ok := model.SubjectByID(m.Subjects, m.CurrentView.SubjectID); !ok {
		m.CurrentView = ViewState{Kind: ViewHome}
		m.TaskCursor = 0
	}
}

func (m *Model) taskIndex(id string) int {
	for i, t := range m.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (m *Model) selectedTask() (model.Task, bool) {
	visible := model.TasksForSubject(m.Tasks, m.CurrentView.SubjectID)
	if m.TaskCursor < 0 || m.TaskCursor >= len(visible) {
		return model.Task{}, false
	}
	return visible[m.TaskCursor], true
}
