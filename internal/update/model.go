package update

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/dryleaf/dryleaf/internal/ai"
	"github.com/dryleaf/dryleaf/internal/model"
	"github.com/dryleaf/dryleaf/internal/scheduler"
	"github.com/dryleaf/dryleaf/internal/storage"
)

type ViewKind string

const (
	ViewHome     ViewKind = "Home"
	ViewSubject  ViewKind = "Subject"
	ViewCalendar ViewKind = "Calendar"
	ViewSubjects ViewKind = "Subjects"
)

// ViewState addresses the active screen. SubjectID is only meaningful for
// ViewSubject; a dangling id falls back to Home on the next update.
type ViewState struct {
	Kind      ViewKind
	SubjectID string
}

type ModalKind string

const (
	ModalNone         ModalKind = ""
	ModalSettings     ModalKind = "settings"
	ModalDeadline     ModalKind = "deadline"
	ModalFocus        ModalKind = "focus"
	ModalResetConfirm ModalKind = "reset_confirm"
	ModalIdea         ModalKind = "idea"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Home     string
	Calendar string
	Subjects string
	Help     string
	Quit     string
}

type FocusTimerState string

const (
	FocusRunning FocusTimerState = "running"
	FocusPaused  FocusTimerState = "paused"
	FocusExpired FocusTimerState = "expired"
)

// FocusState is one pomodoro session bound to a single task. Token fences
// tick messages: restarting or leaving a session bumps it, so ticks from a
// dead session are dropped.
type FocusState struct {
	TaskID       string
	TaskText     string
	TotalSec     int
	RemainingSec int
	State        FocusTimerState
	Token        int
}

// AssistantState serializes assistant calls: one in flight at a time, and a
// result is only applied when its token matches.
type AssistantState struct {
	Busy          bool
	Token         int
	Encouragement string
	Quotes        []string
	QuoteIndex    int
}

type CalendarState struct {
	Year  int
	Month time.Month
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type SettingsEditorState struct {
	Cursor   int
	DarkMode bool
	Pomodoro string
	Short    string
	Long     string
}

type DeadlineEditorState struct {
	TaskID string
	Err    string
}

type Model struct {
	Tasks    []model.Task
	Subjects []model.Subject
	Settings model.Settings

	CurrentView ViewState
	Modal       ModalKind
	TaskCursor  int
	SubCursor   int

	Focus     FocusState
	Assistant AssistantState
	Calendar  CalendarState
	Palette   CommandPaletteState
	SettingsE SettingsEditorState
	DeadlineE DeadlineEditorState

	Store     *storage.Store
	AI        *ai.Client
	Scheduler *scheduler.Engine

	DeadlineLog    []scheduler.DeadlineEvent
	DesktopEnabled bool
	notifier       DesktopNotifier

	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	now func() time.Time

	// Bubble components used for rich TUI controls
	taskInput     textinput.Model
	subjectInput  textinput.Model
	deadlineInput textinput.Model
	commandInput  textinput.Model
	ideaArea      textarea.Model
	subjectsTable table.Model
	focusProgress progress.Model
	aiSpinner     spinner.Model
	helpModel     help.Model
	addingTask    bool
	addingSubject bool
}

type DesktopNotifier interface {
	Send(title, body string) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(string, string) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(title, body string) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", title, body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(body), escapeAppleScript(title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

type SwitchViewMsg struct {
	View ViewState
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type FocusTickMsg struct {
	Token int
}

type DeadlineDueMsg struct {
	Event scheduler.DeadlineEvent
}

type PrioritizeResultMsg struct {
	Token       int
	SubjectID   string
	Assignments []ai.Assignment
	Err         error
}

type IdeaTasksMsg struct {
	Token     int
	SubjectID string
	Texts     []string
	Err       error
}

type EncouragementMsg struct {
	Token int
	Text  string
	Err   error
}

type QuotesMsg struct {
	Quotes []string
}

func NewModel() Model {
	now := time.Now()
	m := Model{
		Settings:    model.DefaultSettings(),
		CurrentView: ViewState{Kind: ViewHome},
		Calendar:    CalendarState{Year: now.Year(), Month: now.Month()},
		Keys: GlobalKeyMap{
			Home:     "1",
			Calendar: "2",
			Subjects: "3",
			Help:     "?",
			Quit:     "q",
		},
		notifier: NoopDesktopNotifier{},
		now:      time.Now,
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func NewModelWithRuntime(store *storage.Store, client *ai.Client, engine *scheduler.Engine, cfg RuntimeConfig) Model {
	m := NewModel()
	m.Store = store
	m.AI = client
	m.Scheduler = engine
	m.DesktopEnabled = cfg.DesktopNotifications
	if cfg.DesktopNotifications {
		m.notifier = ExecDesktopNotifier{}
	}
	return m
}

// LoadSnapshots replaces in-memory collections with stored ones. Called once
// at startup before the program runs.
func (m *Model) LoadSnapshots(tasks []model.Task, subjects []model.Subject, settings model.Settings) {
	m.Tasks = tasks
	m.Subjects = subjects
	m.Settings = settings.ClampDurations()
	m.syncBubbleData()
}

func (m *Model) initBubbleComponents() {
	m.taskInput = textinput.New()
	m.taskInput.Prompt = "task> "
	m.taskInput.CharLimit = 256
	m.taskInput.Width = 48

	m.subjectInput = textinput.New()
	m.subjectInput.Prompt = "subject> "
	m.subjectInput.CharLimit = 128
	m.subjectInput.Width = 40

	m.deadlineInput = textinput.New()
	m.deadlineInput.Prompt = "date> "
	m.deadlineInput.Placeholder = "YYYY-MM-DD"
	m.deadlineInput.CharLimit = 10
	m.deadlineInput.Width = 14

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.ideaArea = textarea.New()
	m.ideaArea.SetWidth(54)
	m.ideaArea.SetHeight(5)
	m.ideaArea.ShowLineNumbers = false
	m.ideaArea.Placeholder = "Describe the idea to break into tasks"

	cols := []table.Column{
		{Title: "Subject", Width: 28},
		{Title: "Open", Width: 6},
		{Title: "Done", Width: 6},
	}
	m.subjectsTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(10))

	m.focusProgress = progress.New(progress.WithDefaultGradient())

	m.aiSpinner = spinner.New()
	m.aiSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
}

func (m *Model) syncBubbleData() {
	rows := make([]table.Row, 0, len(m.Subjects))
	for _, s := range m.Subjects {
		open, done := 0, 0
		for _, t := range m.Tasks {
			if t.SubjectID != s.ID {
				continue
			}
			if t.Completed {
				done++
			} else {
				open++
			}
		}
		rows = append(rows, table.Row{s.Name, fmt.Sprintf("%d", open), fmt.Sprintf("%d", done)})
	}
	m.subjectsTable.SetRows(rows)
	if len(rows) > 0 && m.SubCursor < len(rows) {
		m.subjectsTable.SetCursor(m.SubCursor)
	}

	m.commandInput.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandInput.Focus()
	}
}

// focusPct is the elapsed fraction of the focus session, rendered directly
// with ViewAs so the bar tracks the countdown without frame messages.
func (m Model) focusPct() float64 {
	total := m.Focus.TotalSec
	if total <= 0 {
		return 0
	}
	pct := float64(total-m.Focus.RemainingSec) / float64(total)
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}
