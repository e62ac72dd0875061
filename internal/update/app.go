package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dryleaf/dryleaf/internal/commands"
	"github.com/dryleaf/dryleaf/internal/model"
	"github.com/dryleaf/dryleaf/internal/scheduler"
	"github.com/dryleaf/dryleaf/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{quotesCmd(m.AI)}
	if m.Scheduler != nil {
		cmds = append(cmds, waitForDeadlineCmd(m.Scheduler.C()))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case spinner.TickMsg:
		if m.Assistant.Busy {
			var cmd tea.Cmd
			m.aiSpinner, cmd = m.aiSpinner.Update(typed)
			return m, cmd
		}
	case FocusTickMsg:
		return m.onFocusTick(typed)
	case DeadlineDueMsg:
		m.DeadlineLog = append(m.DeadlineLog, typed.Event)
		if len(m.DeadlineLog) > 20 {
			m.DeadlineLog = m.DeadlineLog[len(m.DeadlineLog)-20:]
		}
		m.Status = StatusBar{Text: fmt.Sprintf("deadline due: %s", typed.Event.Text), IsError: false}
		if m.DesktopEnabled && m.notifier != nil {
			_ = m.notifier.Send("Deadline due", typed.Event.Text)
		}
		if m.Scheduler != nil {
			return m, waitForDeadlineCmd(m.Scheduler.C())
		}
		return m, nil
	case PrioritizeResultMsg:
		return m.onPrioritizeResult(typed), nil
	case IdeaTasksMsg:
		return m.onIdeaTasks(typed), nil
	case EncouragementMsg:
		return m.onEncouragement(typed), nil
	case QuotesMsg:
		return m.onQuotes(typed), nil
	case SwitchViewMsg:
		m.CurrentView = typed.View
		m.ensureValidView()
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}

	if m.Modal != ModalNone {
		return m.handleModalKey(msg)
	}
	if m.Palette.Active {
		next := m.handlePaletteKey(msg)
		next.ensureValidView()
		return next, nil
	}
	if m.addingTask || m.addingSubject {
		return m.handleInputKey(msg)
	}

	switch msg.String() {
	case "/":
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active", IsError: false}
		return m, nil
	case m.Keys.Home:
		m.CurrentView = ViewState{Kind: ViewHome}
		return m, nil
	case m.Keys.Calendar:
		m.CurrentView = ViewState{Kind: ViewCalendar}
		return m, nil
	case m.Keys.Subjects:
		m.CurrentView = ViewState{Kind: ViewSubjects}
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case "S":
		m.openSettings()
		return m, nil
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}

	switch m.CurrentView.Kind {
	case ViewHome:
		return m.handleHomeKey(msg)
	case ViewCalendar:
		next := m.handleCalendarKey(msg)
		return next, nil
	case ViewSubjects:
		return m.handleSubjectsKey(msg)
	case ViewSubject:
		return m.handleSubjectDetailKey(msg)
	}
	return m, nil
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "e" {
		cmd := m.dispatchEncouragement()
		return m, cmd
	}
	return m, nil
}

func (m Model) handleCalendarKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "h":
		m.Calendar.Year, m.Calendar.Month = prevMonth(m.Calendar.Year, m.Calendar.Month)
	case "l":
		m.Calendar.Year, m.Calendar.Month = nextMonth(m.Calendar.Year, m.Calendar.Month)
	case "t":
		now := m.now()
		m.Calendar = CalendarState{Year: now.Year(), Month: now.Month()}
	}
	return m
}

func (m Model) handleSubjectsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.SubCursor < len(m.Subjects)-1 {
			m.SubCursor++
		}
	case "k", "up":
		if m.SubCursor > 0 {
			m.SubCursor--
		}
	case "n":
		m.addingSubject = true
		m.subjectInput.SetValue("")
		m.subjectInput.Focus()
	case "enter":
		if m.SubCursor >= 0 && m.SubCursor < len(m.Subjects) {
			m.openSubject(m.Subjects[m.SubCursor].ID)
		}
	case "x":
		if m.SubCursor >= 0 && m.SubCursor < len(m.Subjects) {
			m.deleteSubject(m.Subjects[m.SubCursor].ID)
		}
	}
	return m, nil
}

func (m Model) handleSubjectDetailKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	visible := model.TasksForSubject(m.Tasks, m.CurrentView.SubjectID)
	switch msg.String() {
	case "esc":
		m.CurrentView = ViewState{Kind: ViewSubjects}
		return m, nil
	case "j", "down":
		if m.TaskCursor < len(visible)-1 {
			m.TaskCursor++
		}
	case "k", "up":
		if m.TaskCursor > 0 {
			m.TaskCursor--
		}
	case "a":
		m.addingTask = true
		m.taskInput.SetValue("")
		m.taskInput.Focus()
	case " ":
		if t, ok := m.selectedTask(); ok {
			m.toggleTask(t.ID)
		}
	case "x":
		if t, ok := m.selectedTask(); ok {
			m.deleteTask(t.ID)
		}
	case "d":
		if t, ok := m.selectedTask(); ok {
			m.Modal = ModalDeadline
			m.DeadlineE = DeadlineEditorState{TaskID: t.ID}
			m.deadlineInput.SetValue("")
			m.deadlineInput.Focus()
		}
	case "f":
		if t, ok := m.selectedTask(); ok {
			cmd := m.startFocus(t)
			return m, cmd
		}
	case "p":
		cmd := m.dispatchPrioritize()
		return m, cmd
	case "i":
		m.Modal = ModalIdea
		m.ideaArea.SetValue("")
		m.ideaArea.Focus()
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.addingTask = false
		m.addingSubject = false
		m.taskInput.Blur()
		m.subjectInput.Blur()
		return m, nil
	case "enter":
		if m.addingTask {
			m.addingTask = false
			m.taskInput.Blur()
			m.addTask(m.taskInput.Value(), m.CurrentView.SubjectID)
			m.TaskCursor = len(model.TasksForSubject(m.Tasks, m.CurrentView.SubjectID)) - 1
		}
		if m.addingSubject {
			m.addingSubject = false
			m.subjectInput.Blur()
			if subject, ok := m.addSubject(m.subjectInput.Value()); ok {
				m.SubCursor = len(m.Subjects) - 1
				m.openSubject(subject.ID)
			}
		}
		return m, nil
	}
	var cmd tea.Cmd
	if m.addingTask {
		m.taskInput, cmd = m.taskInput.Update(msg)
	} else {
		m.subjectInput, cmd = m.subjectInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Modal {
	case ModalFocus:
		return m.handleFocusKey(msg)
	case ModalSettings:
		next := m.handleSettingsKey(msg)
		return next, nil
	case ModalDeadline:
		return m.handleDeadlineKey(msg)
	case ModalResetConfirm:
		switch msg.String() {
		case "y":
			m.Modal = ModalNone
			m.factoryReset()
		case "n", "esc":
			m.Modal = ModalNone
			m.Status = StatusBar{Text: "reset cancelled", IsError: false}
		}
		return m, nil
	case ModalIdea:
		switch msg.String() {
		case "esc":
			m.Modal = ModalNone
			m.ideaArea.Blur()
			return m, nil
		case "ctrl+d":
			idea := strings.TrimSpace(m.ideaArea.Value())
			if idea == "" {
				m.Status = StatusBar{Text: "idea is empty", IsError: true}
				return m, nil
			}
			m.Modal = ModalNone
			m.ideaArea.Blur()
			cmd := m.dispatchIdea(idea)
			return m, cmd
		}
		var cmd tea.Cmd
		m.ideaArea, cmd = m.ideaArea.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) openSettings() {
	m.Modal = ModalSettings
	m.SettingsE = SettingsEditorState{
		DarkMode: m.Settings.DarkMode,
		Pomodoro: fmt.Sprintf("%d", m.Settings.PomodoroDuration),
		Short:    fmt.Sprintf("%d", m.Settings.ShortBreakDuration),
		Long:     fmt.Sprintf("%d", m.Settings.LongBreakDuration),
	}
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Modal = ModalNone
		m.Status = StatusBar{Text: "settings unchanged", IsError: false}
		return m
	case "enter":
		m.Modal = ModalNone
		m.applySettings()
		return m
	case "j", "down":
		if m.SettingsE.Cursor < 3 {
			m.SettingsE.Cursor++
		}
		return m
	case "k", "up":
		if m.SettingsE.Cursor > 0 {
			m.SettingsE.Cursor--
		}
		return m
	case " ":
		if m.SettingsE.Cursor == 0 {
			m.SettingsE.DarkMode = !m.SettingsE.DarkMode
		}
		return m
	case "backspace":
		field := m.settingsField()
		if field != nil && len(*field) > 0 {
			*field = (*field)[:len(*field)-1]
		}
		return m
	}
	if msg.Type == tea.KeyRunes {
		field := m.settingsField()
		if field == nil {
			return m
		}
		for _, r := range msg.Runes {
			if r >= '0' && r <= '9' {
				*field += string(r)
			}
		}
	}
	return m
}

func (m *Model) settingsField() *string {
	switch m.SettingsE.Cursor {
	case 1:
		return &m.SettingsE.Pomodoro
	case 2:
		return &m.SettingsE.Short
	case 3:
		return &m.SettingsE.Long
	default:
		return nil
	}
}

func (m Model) handleDeadlineKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Modal = ModalNone
		m.deadlineInput.Blur()
		return m, nil
	case "enter":
		if err := m.assignDeadline(m.DeadlineE.TaskID, m.deadlineInput.Value()); err != nil {
			m.DeadlineE.Err = err.Error()
			return m, nil
		}
		m.Modal = ModalNone
		m.deadlineInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.deadlineInput, cmd = m.deadlineInput.Update(msg)
	return m, cmd
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			if m.CurrentView.Kind != ViewSubject {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "open a subject before adding tasks"}
			}
			if _, ok := m.addTask(a.Text, m.CurrentView.SubjectID); !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "could not add task"}
			}
			return commands.Result{Message: fmt.Sprintf("added task: %s", a.Text)}, nil
		},
		Subject: func(s commands.SubjectArgs) (commands.Result, error) {
			subject, ok := m.addSubject(s.Name)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "could not add subject"}
			}
			m.SubCursor = len(m.Subjects) - 1
			m.openSubject(subject.ID)
			return commands.Result{Message: fmt.Sprintf("added subject: %s", s.Name)}, nil
		},
		Show: func(s commands.ShowArgs) (commands.Result, error) {
			switch s.Screen {
			case commands.ScreenHome:
				m.CurrentView = ViewState{Kind: ViewHome}
			case commands.ScreenCalendar:
				m.CurrentView = ViewState{Kind: ViewCalendar}
			case commands.ScreenSubjects:
				m.CurrentView = ViewState{Kind: ViewSubjects}
			}
			return commands.Result{Message: fmt.Sprintf("showing %s", s.Screen)}, nil
		},
		Reset: func() (commands.Result, error) {
			m.Modal = ModalResetConfirm
			return commands.Result{Message: "confirm factory reset"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}

func waitForDeadlineCmd(ch <-chan scheduler.DeadlineEvent) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return DeadlineDueMsg{Event: ev}
	}
}

func prevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

func (m Model) View() string {
	m.syncBubbleData()
	theme := views.NewTheme(m.Settings.DarkMode)

	var body string
	switch m.CurrentView.Kind {
	case ViewHome:
		body = m.renderHome(theme)
	case ViewCalendar:
		body = m.renderCalendar(theme)
	case ViewSubjects:
		body = m.renderSubjects(theme)
	case ViewSubject:
		body = m.renderSubjectDetail(theme)
	}

	overlay := m.renderOverlay(theme)

	return views.RenderApp(theme, views.AppData{
		Header:     fmt.Sprintf("dryleaf | %s", m.CurrentView.Kind),
		Body:       body,
		Overlay:    overlay,
		StatusLine: m.Status.Text,
		IsError:    m.Status.IsError,
		Footer:     fmt.Sprintf("keys: %s home | %s calendar | %s subjects | / palette | S settings | %s help | %s quit", m.Keys.Home, m.Keys.Calendar, m.Keys.Subjects, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) renderHome(theme views.Theme) string {
	slices := model.ProgressSlices(m.Subjects, m.Tasks)
	sliceData := make([]views.ProgressSliceData, 0, len(slices))
	for _, s := range slices {
		sliceData = append(sliceData, views.ProgressSliceData{
			Name:      s.Name,
			Completed: s.Completed,
			Total:     s.Total,
			WidthPct:  s.EndPct - s.StartPct,
			Ratio:     s.Ratio(),
			Color:     s.Color,
		})
	}

	deadlines := model.UpcomingDeadlines(m.Tasks, m.Subjects, m.now())
	deadlineData := make([]views.DeadlineRowData, 0, len(deadlines))
	for _, d := range deadlines {
		deadlineData = append(deadlineData, views.DeadlineRowData{
			Text:        d.Text,
			SubjectName: d.SubjectName,
			Label:       d.Label,
			Overdue:     d.Overdue,
		})
	}

	encouragement := ""
	if m.Assistant.Encouragement != "" {
		encouragement = views.RenderMarkdown(m.Assistant.Encouragement, m.Settings.DarkMode)
	}

	return views.RenderHomePanel(theme, views.HomePanelData{
		Slices:        sliceData,
		Deadlines:     deadlineData,
		Quote:         m.currentQuote(),
		Encouragement: encouragement,
		AssistantBusy: m.Assistant.Busy,
		SpinnerView:   m.aiSpinner.View(),
	})
}

func (m Model) renderCalendar(theme views.Theme) string {
	grid := model.MonthGrid(m.Calendar.Year, m.Calendar.Month, m.Tasks, m.now())
	weeks := grid.Weeks()
	weekData := make([][]views.DayCellData, 0, len(weeks))
	for _, week := range weeks {
		row := make([]views.DayCellData, 0, len(week))
		for _, day := range week {
			texts := make([]string, 0, len(day.Tasks))
			for _, t := range day.Tasks {
				texts = append(texts, t.Text)
			}
			row = append(row, views.DayCellData{
				Day:      day.Day,
				IsToday:  day.IsToday,
				Tasks:    texts,
				Overflow: day.Overflow,
			})
		}
		weekData = append(weekData, row)
	}
	title := fmt.Sprintf("%s %d", m.Calendar.Month, m.Calendar.Year)
	return views.RenderCalendarPanel(theme, views.CalendarPanelData{MonthTitle: title, Weeks: weekData})
}

func (m Model) renderSubjects(theme views.Theme) string {
	return views.RenderSubjectsPanel(theme, views.SubjectsPanelData{
		TableView:    m.subjectsTable.View(),
		InputView:    m.subjectInput.View(),
		InputActive:  m.addingSubject,
		UnfiledCount: model.OrphanCount(m.Tasks, m.Subjects),
	})
}

func (m Model) renderSubjectDetail(theme views.Theme) string {
	subject, _ := model.SubjectByID(m.Subjects, m.CurrentView.SubjectID)
	visible := model.TasksForSubject(m.Tasks, m.CurrentView.SubjectID)
	rows := make([]views.TaskRowData, 0, len(visible))
	now := m.now()
	for i, t := range visible {
		label := ""
		if t.Deadline != nil {
			label = model.RelativeDayLabel(*t.Deadline, now)
		}
		rows = append(rows, views.TaskRowData{
			Text:          t.Text,
			Completed:     t.Completed,
			Priority:      string(t.Priority),
			DeadlineLabel: label,
			Selected:      i == m.TaskCursor,
		})
	}
	return views.RenderSubjectDetail(theme, views.SubjectDetailData{
		SubjectName:   subject.Name,
		Tasks:         rows,
		InputView:     m.taskInput.View(),
		InputActive:   m.addingTask,
		AssistantBusy: m.Assistant.Busy,
		SpinnerView:   m.aiSpinner.View(),
	})
}

func (m Model) renderOverlay(theme views.Theme) string {
	switch m.Modal {
	case ModalFocus:
		return views.RenderFocusModal(theme, views.FocusModalData{
			TaskText:     m.Focus.TaskText,
			Timer:        formatDuration(m.Focus.RemainingSec),
			State:        string(m.Focus.State),
			ProgressView: m.focusProgress.ViewAs(m.focusPct()),
			BreakMinutes: m.Settings.ShortBreakDuration,
		})
	case ModalSettings:
		return views.RenderSettingsModal(theme, views.SettingsModalData{
			Fields: []views.SettingsFieldData{
				{Label: "dark mode", Value: fmt.Sprintf("%t", m.SettingsE.DarkMode), Selected: m.SettingsE.Cursor == 0},
				{Label: "pomodoro minutes", Value: m.SettingsE.Pomodoro, Selected: m.SettingsE.Cursor == 1},
				{Label: "short break minutes", Value: m.SettingsE.Short, Selected: m.SettingsE.Cursor == 2},
				{Label: "long break minutes", Value: m.SettingsE.Long, Selected: m.SettingsE.Cursor == 3},
			},
		})
	case ModalDeadline:
		text := ""
		if idx := m.taskIndex(m.DeadlineE.TaskID); idx >= 0 {
			text = m.Tasks[idx].Text
		}
		return views.RenderDeadlineModal(theme, views.DeadlineModalData{
			TaskText:  text,
			InputView: m.deadlineInput.View(),
			ErrorText: m.DeadlineE.Err,
		})
	case ModalResetConfirm:
		return views.RenderResetConfirm(theme)
	case ModalIdea:
		subject, _ := model.SubjectByID(m.Subjects, m.CurrentView.SubjectID)
		return views.RenderIdeaModal(theme, views.IdeaModalData{
			SubjectName:  subject.Name,
			TextareaView: m.ideaArea.View(),
			Busy:         m.Assistant.Busy,
			SpinnerView:  m.aiSpinner.View(),
		})
	}
	if m.Palette.Active {
		return views.RenderCommandPalette(true, m.commandInput.View())
	}
	if m.HelpVisible {
		return m.renderHelp()
	}
	return ""
}

func (m Model) renderHelp() string {
	bindings := m.viewBindings()
	plain := make([]string, 0, len(bindings))
	keyBindings := make([]key.Binding, 0, len(bindings))
	for _, kb := range bindings {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
		keyBindings = append(keyBindings, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView.Kind),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: keyBindings,
			full:  [][]key.Binding{keyBindings},
		}),
	})
}

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) viewBindings() []KeyBinding {
	switch m.CurrentView.Kind {
	case ViewHome:
		return []KeyBinding{
			{Key: "e", Action: "ask for encouragement"},
			{Key: "S", Action: "open settings"},
		}
	case ViewCalendar:
		return []KeyBinding{
			{Key: "h/l", Action: "previous/next month"},
			{Key: "t", Action: "jump to current month"},
		}
	case ViewSubjects:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "n", Action: "new subject"},
			{Key: "enter", Action: "open subject"},
			{Key: "x", Action: "delete subject"},
		}
	case ViewSubject:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "a", Action: "add task"},
			{Key: "space", Action: "toggle completion"},
			{Key: "x", Action: "delete task"},
			{Key: "d", Action: "assign deadline"},
			{Key: "f", Action: "start focus session"},
			{Key: "p", Action: "prioritize with assistant"},
			{Key: "i", Action: "idea to tasks"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}
