package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type ProgressSliceData struct {
	Name      string
	Completed int
	Total     int
	WidthPct  float64
	Ratio     float64
	Color     string
}

type DeadlineRowData struct {
	Text        string
	SubjectName string
	Label       string
	Overdue     bool
}

type HomePanelData struct {
	Slices        []ProgressSliceData
	Deadlines     []DeadlineRowData
	Quote         string
	Encouragement string
	AssistantBusy bool
	SpinnerView   string
}

const progressBarWidth = 60

// RenderHomePanel draws the progress bar, the legend, upcoming deadlines and
// the assistant box. Bar segments are sized by each subject's share of all
// tasks; the filled portion of a segment tracks completion inside it.
func RenderHomePanel(theme Theme, data HomePanelData) string {
	var b strings.Builder
	b.WriteString("home:\n")
	if data.Quote != "" {
		b.WriteString(theme.Muted.Render(`"`+data.Quote+`"`) + "\n")
	}

	if len(data.Slices) == 0 {
		b.WriteString(theme.Muted.Render("no tasks yet; add a subject and some tasks to see progress") + "\n")
	} else {
		b.WriteString(renderProgressBar(data.Slices) + "\n")
		for _, s := range data.Slices {
			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render("■")
			b.WriteString(fmt.Sprintf("%s %s %d/%d\n", swatch, s.Name, s.Completed, s.Total))
		}
	}

	b.WriteString("\nupcoming deadlines:\n")
	if len(data.Deadlines) == 0 {
		b.WriteString(theme.Muted.Render("(none)") + "\n")
	}
	for _, d := range data.Deadlines {
		label := d.Label
		if d.Overdue {
			label = theme.Overdue.Render(label)
		}
		b.WriteString(fmt.Sprintf("- %s (%s) %s\n", d.Text, d.SubjectName, label))
	}

	b.WriteString("\nassistant:\n")
	switch {
	case data.AssistantBusy:
		b.WriteString(data.SpinnerView + " thinking...\n")
	case data.Encouragement != "":
		b.WriteString(data.Encouragement + "\n")
	default:
		b.WriteString(theme.Muted.Render("press e for encouragement") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderProgressBar(slices []ProgressSliceData) string {
	var b strings.Builder
	used := 0
	for i, s := range slices {
		width := int(s.WidthPct / 100 * float64(progressBarWidth))
		if i == len(slices)-1 {
			width = progressBarWidth - used
		}
		if width < 1 {
			width = 1
		}
		used += width
		filled := int(s.Ratio * float64(width))
		seg := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render(seg))
	}
	return b.String()
}

type TaskRowData struct {
	Text          string
	Completed     bool
	Priority      string
	DeadlineLabel string
	Selected      bool
}

type SubjectDetailData struct {
	SubjectName   string
	Tasks         []TaskRowData
	InputView     string
	InputActive   bool
	AssistantBusy bool
	SpinnerView   string
}

func RenderSubjectDetail(theme Theme, data SubjectDetailData) string {
	var b strings.Builder
	b.WriteString("subject: " + theme.Accent.Render(data.SubjectName) + "\n")
	b.WriteString("actions: [a]add [space]toggle [x]delete [d]deadline [f]focus [p]prioritize [i]idea\n")
	if data.InputActive {
		b.WriteString(data.InputView + "\n")
	}
	if data.AssistantBusy {
		b.WriteString(data.SpinnerView + " assistant working...\n")
	}
	if len(data.Tasks) == 0 {
		b.WriteString(theme.Muted.Render("(no tasks)"))
		return b.String()
	}
	for _, t := range data.Tasks {
		cursor := "  "
		if t.Selected {
			cursor = "> "
		}
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		line := fmt.Sprintf("%s%s %s", cursor, box, t.Text)
		if t.Completed {
			line = cursor + box + " " + theme.Done.Render(t.Text)
		}
		line += " " + theme.Muted.Render("("+t.Priority+")")
		if t.DeadlineLabel != "" {
			line += " " + theme.Accent.Render(t.DeadlineLabel)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

type DayCellData struct {
	Day      int
	IsToday  bool
	Tasks    []string
	Overflow int
}

type CalendarPanelData struct {
	MonthTitle string
	Weeks      [][]DayCellData
}

func RenderCalendarPanel(theme Theme, data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString("calendar: " + theme.Accent.Render(data.MonthTitle) + "\n")
	b.WriteString("actions: [h/l]prev/next month [t]today\n")
	b.WriteString(theme.Muted.Render(" Sun  Mon  Tue  Wed  Thu  Fri  Sat") + "\n")
	for _, week := range data.Weeks {
		cells := make([]string, 0, len(week))
		for _, day := range week {
			cells = append(cells, renderDayCell(theme, day))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderDayCell(theme Theme, day DayCellData) string {
	cell := lipgloss.NewStyle().Width(5).Height(4)
	if day.Day == 0 {
		return cell.Render("")
	}
	var b strings.Builder
	num := fmt.Sprintf("%2d", day.Day)
	if day.IsToday {
		num = theme.Accent.Bold(true).Render(num)
	}
	b.WriteString(num + "\n")
	for _, t := range day.Tasks {
		b.WriteString(truncate(t, 4) + "\n")
	}
	if day.Overflow > 0 {
		b.WriteString(theme.Muted.Render(fmt.Sprintf("+%d", day.Overflow)))
	}
	return cell.Render(strings.TrimRight(b.String(), "\n"))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

type SubjectsPanelData struct {
	TableView    string
	InputView    string
	InputActive  bool
	UnfiledCount int
}

func RenderSubjectsPanel(theme Theme, data SubjectsPanelData) string {
	var b strings.Builder
	b.WriteString("subjects:\n")
	b.WriteString("actions: [n]new [enter]open [x]delete\n")
	if data.InputActive {
		b.WriteString(data.InputView + "\n")
	}
	b.WriteString(data.TableView + "\n")
	if data.UnfiledCount > 0 {
		b.WriteString(theme.Muted.Render(fmt.Sprintf("%d task(s) without a subject", data.UnfiledCount)))
	}
	return strings.TrimRight(b.String(), "\n")
}

type FocusModalData struct {
	TaskText     string
	Timer        string
	State        string
	ProgressView string
	BreakMinutes int
}

func RenderFocusModal(theme Theme, data FocusModalData) string {
	var b strings.Builder
	b.WriteString("focus: " + theme.Accent.Render(data.TaskText) + "\n\n")
	b.WriteString(data.Timer + "  " + data.State + "\n")
	b.WriteString(data.ProgressView + "\n\n")
	if data.State == "expired" {
		b.WriteString(fmt.Sprintf("time for a %d-minute break\n", data.BreakMinutes))
	}
	b.WriteString(theme.Muted.Render("[space]pause/resume [c]mark complete [esc]exit"))
	return b.String()
}

type SettingsFieldData struct {
	Label    string
	Value    string
	Selected bool
}

type SettingsModalData struct {
	Fields []SettingsFieldData
}

func RenderSettingsModal(theme Theme, data SettingsModalData) string {
	var b strings.Builder
	b.WriteString("settings:\n")
	for _, f := range data.Fields {
		cursor := "  "
		if f.Selected {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s: %s\n", cursor, f.Label, f.Value))
	}
	b.WriteString(theme.Muted.Render("[j/k]move [space/runes]edit [enter]save [esc]cancel"))
	return b.String()
}

type DeadlineModalData struct {
	TaskText  string
	InputView string
	ErrorText string
}

func RenderDeadlineModal(theme Theme, data DeadlineModalData) string {
	var b strings.Builder
	b.WriteString("deadline for: " + data.TaskText + "\n")
	b.WriteString(data.InputView + "\n")
	if data.ErrorText != "" {
		b.WriteString(theme.Error.Render(data.ErrorText) + "\n")
	}
	b.WriteString(theme.Muted.Render("YYYY-MM-DD, [enter]save [esc]cancel"))
	return b.String()
}

func RenderResetConfirm(theme Theme) string {
	return "factory reset\n\n" +
		theme.Error.Render("this deletes every subject, task and setting") + "\n\n" +
		theme.Muted.Render("[y]confirm [n/esc]cancel")
}

type IdeaModalData struct {
	SubjectName  string
	TextareaView string
	Busy         bool
	SpinnerView  string
}

func RenderIdeaModal(theme Theme, data IdeaModalData) string {
	var b strings.Builder
	b.WriteString("idea to tasks for " + theme.Accent.Render(data.SubjectName) + ":\n")
	b.WriteString(data.TextareaView + "\n")
	if data.Busy {
		b.WriteString(data.SpinnerView + " breaking it down...\n")
	}
	b.WriteString(theme.Muted.Render("[ctrl+d]generate [esc]cancel"))
	return b.String()
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return "command palette:\n" + inputView + "\ncommands: add <text> | subject <name> | show <home|calendar|subjects> | reset"
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("help (" + data.CurrentView + "):\n")
	for _, line := range data.Bindings {
		b.WriteString(line + "\n")
	}
	b.WriteString(data.HelpView)
	return strings.TrimRight(b.String(), "\n")
}
