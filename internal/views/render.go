package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Theme carries the style set for one color mode. Build one per render so a
// settings change takes effect immediately.
type Theme struct {
	Dark    bool
	Header  lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Panel   lipgloss.Style
	Modal   lipgloss.Style
	Footer  lipgloss.Style
	Accent  lipgloss.Style
	Muted   lipgloss.Style
	Done    lipgloss.Style
	Overdue lipgloss.Style
}

func NewTheme(dark bool) Theme {
	if dark {
		return Theme{
			Dark:    true,
			Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
			Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			Panel:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
			Modal:   lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 2),
			Footer:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Done:    lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8")),
			Overdue: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		}
	}
	return Theme{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Panel:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Modal:   lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 2),
		Footer:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Done:    lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("7")),
		Overdue: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}

type AppData struct {
	Header     string
	Body       string
	Overlay    string
	StatusLine string
	IsError    bool
	Footer     string
}

// RenderApp lays out one frame. An active overlay (modal or palette) is
// stacked under the body rather than composited over it.
func RenderApp(theme Theme, data AppData) string {
	body := theme.Panel.Width(76).Render(data.Body)

	status := theme.Status.Render(data.StatusLine)
	if data.IsError {
		status = theme.Error.Render(data.StatusLine)
	}

	lines := []string{
		theme.Header.Render(data.Header),
		body,
	}
	if data.Overlay != "" {
		lines = append(lines, theme.Modal.Render(data.Overlay))
	}
	if data.StatusLine != "" {
		lines = append(lines, status)
	}
	if data.Footer != "" {
		lines = append(lines, theme.Footer.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string, dark bool) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "light"
	if dark {
		style = "dark"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
