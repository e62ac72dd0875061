package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dryleaf/dryleaf/internal/model"
)

func (m *Model) startFocus(t model.Task) tea.Cmd {
	total := m.Settings.PomodoroDuration * 60
	m.Focus = FocusState{
		TaskID:       t.ID,
		TaskText:     t.Text,
		TotalSec:     total,
		RemainingSec: total,
		State:        FocusRunning,
		Token:        m.Focus.Token + 1,
	}
	m.Modal = ModalFocus
	m.Status = StatusBar{Text: "focus session started", IsError: false}
	return focusTickCmd(m.Focus.Token)
}

func (m Model) handleFocusKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		switch m.Focus.State {
		case FocusRunning:
			m.Focus.State = FocusPaused
			m.Status = StatusBar{Text: "focus paused", IsError: false}
			return m, nil
		case FocusPaused:
			m.Focus.State = FocusRunning
			m.Status = StatusBar{Text: "focus resumed", IsError: false}
			return m, focusTickCmd(m.Focus.Token)
		}
		return m, nil
	case "c":
		// Mark Complete works in any timer state, expired included.
		if idx := m.taskIndex(m.Focus.TaskID); idx >= 0 && !m.Tasks[idx].Completed {
			m.Tasks[idx].Completed = true
			m.cancelAlert(m.Focus.TaskID)
			m.persistTasks()
		}
		m.exitFocus()
		m.Status = StatusBar{Text: fmt.Sprintf("completed: %s", m.Focus.TaskText), IsError: false}
		return m, nil
	case "esc":
		// Leaving discards the session; task state is untouched.
		m.exitFocus()
		m.Status = StatusBar{Text: "focus session ended", IsError: false}
		return m, nil
	}
	return m, nil
}

func (m Model) onFocusTick(msg FocusTickMsg) (Model, tea.Cmd) {
	if msg.Token != m.Focus.Token || m.Modal != ModalFocus || m.Focus.State != FocusRunning {
		return m, nil
	}
	if m.Focus.RemainingSec > 0 {
		m.Focus.RemainingSec--
	}
	if m.Focus.RemainingSec == 0 {
		m.Focus.State = FocusExpired
		body := fmt.Sprintf("Great focus! Time for a %d-minute break.", m.Settings.ShortBreakDuration)
		m.Status = StatusBar{Text: body, IsError: false}
		if m.DesktopEnabled && m.notifier != nil {
			_ = m.notifier.Send("Time's up!", body)
		}
		return m, nil
	}
	return m, focusTickCmd(m.Focus.Token)
}

func (m *Model) exitFocus() {
	m.Modal = ModalNone
	m.Focus.Token++
	m.Focus.State = FocusPaused
}

func focusTickCmd(token int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return FocusTickMsg{Token: token} })
}

func formatDuration(totalSec int) string {
	if totalSec < 0 {
		totalSec = 0
	}
	return fmt.Sprintf("%02d:%02d", totalSec/60, totalSec%60)
}
