package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dryleaf/dryleaf/internal/ai"
	"github.com/dryleaf/dryleaf/internal/model"
)

// One assistant call at a time. Every dispatch bumps the token and every
// result message carries it back; stale results are dropped instead of
// clobbering state that moved on.

func (m *Model) dispatchPrioritize() tea.Cmd {
	if m.Assistant.Busy {
		m.Status = StatusBar{Text: "assistant is already working", IsError: true}
		return nil
	}
	if !m.AI.Available() {
		m.Status = StatusBar{Text: "assistant unavailable: set DRYLEAF_GEMINI_API_KEY", IsError: true}
		return nil
	}
	subjectID := m.CurrentView.SubjectID
	items := make([]ai.Item, 0)
	for _, t := range model.TasksForSubject(m.Tasks, subjectID) {
		if !t.Completed {
			items = append(items, ai.Item{ID: t.ID, Text: t.Text})
		}
	}
	if len(items) == 0 {
		m.Status = StatusBar{Text: "no open tasks to prioritize", IsError: true}
		return nil
	}

	m.Assistant.Busy = true
	m.Assistant.Token++
	token := m.Assistant.Token
	client := m.AI
	return tea.Batch(m.aiSpinner.Tick, func() tea.Msg {
		assignments, err := client.Prioritize(context.Background(), items)
		return PrioritizeResultMsg{Token: token, SubjectID: subjectID, Assignments: assignments, Err: err}
	})
}

func (m Model) onPrioritizeResult(msg PrioritizeResultMsg) Model {
	if msg.Token != m.Assistant.Token {
		return m
	}
	m.Assistant.Busy = false
	if msg.Err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("prioritize failed: %v", msg.Err), IsError: true}
		return m
	}
	if _, ok := model.SubjectByID(m.Subjects, msg.SubjectID); !ok {
		m.Status = StatusBar{Text: "subject removed before prioritization finished", IsError: true}
		return m
	}
	m.applySubjectAssignments(msg.SubjectID, msg.Assignments)
	m.Status = StatusBar{Text: "tasks prioritized", IsError: false}
	return m
}

// applySubjectAssignments reorders one subject's open tasks in place: their
// slots in the collection keep their positions, the tasks inside them are
// re-sorted by the assigned priorities.
func (m *Model) applySubjectAssignments(subjectID string, assignments []ai.Assignment) {
	positions := make([]int, 0)
	open := make([]model.Task, 0)
	for i, t := range m.Tasks {
		if t.SubjectID == subjectID && !t.Completed {
			positions = append(positions, i)
			open = append(open, t)
		}
	}
	sorted := ai.ApplyAssignments(open, assignments)
	for i, pos := range positions {
		m.Tasks[pos] = sorted[i]
	}
	m.persistTasks()
}

func (m *Model) dispatchIdea(idea string) tea.Cmd {
	if m.Assistant.Busy {
		m.Status = StatusBar{Text: "assistant is already working", IsError: true}
		return nil
	}
	if !m.AI.Available() {
		m.Status = StatusBar{Text: "assistant unavailable: set DRYLEAF_GEMINI_API_KEY", IsError: true}
		return nil
	}
	subjectID := m.CurrentView.SubjectID

	m.Assistant.Busy = true
	m.Assistant.Token++
	token := m.Assistant.Token
	client := m.AI
	return tea.Batch(m.aiSpinner.Tick, func() tea.Msg {
		texts, err := client.IdeaToTasks(context.Background(), idea)
		return IdeaTasksMsg{Token: token, SubjectID: subjectID, Texts: texts, Err: err}
	})
}

func (m Model) onIdeaTasks(msg IdeaTasksMsg) Model {
	if msg.Token != m.Assistant.Token {
		return m
	}
	m.Assistant.Busy = false
	if msg.Err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("idea breakdown failed: %v", msg.Err), IsError: true}
		return m
	}
	if _, ok := model.SubjectByID(m.Subjects, msg.SubjectID); !ok {
		m.Status = StatusBar{Text: "subject removed before idea breakdown finished", IsError: true}
		return m
	}
	added := 0
	for _, text := range msg.Texts {
		if _, ok := m.addTask(text, msg.SubjectID); ok {
			added++
		}
	}
	m.Status = StatusBar{Text: fmt.Sprintf("added %d task(s) from idea", added), IsError: false}
	return m
}

func (m *Model) dispatchEncouragement() tea.Cmd {
	if m.Assistant.Busy {
		m.Status = StatusBar{Text: "assistant is already working", IsError: true}
		return nil
	}
	openTexts := make([]string, 0)
	for _, t := range m.Tasks {
		if !t.Completed {
			openTexts = append(openTexts, t.Text)
		}
	}
	if len(openTexts) > 0 && !m.AI.Available() {
		m.Status = StatusBar{Text: "assistant unavailable: set DRYLEAF_GEMINI_API_KEY", IsError: true}
		return nil
	}

	m.Assistant.Busy = true
	m.Assistant.Token++
	token := m.Assistant.Token
	client := m.AI
	return tea.Batch(m.aiSpinner.Tick, func() tea.Msg {
		text, err := client.Encouragement(context.Background(), openTexts)
		return EncouragementMsg{Token: token, Text: text, Err: err}
	})
}

func (m Model) onEncouragement(msg EncouragementMsg) Model {
	if msg.Token != m.Assistant.Token {
		return m
	}
	m.Assistant.Busy = false
	if msg.Err != nil {
		// A failed call degrades to a canned message, never an error.
		m.Assistant.Encouragement = ai.EncouragementFallback
		return m
	}
	m.Assistant.Encouragement = msg.Text
	return m
}

func quotesCmd(client *ai.Client) tea.Cmd {
	return func() tea.Msg {
		return QuotesMsg{Quotes: client.MotivationalQuotes(context.Background())}
	}
}

func (m Model) onQuotes(msg QuotesMsg) Model {
	if len(msg.Quotes) == 0 {
		return m
	}
	m.Assistant.Quotes = msg.Quotes
	m.Assistant.QuoteIndex = int(m.now().Unix()) % len(msg.Quotes)
	return m
}

func (m Model) currentQuote() string {
	if len(m.Assistant.Quotes) == 0 {
		return ""
	}
	return m.Assistant.Quotes[m.Assistant.QuoteIndex%len(m.Assistant.Quotes)]
}
