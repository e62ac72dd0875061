package ai

import (
	"fmt"
	"strings"
)

func prioritizePrompt(taskJSON string) string {
	return fmt.Sprintf(`You are a productivity expert. Prioritize the following tasks based on urgency and importance. Return a JSON array of objects, each with the task "id" and a "priority" level ('high', 'medium', 'low'). The tasks are: %s`, taskJSON)
}

func ideaPrompt(idea string) string {
	return fmt.Sprintf(`You are an expert project planner. Break down the following idea into a list of actionable tasks. Return a JSON array of strings, where each string is a single task. The idea is: %q`, idea)
}

func encouragementPrompt(openTasks []string) string {
	return fmt.Sprintf(`You are a friendly and encouraging productivity coach. Look at this user's uncompleted tasks and provide a short, motivational message (1-2 sentences) to help them get started. Be inspiring but gentle. Here are the tasks: %s`, strings.Join(openTasks, ", "))
}

const quotesPrompt = `You are a source of calm inspiration. Provide a JSON array of 10 short, motivational quotes (5-10 words each) suitable for a productivity app loading screen. The theme should be about focus, growth, and gentle progress.`

var defaultQuotes = []string{
	"One step at a time.",
	"Progress, not perfection.",
	"Begin with a single task.",
	"Focus on the now.",
	"Small wins lead to big results.",
	"You have what it takes.",
	"Embrace the journey.",
	"Clarity comes from action.",
	"Just start.",
	"Breathe. You've got this.",
}

// DefaultQuotes returns the built-in quote rotation used whenever the model
// cannot be reached.
func DefaultQuotes() []string {
	out := make([]string, len(defaultQuotes))
	copy(out, defaultQuotes)
	return out
}
