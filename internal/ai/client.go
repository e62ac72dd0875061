package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/dryleaf/dryleaf/internal/model"
)

// ErrUnavailable marks calls made without an API key configured.
var ErrUnavailable = errors.New("ai: no API key configured")

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.5-flash"
)

// Client talks to the Gemini generateContent endpoint. The zero value is a
// disabled client; every assistant feature degrades gracefully around it.
type Client struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

func New(apiKey string) *Client {
	return &Client{APIKey: apiKey}
}

func (c *Client) Available() bool {
	return c != nil && strings.TrimSpace(c.APIKey) != ""
}

// Item is the id/text projection of a task sent out for prioritization.
type Item struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Assignment is one model-decided priority keyed by task id.
type Assignment struct {
	ID       string         `json:"id"`
	Priority model.Priority `json:"priority"`
}

// Prioritize asks the model to rank items by urgency and importance.
// Assignments carrying an unknown id or an invalid priority are dropped;
// callers keep the prior priority for any item left unassigned.
func (c *Client) Prioritize(ctx context.Context, items []Item) ([]Assignment, error) {
	if !c.Available() {
		return nil, ErrUnavailable
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("ai: encode tasks: %w", err)
	}

	text, err := c.generate(ctx, prioritizePrompt(string(encoded)), prioritySchema())
	if err != nil {
		return nil, err
	}

	var raw []Assignment
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("ai: decode priorities: %w", err)
	}

	known := make(map[string]bool, len(items))
	for _, it := range items {
		known[it.ID] = true
	}
	out := make([]Assignment, 0, len(raw))
	for _, a := range raw {
		if known[a.ID] && a.Priority.IsValid() {
			out = append(out, a)
		}
	}
	return out, nil
}

// IdeaToTasks breaks a free-form idea into actionable task texts. Blank
// entries are removed; an all-blank response is an error so the caller never
// silently creates nothing.
func (c *Client) IdeaToTasks(ctx context.Context, idea string) ([]string, error) {
	if !c.Available() {
		return nil, ErrUnavailable
	}

	text, err := c.generate(ctx, ideaPrompt(idea), stringArraySchema())
	if err != nil {
		return nil, err
	}

	var raw []string
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("ai: decode task list: %w", err)
	}
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil, errors.New("ai: model returned no tasks")
	}
	return out, nil
}

// AllDoneMessage is shown instead of calling the model when nothing is open.
const AllDoneMessage = "You've completed all your tasks! Great job. Time to relax or plan your next move."

// EncouragementFallback replaces a failed encouragement call; the failure is
// never surfaced as an error to the user.
const EncouragementFallback = "Could not get encouragement right now. But you can do it!"

// Encouragement returns a short motivational message for the given open task
// texts. With no open tasks the canned celebration is returned without a call.
func (c *Client) Encouragement(ctx context.Context, openTasks []string) (string, error) {
	if len(openTasks) == 0 {
		return AllDoneMessage, nil
	}
	if !c.Available() {
		return "", ErrUnavailable
	}

	text, err := c.generate(ctx, encouragementPrompt(openTasks), nil)
	if err != nil {
		return "", err
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", errors.New("ai: model returned empty message")
	}
	return trimmed, nil
}

// MotivationalQuotes fetches a fresh quote set, falling back to the built-in
// list when the client is disabled or anything goes wrong.
func (c *Client) MotivationalQuotes(ctx context.Context) []string {
	if !c.Available() {
		return DefaultQuotes()
	}
	text, err := c.generate(ctx, quotesPrompt, stringArraySchema())
	if err != nil {
		return DefaultQuotes()
	}
	var quotes []string
	if err := json.Unmarshal([]byte(text), &quotes); err != nil || len(quotes) == 0 {
		return DefaultQuotes()
	}
	return quotes
}

// ApplyAssignments merges assignments into tasks and re-sorts by priority
// rank, keeping input order within a rank.
func ApplyAssignments(tasks []model.Task, assignments []Assignment) []model.Task {
	byID := make(map[string]model.Priority, len(assignments))
	for _, a := range assignments {
		byID[a.ID] = a.Priority
	}
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		if p, ok := byID[out[i].ID]; ok {
			out[i].Priority = p
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})
	return out
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
}

type schema struct {
	Type       string             `json:"type"`
	Items      *schema            `json:"items,omitempty"`
	Properties map[string]*schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
	Enum       []string           `json:"enum,omitempty"`
}

func prioritySchema() *schema {
	return &schema{
		Type: "ARRAY",
		Items: &schema{
			Type: "OBJECT",
			Properties: map[string]*schema{
				"id":       {Type: "STRING"},
				"priority": {Type: "STRING", Enum: []string{"high", "medium", "low"}},
			},
			Required: []string{"id", "priority"},
		},
	}
}

func stringArraySchema() *schema {
	return &schema{Type: "ARRAY", Items: &schema{Type: "STRING"}}
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) generate(ctx context.Context, prompt string, responseSchema *schema) (string, error) {
	modelName := c.Model
	if modelName == "" {
		modelName = defaultModel
	}
	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if responseSchema != nil {
		reqBody.GenerationConfig = &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   responseSchema,
		}
	}
	encoded, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("ai: encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", baseURL, modelName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("ai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	res, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai: call model: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("ai: read response: %w", err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("ai: decode response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("ai: model error %d: %s", parsed.Error.Code, parsed.Error.Message)
		}
		return "", fmt.Errorf("ai: unexpected status %d", res.StatusCode)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("ai: empty candidate response")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
