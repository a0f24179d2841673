// Package assistant implements the conversational cybersecurity helper: a
// templated prompt forwarded to a language model, with canned topic-matched
// answers when the model is unavailable and keyword-driven citation lookup.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/garuda-sec/garuda/internal/config"
)

// Message is one role-tagged chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Citation is one suggested further-reading link.
type Citation struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Assistant answers cybersecurity questions. A nil model client (no API key
// configured) selects the canned fallback path.
type Assistant struct {
	client  *anthropic.Client
	model   string
	http    *http.Client
	wikiURL string
	logger  *slog.Logger
}

func New(cfg config.AssistantConfig, logger *slog.Logger) *Assistant {
	a := &Assistant{
		model:   cfg.Model,
		http:    &http.Client{Timeout: 10 * time.Second},
		wikiURL: wikiSearchURL,
		logger:  logger,
	}
	if cfg.APIKey != "" {
		client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))
		a.client = &client
		logger.Info("assistant model enabled", "model", cfg.Model)
	} else {
		logger.Info("assistant model not configured, using canned responses")
	}
	return a
}

const systemPrompt = `You are Garuda — a friendly, concise cybersecurity assistant specialized in phishing, scams, and online fraud.
Answer clearly in simple language. Use short bullet lists when helpful. Do not give legal or financial advice; suggest official sources or a professional.
When asked about scams or fraud, include at least one reputable source where the user can read more.`

// Respond produces a reply plus up to three citations. It never fails: any
// model error degrades to the canned topic-matched answer.
func (a *Assistant) Respond(ctx context.Context, messages []Message) (string, []Citation) {
	lastUser := ""
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			lastUser = messages[i].Content
			break
		}
	}

	if a.client == nil {
		return fallbackResponse(lastUser), fallbackCitations(lastUser)
	}

	reply, err := a.complete(ctx, messages)
	if err != nil {
		a.logger.Warn("assistant model call failed, using fallback", "err", err)
		return fallbackResponse(lastUser), fallbackCitations(lastUser)
	}
	return reply, a.lookupCitations(ctx, lastUser)
}

func (a *Assistant) complete(ctx context.Context, messages []Message) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
	}
	for _, m := range messages {
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		switch m.Role {
		case "assistant":
			params.Messages = append(params.Messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			params.Messages = append(params.Messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}
	if len(params.Messages) == 0 {
		return "", fmt.Errorf("no usable messages")
	}

	message, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(message.Content) == 0 {
		return "", fmt.Errorf("empty model response")
	}
	return strings.TrimSpace(message.Content[0].Text), nil
}
