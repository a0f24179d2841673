package classify

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/garuda-sec/garuda/internal/config"
)

// Classifier routes classification requests to the correct analyzer
// pipeline. It holds no per-request state; the rule tables it reads are
// immutable after init, so one Classifier serves any number of concurrent
// requests.
type Classifier struct {
	remote *RemoteModel // nil selects the local-only URL pipeline
	logger *slog.Logger
}

// New creates a Classifier. The remote model path is wired in only when the
// configuration carries credentials; the decision is made here, once, not
// per request.
func New(cfg config.ClassifierConfig, logger *slog.Logger) *Classifier {
	c := &Classifier{logger: logger}
	if cfg.RemoteEnabled() {
		c.remote = NewRemoteModel(cfg)
		logger.Info("remote URL model enabled", "model", cfg.Model)
	} else {
		logger.Info("remote URL model not configured, using local heuristics")
	}
	return c
}

// Classify produces a Verdict for exactly one populated request field. It
// never propagates a fault: any panic in a pipeline is converted to an
// Error verdict at this boundary and nowhere else.
func (c *Classifier) Classify(ctx context.Context, req Request) (v *Verdict) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("classification panicked", "panic", r)
			v = &Verdict{
				Label:      LabelError,
				Confidence: 0,
				Details:    []string{fmt.Sprintf("Internal error: %v", r)},
				Internal:   true,
			}
		}
	}()

	switch {
	case req.URL != "":
		return c.classifyURL(ctx, req.URL)
	case req.Email != "":
		return analyzeEmail(req.Email)
	case req.Message != "":
		return analyzeMessage(req.Message)
	case req.ScreenshotText != "":
		return analyzeScreenshotText(req.ScreenshotText)
	default:
		return &Verdict{
			Label:      LabelInvalid,
			Confidence: 0,
			Details:    []string{"No input provided. Please provide URL, email, message, or screenshot."},
		}
	}
}

// classifyURL validates format first, then prefers the remote model when
// configured. Every adapter failure falls back to the local heuristics;
// the caller only ever sees a final verdict.
func (c *Classifier) classifyURL(ctx context.Context, raw string) *Verdict {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return &Verdict{
			Label:      LabelInvalidURL,
			Confidence: 0,
			Summary:    "No URL provided. Please enter a valid URL to analyze.",
			Details:    []string{"Please provide a URL to check for phishing attempts."},
			Type:       TypeURL,
		}
	}

	if !ValidURLFormat(trimmed) {
		return &Verdict{
			Label:      LabelInvalidURL,
			Confidence: 0,
			Summary:    "Invalid URL format. Please check the URL and try again.",
			Details:    []string{"The provided text does not appear to be a valid URL format."},
			Type:       TypeURL,
		}
	}

	if c.remote != nil {
		// The remote path receives the raw submission, not the trimmed or
		// scheme-normalized form.
		result, err := c.remote.Classify(ctx, raw)
		if err == nil {
			return remoteVerdict(raw, result)
		}
		c.logger.Warn("remote model unavailable, falling back to heuristics", "err", err)
	}

	return analyzeURLLocally(trimmed)
}

// remoteVerdict builds the verdict for a successful remote classification,
// annotated with a few structural observations about the URL itself.
func remoteVerdict(raw string, result ModelResult) *Verdict {
	verdict, risk := remoteURLVerdict(result.Label, result.Score)

	details := []string{
		"AI Model Analysis: " + result.Label,
		fmt.Sprintf("Model Confidence: %.2f%%", result.Score*100),
		"Risk Assessment: " + risk,
	}

	if u, err := url.Parse(raw); err == nil && u.Hostname() != "" {
		host := u.Hostname()
		if strings.Count(host, ".") >= 4 {
			details = append(details, "Multiple subdomains detected.")
		}
		if strings.Contains(host, "-") {
			details = append(details, "Hyphens in host name.")
		}
		if len(raw) > 90 {
			details = append(details, "Long URL length.")
		}
		if u.Scheme != "https" {
			details = append(details, "Not using HTTPS protocol.")
		}
	}

	return &Verdict{
		Label:      verdict + " (" + risk + ")",
		Confidence: result.Score,
		Summary:    remoteURLSummary(verdict, result.Label, result.Score),
		Details:    details,
		Type:       TypeURL,
		RiskLevel:  risk,
		ModelLabel: result.Label,
	}
}
