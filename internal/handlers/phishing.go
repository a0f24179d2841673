package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/garuda-sec/garuda/internal/classify"
	"github.com/garuda-sec/garuda/internal/ocr"
	"github.com/garuda-sec/garuda/internal/ratelimit"
)

// PhishingHandler exposes the classification pipeline over HTTP.
type PhishingHandler struct {
	classifier *classify.Classifier
	ocr        *ocr.Client
	limiter    *ratelimit.Limiter
	logger     *slog.Logger
}

func NewPhishingHandler(classifier *classify.Classifier, ocrClient *ocr.Client, limiter *ratelimit.Limiter, logger *slog.Logger) *PhishingHandler {
	return &PhishingHandler{
		classifier: classifier,
		ocr:        ocrClient,
		limiter:    limiter,
		logger:     logger,
	}
}

// phishingRequest carries exactly one of the input fields. Screenshot is raw
// image data routed through the text-extraction service; ScreenshotText is
// pre-extracted text accepted directly.
type phishingRequest struct {
	URL            string `json:"url"`
	Email          string `json:"email"`
	Message        string `json:"message"`
	Screenshot     string `json:"screenshot"`
	ScreenshotText string `json:"screenshotText"`
}

// Detect handles POST /api/phishing. Expected failure modes (invalid input,
// unreadable screenshots, remote model outages) are 200s with a structured
// verdict; only an internal fault maps to a 500.
func (h *PhishingHandler) Detect(w http.ResponseWriter, r *http.Request) {
	if h.limiter.Check(w, r, "classify") {
		return
	}

	var req phishingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	creq := classify.Request{
		URL:            req.URL,
		Email:          req.Email,
		Message:        req.Message,
		ScreenshotText: req.ScreenshotText,
	}

	// Raw screenshots go through the extraction service first; the core only
	// ever sees text. Extraction failure is terminal for the request.
	if creq.URL == "" && creq.Email == "" && creq.Message == "" &&
		creq.ScreenshotText == "" && req.Screenshot != "" {
		text, err := h.ocr.ExtractText(r.Context(), req.Screenshot)
		if err != nil {
			h.logger.Warn("text extraction failed", "err", err)
			writeJSON(w, http.StatusOK, &classify.Verdict{
				Label:      classify.LabelError,
				Confidence: 0,
				Summary:    "Could not extract text from the screenshot.",
				Details: []string{
					"OCR service temporarily unavailable. Please use URL, Email, or Message detection instead.",
				},
				Type: classify.TypeScreenshot,
			})
			return
		}
		if strings.TrimSpace(text) == "" {
			writeJSON(w, http.StatusOK, classify.NoTextVerdict())
			return
		}
		creq.ScreenshotText = text
	}

	verdict := h.classifier.Classify(r.Context(), creq)

	status := http.StatusOK
	if verdict.Internal {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, verdict)
}
