package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/garuda-sec/garuda/internal/config"
)

// ModelResult is a normalized remote classification.
type ModelResult struct {
	Label string
	Score float64
}

// RemoteModel submits URLs to a hosted text-classification model. Any
// failure (transport, non-2xx, unparsable body, unrecognized shape) is
// reported as an error so the caller can fall back to the local pipeline.
type RemoteModel struct {
	apiKey string
	url    string
	client *http.Client
}

// NewRemoteModel builds the adapter. The client timeout is generous because
// wait_for_model requests can block while the model cold-starts.
func NewRemoteModel(cfg config.ClassifierConfig) *RemoteModel {
	return &RemoteModel{
		apiKey: cfg.APIKey,
		url:    cfg.APIBase + "/models/" + cfg.Model,
		client: &http.Client{Timeout: cfg.RemoteTimeout},
	}
}

type inferenceRequest struct {
	Inputs  string           `json:"inputs"`
	Options inferenceOptions `json:"options"`
}

type inferenceOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

// Classify sends the raw submitted string, unmodified, to the remote model.
func (m *RemoteModel) Classify(ctx context.Context, rawURL string) (ModelResult, error) {
	body, err := json.Marshal(inferenceRequest{
		Inputs:  rawURL,
		Options: inferenceOptions{WaitForModel: true},
	})
	if err != nil {
		return ModelResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(body))
	if err != nil {
		return ModelResult{}, err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return ModelResult{}, fmt.Errorf("inference request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ModelResult{}, fmt.Errorf("inference API status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return ModelResult{}, fmt.Errorf("read inference response: %w", err)
	}

	return parseModelResponse(raw)
}

// shapeMatcher tries to read one known response shape. The hosted API is not
// consistent across models, so matchers are tried in order and the first
// match wins.
type shapeMatcher func(gjson.Result) (ModelResult, bool)

var shapeMatchers = []shapeMatcher{
	// [{"label": ..., "score": ...}, ...]
	func(r gjson.Result) (ModelResult, bool) {
		if l := r.Get("0.label"); l.Exists() {
			return ModelResult{Label: l.String(), Score: r.Get("0.score").Float()}, true
		}
		return ModelResult{}, false
	},
	// [[{"label": ..., "score": ...}, ...]]
	func(r gjson.Result) (ModelResult, bool) {
		if l := r.Get("0.0.label"); l.Exists() {
			return ModelResult{Label: l.String(), Score: r.Get("0.0.score").Float()}, true
		}
		return ModelResult{}, false
	},
	// {"label": ..., "score": ...}
	func(r gjson.Result) (ModelResult, bool) {
		if l := r.Get("label"); l.Exists() {
			return ModelResult{Label: l.String(), Score: r.Get("score").Float()}, true
		}
		return ModelResult{}, false
	},
}

func parseModelResponse(raw []byte) (ModelResult, error) {
	if !gjson.ValidBytes(raw) {
		return ModelResult{}, fmt.Errorf("inference response is not valid JSON")
	}
	parsed := gjson.ParseBytes(raw)

	if errMsg := parsed.Get("error"); errMsg.Exists() {
		return ModelResult{}, fmt.Errorf("inference API error: %s", errMsg.String())
	}
	for _, match := range shapeMatchers {
		if result, ok := match(parsed); ok {
			return result, nil
		}
	}
	return ModelResult{}, fmt.Errorf("unrecognized inference response shape")
}
