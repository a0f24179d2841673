// Package ocr is a thin client for the external text-extraction service.
// The service is a black box: one call per classification request, no
// retries.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/garuda-sec/garuda/internal/config"
)

// Client talks to the OCR endpoint.
type Client struct {
	url    string
	client *http.Client
}

func NewClient(cfg config.OCRConfig) *Client {
	return &Client{
		url:    cfg.URL,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type extractRequest struct {
	ImageData string `json:"imageData"`
}

type extractResponse struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
	Error   string `json:"error"`
}

// ExtractText submits image data (base64 or data-URI) and returns the
// recognized text, which may be empty. A response with success=false is
// an error.
func (c *Client) ExtractText(ctx context.Context, imageData string) (string, error) {
	body, err := json.Marshal(extractRequest{ImageData: imageData})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ocr request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("ocr service status %d", resp.StatusCode)
	}

	var parsed extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode ocr response: %w", err)
	}
	if !parsed.Success {
		if parsed.Error != "" {
			return "", fmt.Errorf("ocr service: %s", parsed.Error)
		}
		return "", fmt.Errorf("ocr service reported failure")
	}
	return parsed.Text, nil
}
