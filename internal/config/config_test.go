package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LOG_LEVEL",
		"HUGGINGFACE_API_KEY", "HF_PHISH_MODEL", "HF_API_BASE", "REMOTE_TIMEOUT",
		"OCR_URL", "OCR_TIMEOUT",
		"ANTHROPIC_API_KEY", "ANTHROPIC_MODEL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "r3ddkahili/final-complete-malicious-url-model", cfg.Classifier.Model)
	assert.Equal(t, "https://api-inference.huggingface.co", cfg.Classifier.APIBase)
	assert.Equal(t, 60*time.Second, cfg.Classifier.RemoteTimeout)
	assert.Equal(t, "http://localhost:3002/ocr", cfg.OCR.URL)
	assert.Equal(t, 30*time.Second, cfg.OCR.Timeout)
	assert.Equal(t, "claude-3-5-haiku-latest", cfg.Assistant.Model)
	assert.False(t, cfg.Classifier.RemoteEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("HUGGINGFACE_API_KEY", "hf_secret")
	t.Setenv("REMOTE_TIMEOUT", "5s")
	t.Setenv("OCR_TIMEOUT", "not-a-duration")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Classifier.RemoteEnabled())
	assert.Equal(t, 5*time.Second, cfg.Classifier.RemoteTimeout)
	assert.Equal(t, 30*time.Second, cfg.OCR.Timeout)
}

func TestRemoteEnabled(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		want   bool
	}{
		{"empty", "", false},
		{"placeholder", "your_huggingface_api_key_here", false},
		{"real key", "hf_abc123", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ClassifierConfig{APIKey: tt.apiKey}
			assert.Equal(t, tt.want, cfg.RemoteEnabled())
		})
	}
}
