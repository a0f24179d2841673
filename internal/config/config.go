package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries all runtime settings. It is read once at startup and never
// mutated afterwards.
type Config struct {
	Port     string
	LogLevel string

	Classifier ClassifierConfig
	OCR        OCRConfig
	Assistant  AssistantConfig
}

// ClassifierConfig configures the phishing classification pipeline. An empty
// APIKey deterministically selects the local heuristic pipeline; the remote
// model is never consulted.
type ClassifierConfig struct {
	// APIKey is the Hugging Face inference API token.
	APIKey string
	// Model is the hosted URL-classification model ID.
	Model string
	// APIBase is the inference API root, overridable for tests.
	APIBase string
	// RemoteTimeout bounds one remote classification call. It is generous
	// because the hosted model may cold-start (wait_for_model).
	RemoteTimeout time.Duration
}

// RemoteEnabled reports whether the remote model path is configured.
func (c ClassifierConfig) RemoteEnabled() bool {
	return c.APIKey != "" && c.APIKey != "your_huggingface_api_key_here"
}

// OCRConfig points at the external text-extraction service.
type OCRConfig struct {
	URL     string
	Timeout time.Duration
}

// AssistantConfig configures the chat assistant. An empty APIKey selects the
// canned fallback responses.
type AssistantConfig struct {
	APIKey string
	Model  string
}

// Load reads .env (if present) and then the environment.
func Load() Config {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return Config{
		Port:     envOr("PORT", "8080"),
		LogLevel: os.Getenv("LOG_LEVEL"),
		Classifier: ClassifierConfig{
			APIKey:        os.Getenv("HUGGINGFACE_API_KEY"),
			Model:         envOr("HF_PHISH_MODEL", "r3ddkahili/final-complete-malicious-url-model"),
			APIBase:       envOr("HF_API_BASE", "https://api-inference.huggingface.co"),
			RemoteTimeout: durationOr("REMOTE_TIMEOUT", 60*time.Second),
		},
		OCR: OCRConfig{
			URL:     envOr("OCR_URL", "http://localhost:3002/ocr"),
			Timeout: durationOr("OCR_TIMEOUT", 30*time.Second),
		},
		Assistant: AssistantConfig{
			APIKey: os.Getenv("ANTHROPIC_API_KEY"),
			Model:  envOr("ANTHROPIC_MODEL", "claude-3-5-haiku-latest"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
