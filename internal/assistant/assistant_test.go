package assistant

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garuda-sec/garuda/internal/config"
)

func testAssistant() *Assistant {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(config.AssistantConfig{Model: "test-model"}, logger)
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []string
	}{
		{"simple", "What is phishing?", []string{"what", "is", "phishing"}},
		{"punctuation stripped", "Help!! My account's locked...", []string{"help", "my", "account", "s", "locked"}},
		{"capped at six", "one two three four five six seven eight", []string{"one", "two", "three", "four", "five", "six"}},
		{"empty", "   ", nil},
		{"only symbols", "?!?!", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keywords(tt.message))
		})
	}
}

func TestRespond_FallbackTopics(t *testing.T) {
	a := testAssistant()
	require.Nil(t, a.client)

	tests := []struct {
		name     string
		message  string
		contains string
	}{
		{"phishing", "what is phishing?", "Phishing is a cyber attack"},
		{"scam", "I think this is a scam", "Phishing is a cyber attack"},
		{"url", "is this link safe?", "checking URLs"},
		{"email", "I got a weird email", "Suspicious emails"},
		{"help", "how does this work?", "detection assistant"},
		{"default", "good afternoon", "AI-powered phishing detection assistant"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, citations := a.Respond(context.Background(), []Message{
				{Role: "user", Content: tt.message},
			})
			assert.Contains(t, reply, tt.contains)
			assert.NotEmpty(t, citations)
			assert.LessOrEqual(t, len(citations), 3)
		})
	}
}

func TestRespond_UsesLastUserMessage(t *testing.T) {
	a := testAssistant()

	reply, _ := a.Respond(context.Background(), []Message{
		{Role: "user", Content: "is this link safe?"},
		{Role: "assistant", Content: "Looks risky."},
		{Role: "user", Content: "what is phishing?"},
	})
	assert.Contains(t, reply, "Phishing is a cyber attack")
}

func TestFallbackCitations(t *testing.T) {
	citations := fallbackCitations("is this phishing or another security scam?")

	require.Len(t, citations, 3)
	assert.Equal(t, ftcCitation, citations[0])
	assert.Contains(t, citations[1].Title, "CISA")
	assert.Contains(t, citations[2].Title, "Wikipedia")
}

func TestFallbackCitations_AlwaysIncludesWikipedia(t *testing.T) {
	citations := fallbackCitations("hello")

	require.Len(t, citations, 1)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Phishing", citations[0].URL)
}

func TestLookupCitations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		switch q {
		case "phishing":
			w.Write([]byte(`{"pages": [{"title": "Phishing"}]}`))
		case "banks":
			w.Write([]byte(`{"pages": [{"title": "Bank fraud"}]}`))
		default:
			w.Write([]byte(`{"pages": []}`))
		}
	}))
	defer server.Close()

	a := testAssistant()
	a.wikiURL = server.URL

	citations := a.lookupCitations(context.Background(), "phishing against banks")

	require.Len(t, citations, 3)
	assert.Equal(t, ftcCitation, citations[0])
	assert.Equal(t, Citation{Title: "Phishing", URL: "https://en.wikipedia.org/wiki/Phishing"}, citations[1])
	assert.Equal(t, Citation{Title: "Bank fraud", URL: "https://en.wikipedia.org/wiki/Bank_fraud"}, citations[2])
}

func TestLookupCitations_DeduplicatesByURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pages": [{"title": "Phishing"}]}`))
	}))
	defer server.Close()

	a := testAssistant()
	a.wikiURL = server.URL

	citations := a.lookupCitations(context.Background(), "phishing phishing phishing")

	// One FTC link plus the single distinct Wikipedia hit.
	require.Len(t, citations, 2)
	assert.Equal(t, ftcCitation, citations[0])
	assert.Equal(t, "https://en.wikipedia.org/wiki/Phishing", citations[1].URL)
}

func TestLookupCitations_LookupFailuresSkipped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	a := testAssistant()
	a.wikiURL = server.URL

	citations := a.lookupCitations(context.Background(), "tell me about phishing")
	for _, c := range citations {
		assert.False(t, strings.HasPrefix(c.URL, "https://en.wikipedia.org/wiki/"))
	}
}

func TestLookupCitations_EmptyMessage(t *testing.T) {
	a := testAssistant()
	assert.Nil(t, a.lookupCitations(context.Background(), "  !! "))
}
