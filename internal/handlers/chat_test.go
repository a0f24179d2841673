package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garuda-sec/garuda/internal/assistant"
	"github.com/garuda-sec/garuda/internal/config"
	"github.com/garuda-sec/garuda/internal/ratelimit"
)

func newTestChatHandler() *ChatHandler {
	logger := testLogger()
	a := assistant.New(config.AssistantConfig{Model: "test-model"}, logger)
	return NewChatHandler(a, ratelimit.New(), logger)
}

func postChat(t *testing.T, h *ChatHandler, body string) (*httptest.ResponseRecorder, chatResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.RemoteAddr = "192.0.2.1:1234"
	rec := httptest.NewRecorder()
	h.Chat(rec, req)

	var resp chatResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestChat_FallbackReply(t *testing.T) {
	h := newTestChatHandler()

	rec, resp := postChat(t, h, `{"messages": [{"role": "user", "content": "what is phishing?"}]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, resp.Message, "Phishing is a cyber attack")
	assert.NotEmpty(t, resp.Citations)
}

func TestChat_EmptyMessages(t *testing.T) {
	h := newTestChatHandler()

	rec, resp := postChat(t, h, `{"messages": []}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, resp.Message)
	// Citations always serialize as an array, never null.
	assert.NotContains(t, rec.Body.String(), `"citations":null`)
}

func TestChat_MalformedJSON(t *testing.T) {
	h := newTestChatHandler()

	rec, _ := postChat(t, h, `{"messages": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid JSON body")
}
