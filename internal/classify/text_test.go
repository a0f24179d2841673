package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeEmail_PhishingScenario(t *testing.T) {
	v := analyzeEmail("URGENT: verify your account now, click here http://bit.ly/x")

	assert.Equal(t, "Unsafe (Email)", v.Label)
	assert.Greater(t, v.Confidence, 0.5)
	assert.Equal(t, TypeEmail, v.Type)
	assert.Empty(t, v.RiskLevel) // no risk tier outside the URL category
	assert.Contains(t, v.Details[0], "Suspicious patterns detected: 3")
}

func TestAnalyzeEmail_Legitimate(t *testing.T) {
	v := analyzeEmail("Hi team, attached are the meeting notes from Tuesday.")

	assert.Equal(t, "Safe (Email)", v.Label)
	assert.LessOrEqual(t, v.Confidence, 0.5)
	assert.Contains(t, v.Summary, "appears legitimate")
}

func TestAnalyzeEmail_FreemailSenderDomain(t *testing.T) {
	// The freemail bump alone is 0.1 and must not flip the verdict.
	v := analyzeEmail("From: someone@gmail.com\nLunch on Friday?")

	assert.Contains(t, v.Details[1], "Suspicious domain")
	assert.Equal(t, "Safe (Email)", v.Label)
}

func TestAnalyzeMessage_Scam(t *testing.T) {
	v := analyzeMessage("Congratulations! You win a free prize. Click here to confirm: http://example.com/claim. Call now!")

	assert.Equal(t, "Unsafe (Message)", v.Label)
	assert.Greater(t, v.Confidence, 0.5)
	assert.Equal(t, TypeMessage, v.Type)
}

func TestAnalyzeMessage_Plain(t *testing.T) {
	v := analyzeMessage("Running ten minutes late, see you soon.")

	assert.Equal(t, "Safe (Message)", v.Label)
	assert.Equal(t, 0.0, v.Confidence)
}

func TestRulesMatchOnceEach(t *testing.T) {
	// A rule matching many times in the text still contributes its weight
	// exactly once.
	single := analyzeMessage("urgent")
	repeated := analyzeMessage("urgent urgent urgent urgent")
	assert.Equal(t, single.Confidence, repeated.Confidence)
}
