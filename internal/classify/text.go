package classify

import (
	"fmt"
	"regexp"
	"strings"
)

var senderDomainRE = regexp.MustCompile(`@([^\s]+)`)

// analyzeEmail scores email text against the email rule set plus a freemail
// sender-domain check.
func analyzeEmail(email string) *Verdict {
	ev := &evidence{}
	matchRules(email, emailRules, ev)

	if m := senderDomainRE.FindStringSubmatch(email); m != nil {
		domain := strings.ToLower(m[1])
		if containsAny(domain, freemailDomains) {
			ev.add(0.1, "Suspicious domain")
		}
	}

	return textResult(ev, "Email", TypeEmail, 0.5)
}

// analyzeMessage scores a free-form message against the message rule set.
func analyzeMessage(message string) *Verdict {
	ev := &evidence{}
	matchRules(message, messageRules, ev)
	return textResult(ev, "Message", TypeMessage, 0.5)
}

func textResult(ev *evidence, noun, contentType string, threshold float64) *Verdict {
	confidence := ev.confidence()
	verdict := textVerdict(confidence, threshold)

	return &Verdict{
		Label:      fmt.Sprintf("%s (%s)", verdict, noun),
		Confidence: confidence,
		Summary:    textSummary(verdict, noun, len(ev.matched), confidence),
		Details: []string{
			fmt.Sprintf("Suspicious patterns detected: %d", len(ev.matched)),
			"Matched patterns: " + strings.Join(ev.matched, ", "),
			fmt.Sprintf("Confidence score: %.2f%%", confidence*100),
		},
		Type: contentType,
	}
}
