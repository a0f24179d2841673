package classify

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// minScreenshotText is the minimum extracted-text length worth analyzing.
const minScreenshotText = 10

var (
	embeddedURLRE   = regexp.MustCompile(`https?://[^\s]+`)
	embeddedEmailRE = regexp.MustCompile(`[^\s]+@[^\s]+\.[^\s]+`)
	embeddedPhoneRE = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
)

// NoTextVerdict is the terminal verdict for a screenshot whose extracted
// text is too short to analyze. Pattern matching is never run in this case.
func NoTextVerdict() *Verdict {
	return &Verdict{
		Label:      LabelNoText,
		Confidence: 0,
		Summary:    "No readable text found in the screenshot.",
		Details:    []string{"Please ensure the screenshot contains clear, readable text."},
		Type:       TypeScreenshot,
	}
}

// analyzeScreenshotText scores text extracted from a screenshot. The rule set
// is a superset of the message rules with scam-specific patterns, and
// embedded URLs, email addresses, and phone numbers each contribute
// additional score.
func analyzeScreenshotText(extracted string) *Verdict {
	if len(strings.TrimSpace(extracted)) < minScreenshotText {
		return NoTextVerdict()
	}

	ev := &evidence{}
	text := strings.ToLower(extracted)
	matchRules(text, screenshotRules, ev)

	urls := embeddedURLRE.FindAllString(text, -1)
	for _, raw := range urls {
		u, err := url.Parse(raw)
		if err != nil || u.Hostname() == "" {
			continue
		}
		host := u.Hostname()
		if strings.Contains(host, "-") {
			ev.bump(0.2)
		}
		if len(strings.Split(host, ".")) > 3 {
			ev.bump(0.2)
		}
		if len(raw) > 80 {
			ev.bump(0.1)
		}
		if containsAny(host, embeddedShorteners) {
			ev.bump(0.3)
		}
	}

	emails := embeddedEmailRE.FindAllString(text, -1)
	for _, addr := range emails {
		_, domain, ok := strings.Cut(addr, "@")
		if ok && containsAny(domain, screenshotFreemailDomains) {
			ev.bump(0.2)
		}
	}

	phones := embeddedPhoneRE.FindAllString(text, -1)
	if len(phones) > 0 {
		ev.bump(0.2)
	}

	if strings.Count(text, "!") > 3 || strings.Count(text, "?") > 3 {
		ev.bump(0.2)
	}

	confidence := ev.confidence()
	verdict := textVerdict(confidence, 0.2)

	matched := ev.matched
	preview := strings.Join(matched, ", ")
	if len(matched) > 3 {
		preview = strings.Join(matched[:3], ", ") + "..."
	}

	details := []string{
		fmt.Sprintf("Text extracted: %d characters", len(extracted)),
		fmt.Sprintf("Suspicious patterns detected: %d", len(matched)),
		"Matched patterns: " + preview,
		fmt.Sprintf("Confidence score: %.2f%%", confidence*100),
	}
	if len(urls) > 0 {
		details = append(details, fmt.Sprintf("URLs found: %d", len(urls)))
	}
	if len(emails) > 0 {
		details = append(details, fmt.Sprintf("Email addresses found: %d", len(emails)))
	}
	if len(phones) > 0 {
		details = append(details, fmt.Sprintf("Phone numbers found: %d", len(phones)))
		if region := phoneRegion(phones); region != "" {
			details = append(details, "Phone number region: "+region)
		}
	}

	return &Verdict{
		Label:         fmt.Sprintf("%s (Screenshot)", verdict),
		Confidence:    confidence,
		Summary:       textSummary(verdict, "Screenshot", len(matched), confidence),
		Details:       details,
		Type:          TypeScreenshot,
		ExtractedText: truncate(extracted, 200),
	}
}

// phoneRegion returns the region of the first extracted number that parses
// as a real phone number. Informational only; the score never depends on it.
func phoneRegion(candidates []string) string {
	for _, cand := range candidates {
		num, err := phonenumbers.Parse(cand, "US")
		if err != nil || !phonenumbers.IsValidNumber(num) {
			continue
		}
		return phonenumbers.GetRegionCodeForNumber(num)
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
