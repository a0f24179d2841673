package classify

import (
	"fmt"
	"strings"
)

// localURLVerdict maps a clamped confidence to the verdict and risk tier for
// the heuristic URL pipeline. The mapping is pure: no state beyond the
// confidence influences it.
func localURLVerdict(confidence float64) (verdict, risk string) {
	switch {
	case confidence >= 0.7:
		return LabelUnsafe, RiskHigh
	case confidence >= 0.4:
		return LabelSuspicious, RiskMedium
	case confidence >= 0.2:
		return LabelCaution, RiskLow
	default:
		return LabelSafe, RiskLow
	}
}

// unsafeModelLabels are the remote-model labels that force an Unsafe verdict
// regardless of the reported score.
var unsafeModelLabels = map[string]bool{
	"phishing":   true,
	"malware":    true,
	"defacement": true,
	"squatting":  true,
}

// remoteURLVerdict maps a remote model result to the verdict and risk tier.
func remoteURLVerdict(label string, confidence float64) (verdict, risk string) {
	switch {
	case unsafeModelLabels[strings.ToLower(label)]:
		return LabelUnsafe, RiskHigh
	case confidence < 0.3:
		return LabelSafe, RiskLow
	default:
		return LabelSuspicious, RiskMedium
	}
}

// textVerdict maps confidence to Safe/Unsafe with a single per-category
// threshold. Email and message use 0.5; screenshot text uses 0.2, the most
// sensitive threshold in the system.
func textVerdict(confidence, threshold float64) string {
	if confidence > threshold {
		return LabelUnsafe
	}
	return LabelSafe
}

func localURLSummary(verdict string, confidence float64, negatives int) string {
	pct := confidence * 100
	switch verdict {
	case LabelUnsafe:
		return fmt.Sprintf("High risk detected! Found %d suspicious indicators with %.1f%% confidence. Avoid this URL.", negatives, pct)
	case LabelSuspicious:
		return fmt.Sprintf("Suspicious activity detected. Found %d concerning indicators with %.1f%% confidence. Proceed with caution.", negatives, pct)
	case LabelCaution:
		return fmt.Sprintf("Some minor concerns detected with %.1f%% confidence. Generally safe but be cautious.", pct)
	default:
		return fmt.Sprintf("URL appears safe with %.1f%% confidence. No major security concerns detected.", pct)
	}
}

func remoteURLSummary(verdict, modelLabel string, confidence float64) string {
	pct := confidence * 100
	switch verdict {
	case LabelUnsafe:
		return fmt.Sprintf("AI model detected %s with %.1f%% confidence. This URL is potentially dangerous.", modelLabel, pct)
	case LabelSuspicious:
		return fmt.Sprintf("AI model shows some concerns with %.1f%% confidence. Proceed with caution.", pct)
	default:
		return fmt.Sprintf("AI model predicts the URL is likely safe with %.1f%% confidence.", pct)
	}
}

func textSummary(verdict, noun string, matches int, confidence float64) string {
	pct := confidence * 100
	if verdict == LabelUnsafe {
		return fmt.Sprintf("%s contains %d suspicious patterns with %.1f%% confidence.", noun, matches, pct)
	}
	return fmt.Sprintf("%s appears legitimate with %.1f%% confidence.", noun, pct)
}
