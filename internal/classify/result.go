package classify

// Verdict labels.
const (
	LabelSafe       = "Safe"
	LabelCaution    = "Caution"
	LabelSuspicious = "Suspicious"
	LabelUnsafe     = "Unsafe"
	LabelInvalid    = "Invalid"
	LabelInvalidURL = "Invalid URL"
	LabelNoText     = "No Text Detected"
	LabelError      = "Error"
)

// Risk tiers attached to URL verdicts.
const (
	RiskLow    = "Low Risk"
	RiskMedium = "Medium Risk"
	RiskHigh   = "High Risk"
)

// Content types reported back to the caller.
const (
	TypeURL        = "url"
	TypeEmail      = "email"
	TypeMessage    = "message"
	TypeScreenshot = "screenshot"
)

// Verdict is the classification output shared across all pipelines. Every
// producer populates the same closed shape.
type Verdict struct {
	Label              string   `json:"label"`
	Confidence         float64  `json:"confidence"`
	Summary            string   `json:"summary,omitempty"`
	Details            []string `json:"details"`
	Type               string   `json:"type,omitempty"`
	RiskLevel          string   `json:"riskLevel,omitempty"`
	ModelLabel         string   `json:"modelLabel,omitempty"`
	ExtractedText      string   `json:"extractedText,omitempty"`
	PositiveIndicators []string `json:"positiveIndicators,omitempty"`
	NegativeIndicators []string `json:"negativeIndicators,omitempty"`

	// Internal marks a verdict produced by the recovery boundary. It is the
	// only case the HTTP layer maps to a non-2xx status.
	Internal bool `json:"-"`
}
