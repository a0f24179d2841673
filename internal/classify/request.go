package classify

// Request is the tagged input union. Exactly one field should be populated;
// when several are set the first in URL, Email, Message, ScreenshotText
// order wins, matching the public API contract.
type Request struct {
	URL            string
	Email          string
	Message        string
	ScreenshotText string
}
