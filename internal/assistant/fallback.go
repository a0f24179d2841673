package assistant

import "strings"

// fallbackResponse returns a canned, topic-matched answer. Used when no
// model is configured or the model call fails; the chat surface never
// returns an error to the user.
func fallbackResponse(userMessage string) string {
	message := strings.ToLower(userMessage)

	switch {
	case strings.Contains(message, "phishing") || strings.Contains(message, "scam"):
		return `🛡️ Phishing is a cyber attack where criminals try to trick you into giving away personal information like passwords, credit card numbers, or bank details. Here's how to protect yourself:

• **Never click suspicious links** in emails or messages
• **Verify the sender** - check if the email address looks legitimate
• **Look for urgent language** - "Act now!" or "Your account will be closed!"
• **Check the URL** - hover over links to see the real destination
• **Don't share personal info** - legitimate companies won't ask for passwords via email
• **When in doubt, contact the company directly** using their official website

Remember: When something seems too good to be true, it usually is!`

	case strings.Contains(message, "url") || strings.Contains(message, "link"):
		return `🔗 When checking URLs for safety, look for these red flags:

• **Suspicious domains** - misspellings like "g0ogle" instead of "google"
• **No HTTPS** - secure sites start with "https://"
• **Too many subdomains** - like "very.long.suspicious.domain.com"
• **Shortened URLs** - be cautious with bit.ly, tinyurl.com links
• **IP addresses** - legitimate sites use domain names, not numbers

Use the URL detection tool to analyze any suspicious links!`

	case strings.Contains(message, "email") || strings.Contains(message, "message"):
		return `📧 Suspicious emails and messages often contain:

• **Urgent language** - "Act immediately!" or "Limited time offer!"
• **Generic greetings** - "Dear Customer" instead of your name
• **Suspicious attachments** - unexpected files or documents
• **Links to fake websites** - designed to steal your information
• **Requests for personal info** - passwords, SSN, or account details
• **Poor grammar and spelling** - professional companies proofread their messages

Use the Email or Message detection tools to analyze suspicious content!`

	case strings.Contains(message, "help") || strings.Contains(message, "how"):
		return `🛡️ I'm Garuda, your phishing detection assistant! Here's how I can help:

• **URL Detection** - Paste suspicious links to check if they're safe
• **Email Analysis** - Upload email content to detect phishing attempts
• **Message Scanning** - Check text messages for suspicious patterns
• **Screenshot Analysis** - Upload images to extract and analyze text

Just ask me about phishing, cybersecurity, or use the detection tools!`

	default:
		return `🛡️ I'm Garuda, your AI-powered phishing detection assistant! I can help you identify suspicious URLs, emails, messages, and screenshots.

Try asking me about:
• How to spot phishing emails
• What makes a URL suspicious
• How to protect yourself from scams
• Or use the detection tools to analyze content!`
	}
}

// fallbackCitations returns fixed citations matched to the user's topic,
// capped at three.
func fallbackCitations(userMessage string) []Citation {
	message := strings.ToLower(userMessage)
	var citations []Citation

	if strings.Contains(message, "phishing") || strings.Contains(message, "scam") {
		citations = append(citations, ftcCitation)
	}
	if strings.Contains(message, "cybersecurity") || strings.Contains(message, "security") {
		citations = append(citations, Citation{
			Title: "CISA: Cybersecurity Tips",
			URL:   "https://www.cisa.gov/cybersecurity-tips",
		})
	}
	citations = append(citations, Citation{
		Title: "Wikipedia: Phishing",
		URL:   "https://en.wikipedia.org/wiki/Phishing",
	})

	if len(citations) > maxCitations {
		citations = citations[:maxCitations]
	}
	return citations
}
