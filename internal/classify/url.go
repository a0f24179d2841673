package classify

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/net/idna"
)

var (
	// Generic scheme://host.tld/path shape.
	genericURLRE = regexp.MustCompile(`(?i)^(https?://)?([\da-z.-]+)\.([a-z.]{2,6})([/\w .-]*)*/?$`)
	// Bare IPv4 with optional port and path.
	ipv4URLRE = regexp.MustCompile(`(?i)^(https?://)?(\d{1,3}\.){3}\d{1,3}(:\d+)?(/.*)?$`)
	// Lenient fallback: first whitespace-separated token holds only
	// URL-safe characters.
	domainTokenRE = regexp.MustCompile(`^[a-zA-Z0-9._~:/?#\[\]@!$&'()*+,;=%-]+$`)

	ipv4HostRE = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}$`)
)

// ValidURLFormat reports whether raw plausibly denotes a URL. It accepts the
// generic URL shape, a bare IPv4, an explicit http(s) scheme, or (leniently)
// anything whose first token contains a dot and only URL-safe characters.
func ValidURLFormat(raw string) bool {
	if genericURLRE.MatchString(raw) || ipv4URLRE.MatchString(raw) {
		return true
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return true
	}
	if strings.Contains(raw, ".") {
		token, _, _ := strings.Cut(raw, " ")
		return domainTokenRE.MatchString(token)
	}
	return false
}

// StructuralFeatures are properties derived purely from URL syntax. They are
// extracted once per URL and feed both the curated-list checks and the direct
// score increments.
type StructuralFeatures struct {
	// Hostname as parsed, case preserved.
	Hostname string
	// Host lowercased and IDNA-normalized; all list lookups use this form.
	HostASCII string
	DotCount  int
	HasHyphen bool
	// DigitCount counts decimal digits in the hostname.
	DigitCount int
	MixedCase  bool
	UsesHTTPS  bool
	IsIPv4     bool
	Port       string
	Path       string
	Query      url.Values
	// TotalLength is the length of the submitted string, not the
	// normalized one.
	TotalLength int
	// Raw is the submitted string.
	Raw string
}

// extractFeatures normalizes a scheme-less URL with an https:// prefix,
// parses it, and derives the structural features. A parse failure here is
// distinct from format validation: it catches edge cases the acceptance
// patterns let through.
func extractFeatures(raw string) (*StructuralFeatures, error) {
	target := raw
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		target = "https://" + raw
	}

	u, err := url.Parse(target)
	if err != nil {
		return nil, err
	}
	host := u.Hostname()
	if host == "" {
		return nil, fmt.Errorf("no hostname in %q", raw)
	}

	lower := strings.ToLower(host)
	ascii := lower
	if a, err := idna.Lookup.ToASCII(lower); err == nil && a != "" {
		ascii = a
	}

	digits := 0
	for _, r := range ascii {
		if r >= '0' && r <= '9' {
			digits++
		}
	}

	return &StructuralFeatures{
		Hostname:    host,
		HostASCII:   ascii,
		DotCount:    strings.Count(ascii, "."),
		HasHyphen:   strings.Contains(ascii, "-"),
		DigitCount:  digits,
		MixedCase:   host != strings.ToLower(host) && host != strings.ToUpper(host),
		UsesHTTPS:   u.Scheme == "https",
		IsIPv4:      ipv4HostRE.MatchString(ascii),
		Port:        u.Port(),
		Path:        strings.ToLower(u.Path),
		Query:       u.Query(),
		TotalLength: len(raw),
		Raw:         raw,
	}, nil
}

// analyzeURLLocally is the heuristic URL pipeline used when no remote model
// is configured or the remote call failed. Each structural feature sums its
// fixed increment unconditionally; there is no early exit.
func analyzeURLLocally(raw string) *Verdict {
	feats, err := extractFeatures(raw)
	if err != nil {
		return &Verdict{
			Label:      LabelInvalidURL,
			Confidence: 0,
			Summary:    "The provided URL is not valid and cannot be parsed.",
			Details:    []string{"Please check the URL format and ensure it is a valid web address."},
			Type:       TypeURL,
		}
	}

	ev := &evidence{}
	var positive, negative []string

	if feats.HasHyphen {
		ev.add(0.2, "Hyphens in hostname")
		negative = append(negative, "Contains hyphens")
	}
	if feats.DotCount >= 4 {
		ev.add(0.3, "Multiple subdomains detected")
		negative = append(negative, "Multiple subdomains")
	}
	if feats.TotalLength > 90 {
		ev.add(0.2, "Long URL length")
		negative = append(negative, "Unusually long URL")
	}
	if !feats.UsesHTTPS {
		ev.add(0.3, "Not using HTTPS protocol")
		negative = append(negative, "No HTTPS encryption")
	} else {
		positive = append(positive, "Uses HTTPS encryption")
	}

	if term := matchTyposquat(feats.HostASCII); term != "" {
		ev.add(0.6, "Potential typosquatting detected")
		if brand := nearestBrand(term); brand != "" {
			ev.matched = append(ev.matched, "Hostname resembles brand: "+brand)
		}
	}

	if hasSuffixAny(feats.HostASCII, suspiciousTLDs) {
		ev.add(0.4, "Suspicious top-level domain")
	}
	if feats.IsIPv4 {
		ev.add(0.4, "Uses IP address instead of domain name")
	}
	if containsAny(feats.HostASCII, urlShorteners) {
		ev.add(0.3, "Shortened URL detected")
	}
	if containsAny(feats.Path, suspiciousPathKeywords) {
		ev.add(0.3, "Suspicious keywords in URL path")
	}
	if hasParamAny(feats.Query, sensitiveQueryParams) {
		ev.add(0.4, "Suspicious query parameters detected")
	}
	if feats.DigitCount > 3 {
		ev.add(0.2, "Excessive numbers in domain name")
	}
	if feats.MixedCase {
		ev.add(0.1, "Mixed case domain (potential obfuscation)")
	}
	if feats.Port != "" && feats.Port != "80" && feats.Port != "443" && feats.Port != "8080" {
		ev.add(0.2, "Non-standard port number")
	}
	if strings.Contains(raw, "%") && strings.Contains(raw, "%20") {
		ev.add(0.2, "URL encoding detected (potential obfuscation)")
	}

	confidence := ev.confidence()
	verdict, risk := localURLVerdict(confidence)

	details := ev.matched
	if len(positive) > 0 {
		details = append(details, "Positive indicators: "+strings.Join(positive, ", "))
	}
	if details == nil {
		details = []string{}
	}

	return &Verdict{
		Label:              verdict + " (" + risk + ")",
		Confidence:         confidence,
		Summary:            localURLSummary(verdict, confidence, len(negative)),
		Details:            details,
		Type:               TypeURL,
		RiskLevel:          risk,
		PositiveIndicators: positive,
		NegativeIndicators: negative,
	}
}

func matchTyposquat(host string) string {
	for _, term := range typosquatTerms {
		if strings.Contains(host, term) {
			return term
		}
	}
	return ""
}

// nearestBrand names the brand a typosquat term imitates. Purely
// informational: it never changes the score.
func nearestBrand(term string) string {
	best, bestDist := "", 3
	for _, brand := range typosquatBrands {
		if d := fuzzy.LevenshteinDistance(term, brand); d < bestDist {
			best, bestDist = brand, d
		}
	}
	return best
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func hasSuffixAny(s string, suffixes []string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

func hasParamAny(q url.Values, names []string) bool {
	for _, n := range names {
		if q.Has(n) {
			return true
		}
	}
	return false
}
