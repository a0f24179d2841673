package classify

import "regexp"

// Rule is one weighted pattern. Every rule in a set is tested independently
// against the input; all matches contribute their weight exactly once. Rule
// order only affects the order matched descriptions are reported in.
type Rule struct {
	Pattern     *regexp.Regexp
	Weight      float64
	Description string
}

var (
	emailRules      []Rule
	messageRules    []Rule
	screenshotRules []Rule
)

// rule compiles a case-insensitive pattern. The bare pattern text doubles as
// the matched-rule description, the same convention the original weight
// tables used.
func rule(pattern string, weight float64) Rule {
	return Rule{
		Pattern:     regexp.MustCompile(`(?i)` + pattern),
		Weight:      weight,
		Description: pattern,
	}
}

func init() {
	emailRules = []Rule{
		rule(`urgent|immediate|act now|limited time`, 0.3),
		rule(`click here|verify account|update information`, 0.4),
		rule(`suspended|locked|expired|terminated`, 0.3),
		rule(`free money|win|prize|lottery`, 0.5),
		rule(`bank|paypal|amazon|apple|microsoft`, 0.2),
		rule(`https?://[^\s]+`, 0.3),
		rule(`[^\s]+@[^\s]+\.[^\s]+`, 0.1),
	}

	messageRules = []Rule{
		rule(`urgent|immediate|act now|limited time`, 0.3),
		rule(`click here|verify|update|confirm`, 0.4),
		rule(`suspended|locked|expired|terminated`, 0.3),
		rule(`free money|win|prize|lottery|congratulations`, 0.5),
		rule(`bank|paypal|amazon|apple|microsoft|google`, 0.2),
		rule(`https?://[^\s]+`, 0.4),
		rule(`call now|text back|reply stop`, 0.3),
	}

	// Screenshot scams pack many strong signals at once, hence the larger
	// table and the much more sensitive verdict threshold.
	screenshotRules = []Rule{
		// Prize / lottery language
		rule(`congratulations|winner|prize|lottery|jackpot`, 0.5),
		rule(`rs\s*\d+\s*(crore|lakh|thousand)`, 0.6),
		rule(`audi|bmw|mercedes|car|suv|motors`, 0.4),
		rule(`promotion|contest|draw|2019|2020|2021|2022|2023|2024`, 0.4),

		// Payment requests
		rule(`custom\s*duty|clearance\s*fee|processing\s*fee|notarization`, 0.7),
		rule(`pay\s*now|urgent\s*payment|immediate\s*action|fee`, 0.6),
		rule(`inr|rupees|dollars|euros|25000|2500`, 0.3),

		// Fake authorities and delivery
		rule(`delivery\s*officer|courier\s*service|customs|apc`, 0.5),
		rule(`united\s*kingdom|uk|india|customs|mk14`, 0.4),
		rule(`flight\s*information|departure|arrival|time`, 0.4),
		rule(`ramond\s*wayn|officer|mr\.`, 0.3),

		// Urgency tactics
		rule(`tomorrow|urgent|immediate|limited\s*time|morning`, 0.5),
		rule(`act\s*now|don't\s*delay|expires\s*soon|arriving`, 0.6),

		// Personal information requests
		rule(`id\s*card|passport|voter\s*card|pan\s*card|valid\s*id`, 0.5),
		rule(`personal\s*information|bank\s*details|account|proof`, 0.5),

		// Contact details
		rule(`telephone|phone|contact|email|0044`, 0.3),
		rule(`\d{10,}`, 0.3),

		// Attention grabbers
		rule(`attention|dear\s*winner|dear\s*customer`, 0.4),
		rule(`lucky\s*winner|selected|chosen`, 0.4),

		// Document and parcel contents
		rule(`demand\s*draft|affidavit|covering\s*documents`, 0.4),
		rule(`parcel|consignment|delivery|contents`, 0.3),

		// Webmail interface indicators
		rule(`gmail|google|mail|sent|inbox`, 0.1),
	}
}

// Curated lists consulted by the URL structural analyzer.
var (
	typosquatTerms = []string{
		"g0ogle", "go0gle", "g00gle", "goog1e", "g00g1e",
		"faceb00k", "faceb0ok",
		"amaz0n",
		"paypa1", "paypai",
		"micr0soft", "micr0s0ft",
		"app1e", "appie",
		"y0utube", "y0utub3",
	}

	// Brands the typosquat list imitates, used to name the likely target.
	typosquatBrands = []string{
		"google", "facebook", "amazon", "paypal", "microsoft", "apple", "youtube",
	}

	suspiciousTLDs = []string{
		".tk", ".ml", ".ga", ".cf", ".click", ".download", ".exe", ".zip", ".pdf",
	}

	urlShorteners = []string{
		"bit.ly", "tinyurl.com", "short.link", "t.co", "goo.gl", "ow.ly", "is.gd", "v.gd",
	}

	suspiciousPathKeywords = []string{
		"login", "verify", "account", "security", "update", "confirm", "validate",
		"password", "reset", "unlock", "suspended", "locked", "expired",
		"payment", "billing", "invoice", "refund", "transaction",
		"support", "help", "contact", "service", "customer",
	}

	sensitiveQueryParams = []string{
		"password", "token", "key", "secret", "auth", "login",
	}
)

// Lists consulted by the screenshot analyzer when scoring embedded
// URLs and email addresses.
var (
	embeddedShorteners = []string{"bit.ly", "tinyurl", "short.link", "t.co", "goo.gl"}

	freemailDomains           = []string{"gmail.com", "yahoo.com", "hotmail.com"}
	screenshotFreemailDomains = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com"}
)
