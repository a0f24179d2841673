package classify

// evidence is the per-call scratch state: a running score and the ordered
// log of matched rule descriptions. It is owned by exactly one classification
// call and discarded once the verdict is built.
type evidence struct {
	score   float64
	matched []string
}

func (e *evidence) add(weight float64, description string) {
	e.score += weight
	e.matched = append(e.matched, description)
}

// bump raises the score without logging a description. Used for embedded
// artifact scoring (URLs, email addresses, phone numbers inside screenshot
// text) where only aggregate counts are reported.
func (e *evidence) bump(weight float64) {
	e.score += weight
}

// confidence clamps the accumulated score to [0, 1].
func (e *evidence) confidence() float64 {
	if e.score > 1 {
		return 1
	}
	if e.score < 0 {
		return 0
	}
	return e.score
}

// matchRules tests every rule in the set against text. No short-circuiting:
// all matches contribute, and no rule is applied twice.
func matchRules(text string, rules []Rule, ev *evidence) {
	for _, r := range rules {
		if r.Pattern.MatchString(text) {
			ev.add(r.Weight, r.Description)
		}
	}
}
