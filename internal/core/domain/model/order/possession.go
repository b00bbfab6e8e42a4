package order

import "strings"

// DefaultPossessionIndicators is the baseline set of substrings that signal
// the carrier has taken physical possession of a package. Carriers introduce
// new phrasings without notice, so the set is data rather than an enum; keep
// it biased toward precision, since a false positive locks the order
// permanently while a false negative self-heals on the next tracking poll.
var DefaultPossessionIndicators = []string{
	"pickup scan",
	"origin scan",
	"package received",
	"arrived at facility",
	"in transit",
	"out for delivery",
	"delivered",
	"delivery confirmed",
	"package delivered",
}

// PossessionMatcher decides whether carrier activity text indicates physical
// possession. Matching is case-insensitive substring search.
type PossessionMatcher struct {
	indicators []string
}

// NewPossessionMatcher creates a matcher over the given indicator substrings.
// With no arguments it uses DefaultPossessionIndicators.
func NewPossessionMatcher(indicators ...string) PossessionMatcher {
	if len(indicators) == 0 {
		indicators = DefaultPossessionIndicators
	}

	lowered := make([]string, 0, len(indicators))
	for _, indicator := range indicators {
		indicator = strings.ToLower(strings.TrimSpace(indicator))
		if indicator != "" {
			lowered = append(lowered, indicator)
		}
	}

	return PossessionMatcher{indicators: lowered}
}

// Matches reports whether a single status description contains any
// possession indicator.
func (m PossessionMatcher) Matches(statusDescription string) bool {
	status := strings.ToLower(statusDescription)
	for _, indicator := range m.indicators {
		if strings.Contains(status, indicator) {
			return true
		}
	}
	return false
}

// MatchesAny reports whether any of the given status descriptions contains
// a possession indicator.
func (m PossessionMatcher) MatchesAny(statusDescriptions []string) bool {
	for _, status := range statusDescriptions {
		if m.Matches(status) {
			return true
		}
	}
	return false
}
