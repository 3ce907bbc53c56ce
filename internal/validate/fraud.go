package validate

import "strings"

// fraudKeywords is the fixed lexical trigger list. Order here is the order
// matches are reported in.
var fraudKeywords = []string{"fraud", "staged", "inconsistent", "suspicious", "fake"}

// FraudKeywords returns the keyword list in scan order.
func FraudKeywords() []string {
	return append([]string(nil), fraudKeywords...)
}

// FraudIndicators scans the incident description for fraud keywords using
// case-insensitive substring matching and returns every match in
// keyword-list order. An empty description matches nothing.
func FraudIndicators(description string) []string {
	matched := []string{}
	if description == "" {
		return matched
	}

	lower := strings.ToLower(description)
	for _, keyword := range fraudKeywords {
		if strings.Contains(lower, keyword) {
			matched = append(matched, keyword)
		}
	}
	return matched
}
