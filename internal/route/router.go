package route

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mkotturi/claimtriage/internal/model"
)

// FastTrackThreshold is the exclusive upper bound for fast-track damage
// amounts. Exactly this amount does not qualify.
const FastTrackThreshold = 25000

// Input is everything the routing decision depends on. Decide is a pure
// function of this struct: same input, same decision.
type Input struct {
	MissingFields   []string
	FraudIndicators []string
	ClaimType       string
	DamageAmount    *float64 // nil when no estimate could be resolved
}

// InputFromRecord assembles routing input from an extracted record and the
// validation outputs computed for it.
func InputFromRecord(record *model.ClaimRecord, missing, fraud []string) Input {
	return Input{
		MissingFields:   missing,
		FraudIndicators: fraud,
		ClaimType:       record.ClaimType(),
		DamageAmount:    record.DamageAmount(),
	}
}

// rule is one row of the decision table.
type rule struct {
	matches func(Input) bool
	route   model.Route
	reason  func(Input) string
}

// rules is evaluated top to bottom; the first match wins. The final rule
// matches unconditionally so the table can never produce zero decisions.
var rules = []rule{
	{
		matches: func(in Input) bool { return len(in.FraudIndicators) > 0 },
		route:   model.RouteInvestigation,
		reason: func(in Input) string {
			return "Fraud indicators detected: " + strings.Join(in.FraudIndicators, ", ")
		},
	},
	{
		matches: func(in Input) bool { return len(in.MissingFields) > 0 },
		route:   model.RouteManualReview,
		reason: func(in Input) string {
			return "Missing mandatory fields: " + strings.Join(in.MissingFields, ", ")
		},
	},
	{
		matches: func(in Input) bool {
			return strings.Contains(strings.ToLower(in.ClaimType), "injury")
		},
		route: model.RouteSpecialistQueue,
		reason: func(Input) string {
			return "Claim involves injury - requires specialist review"
		},
	},
	{
		matches: func(in Input) bool {
			return in.DamageAmount != nil && *in.DamageAmount < FastTrackThreshold
		},
		route: model.RouteFastTrack,
		reason: func(in Input) string {
			return fmt.Sprintf("Low damage amount ($%s) with all required fields present",
				formatAmount(*in.DamageAmount))
		},
	},
	{
		matches: func(Input) bool { return true },
		route:   model.RouteManualReview,
		reason: func(Input) string {
			return "Standard review required - damage exceeds fast-track threshold or estimate unavailable"
		},
	},
}

// Decide selects exactly one route for the claim.
func Decide(in Input) model.RouteDecision {
	for _, r := range rules {
		if r.matches(in) {
			return model.RouteDecision{Route: r.route, Reasoning: r.reason(in)}
		}
	}
	// Unreachable: the last rule always matches.
	return model.RouteDecision{
		Route:     model.RouteManualReview,
		Reasoning: "Standard review required - no routing rule matched",
	}
}

// formatAmount renders a damage amount with thousands separators and two
// decimals, e.g. 15000 -> "15,000.00".
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	return sign + b.String() + "." + fracPart
}
