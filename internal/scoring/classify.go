// Package scoring computes section and overall compliance scores from a
// questionnaire and a response snapshot, and derives prioritized
// recommendations from the same pass.
//
// The package is deliberately dependency-free and side-effect-free: every
// function is a pure function of its inputs, and recomputing with identical
// inputs yields identical output. Data-quality problems (missing responses,
// unclassifiable option text, empty questionnaires) never produce errors;
// they resolve to documented defaults.
package scoring

import "strings"

// Classification is the lexical class of an option string. The numeric order
// matters: higher classifications score higher.
type Classification int

const (
	ClassUnknown Classification = iota
	ClassNegative
	ClassPartial
	ClassPositive
)

// Score maps a classification to its scoring contribution. Unknown falls back
// to the same value as Partial so free-form option text neither rewards nor
// penalizes.
func (c Classification) Score() float64 {
	switch c {
	case ClassPositive:
		return 1.0
	case ClassPartial:
		return 0.5
	case ClassNegative:
		return 0.0
	default:
		return 0.5
	}
}

func (c Classification) String() string {
	switch c {
	case ClassPositive:
		return "positive"
	case ClassPartial:
		return "partial"
	case ClassNegative:
		return "negative"
	default:
		return "unknown"
	}
}

// IsGap reports whether a response with this classification indicates a
// compliance gap worth a recommendation. Unknown counts as a gap: if the
// questionnaire author mapped a recommendation to a free-form option, it
// should surface.
func (c Classification) IsGap() bool {
	return c != ClassPositive
}

const notApplicableMarker = "not applicable"

// IsNotApplicable reports whether a response marks the question as not
// applicable. NA responses are excluded from scoring entirely, exactly like
// unanswered questions; they must never count as compliant or non-compliant.
func IsNotApplicable(response string) bool {
	return strings.Contains(strings.ToLower(response), notApplicableMarker)
}

type matchKind int

const (
	matchPrefix matchKind = iota
	matchContains
)

type lexicalRule struct {
	kind  matchKind
	token string
	class Classification
}

// classifyRules is the single source of truth for option classification,
// evaluated in order with first match winning. Prefixes are the strongest
// signals and come first. "with " keeps its trailing space so it does not
// match "without".
var classifyRules = []lexicalRule{
	{matchPrefix, "yes", ClassPositive},
	{matchPrefix, "no", ClassNegative},
	{matchContains, "partial", ClassPartial},
	{matchContains, "basic", ClassPartial},
	{matchContains, "limited", ClassPartial},
	{matchContains, "mostly", ClassPartial},
	{matchContains, "need", ClassPartial},
	{matchContains, "improvement", ClassPartial},
	{matchContains, "lack", ClassNegative},
	{matchContains, "none", ClassNegative},
	{matchContains, "rarely", ClassNegative},
	{matchContains, "not ", ClassNegative},
	{matchContains, "full", ClassPositive},
	{matchContains, "comprehensive", ClassPositive},
	{matchContains, "with ", ClassPositive},
	{matchContains, "clear", ClassPositive},
}

// Classify maps an option string to its classification. It is the one shared
// classification primitive: the scoring engine, the recommendation engine,
// and any display formatting must all go through it so they can never
// disagree about what a response means.
func Classify(option string) Classification {
	text := strings.ToLower(strings.TrimSpace(option))
	if text == "" {
		return ClassUnknown
	}
	for _, r := range classifyRules {
		switch r.kind {
		case matchPrefix:
			if strings.HasPrefix(text, r.token) {
				return r.class
			}
		case matchContains:
			if strings.Contains(text, r.token) {
				return r.class
			}
		}
	}
	return ClassUnknown
}
