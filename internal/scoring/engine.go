package scoring

import (
	"complymeter/internal/model"
)

// Compliance tier names. Thresholds are evaluated on the [0,1] fraction, not
// the percentage, and are shared verbatim by the recommendation buckets so
// the report and recommendation surfaces can never diverge.
const (
	LevelNonCompliant       = "Non-Compliant"
	LevelPartiallyCompliant = "Partially Compliant"
	LevelMostlyCompliant    = "Mostly Compliant"
	LevelFullyCompliant     = "Fully Compliant"
)

const (
	// HighRiskThreshold is the Non-Compliant boundary and the high-priority
	// recommendation cut point.
	HighRiskThreshold = 0.60
	// ModerateRiskThreshold is the Mostly Compliant boundary and the
	// medium/low recommendation cut point.
	ModerateRiskThreshold = 0.75
	// FullComplianceThreshold is the Fully Compliant boundary.
	FullComplianceThreshold = 0.90
)

// DefaultTopN is how many improvement priorities are surfaced by default.
const DefaultTopN = 3

// LevelForFraction classifies a score fraction into a compliance tier.
// Boundaries are inclusive-low: exactly 0.60 is Partially Compliant.
func LevelForFraction(score float64) string {
	switch {
	case score < HighRiskThreshold:
		return LevelNonCompliant
	case score < ModerateRiskThreshold:
		return LevelPartiallyCompliant
	case score < FullComplianceThreshold:
		return LevelMostlyCompliant
	default:
		return LevelFullyCompliant
	}
}

// ComputeScores runs the full scoring pass over a questionnaire and a
// response snapshot. It never returns an error: missing or not-applicable
// responses are excluded from the tally, a section with nothing scorable gets
// a nil score, and an empty questionnaire yields a well-formed zero result.
//
// The same pass derives the per-section recommendation lists (deduplicated,
// question order preserved) so that scoring and recommendations always agree
// on how each response classified.
func ComputeScores(q *model.Questionnaire, responses model.ResponseSet) *model.ScoreResult {
	result := &model.ScoreResult{
		SectionOrder:          []string{},
		SectionScores:         map[string]*float64{},
		OverallScore:          0,
		ComplianceLevel:       LevelNonCompliant,
		HighRiskAreas:         []string{},
		ImprovementPriorities: []string{},
		Recommendations:       map[string][]string{},
	}
	if q == nil || len(q.Sections) == 0 {
		return result
	}

	weightedSum := 0.0
	weightTotal := 0.0

	for si, section := range q.Sections {
		result.SectionOrder = append(result.SectionOrder, section.Name)

		sum := 0.0
		count := 0
		var recs []string
		seen := map[string]bool{}

		for qi, question := range section.Questions {
			response, ok := responses.Get(si, qi)
			if !ok || IsNotApplicable(response) {
				continue
			}
			class := Classify(response)
			sum += class.Score()
			count++

			if class.IsGap() {
				if rec := question.Recommendations[response]; rec != "" && !seen[rec] {
					seen[rec] = true
					recs = append(recs, rec)
				}
			}
		}

		if count == 0 {
			result.SectionScores[section.Name] = nil
			continue
		}
		score := sum / float64(count)
		result.SectionScores[section.Name] = &score
		if len(recs) > 0 {
			result.Recommendations[section.Name] = recs
		}
		if section.Weight > 0 {
			weightedSum += section.Weight * score
			weightTotal += section.Weight
		}
	}

	if weightTotal > 0 {
		result.OverallScore = 100 * weightedSum / weightTotal
	}
	result.ComplianceLevel = LevelForFraction(result.OverallScore / 100)

	ranked := rankSectionsAscending(result.SectionOrder, result.SectionScores, 0)
	for _, name := range ranked {
		if *result.SectionScores[name] < HighRiskThreshold {
			result.HighRiskAreas = append(result.HighRiskAreas, name)
		}
	}
	result.ImprovementPriorities = rankSectionsAscending(result.SectionOrder, result.SectionScores, DefaultTopN)

	return result
}
