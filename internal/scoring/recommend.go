package scoring

import (
	"complymeter/internal/model"
)

// OrganizeByPriority buckets each scored section's recommendations by urgency
// using the same cut points as the compliance tiers: score < 0.60 is high,
// < 0.75 is medium, >= 0.75 is low. Sections with a nil score are excluded
// entirely. Within each bucket, entries are ordered most urgent first with
// ties kept in original section order.
func OrganizeByPriority(result *model.ScoreResult) model.PriorityGroups {
	groups := model.PriorityGroups{
		High:   []model.PriorityItem{},
		Medium: []model.PriorityItem{},
		Low:    []model.PriorityItem{},
	}
	if result == nil {
		return groups
	}

	for _, name := range rankSectionsAscending(result.SectionOrder, result.SectionScores, 0) {
		score := *result.SectionScores[name]
		item := model.PriorityItem{
			Section:         name,
			Score:           score * 100,
			Recommendations: result.Recommendations[name],
		}
		if item.Recommendations == nil {
			item.Recommendations = []string{}
		}
		switch {
		case score < HighRiskThreshold:
			groups.High = append(groups.High, item)
		case score < ModerateRiskThreshold:
			groups.Medium = append(groups.Medium, item)
		default:
			groups.Low = append(groups.Low, item)
		}
	}
	return groups
}

// RecommendationContext builds the per-question audit trail behind the
// aggregated recommendation lists: for every question whose response produced
// a recommendation, the literal response and the matched remediation text
// side by side. Unlike the aggregate lists it is not deduplicated, and it
// uses the same classification primitive as the scoring pass.
func RecommendationContext(q *model.Questionnaire, responses model.ResponseSet) map[string][]model.ContextItem {
	context := map[string][]model.ContextItem{}
	if q == nil {
		return context
	}

	for si, section := range q.Sections {
		var items []model.ContextItem
		for qi, question := range section.Questions {
			response, ok := responses.Get(si, qi)
			if !ok || IsNotApplicable(response) {
				continue
			}
			if !Classify(response).IsGap() {
				continue
			}
			rec := question.Recommendations[response]
			if rec == "" {
				continue
			}
			items = append(items, model.ContextItem{
				QuestionID:     qi + 1,
				QuestionText:   question.Text,
				Response:       response,
				Recommendation: rec,
			})
		}
		if len(items) > 0 {
			context[section.Name] = items
		}
	}
	return context
}

// TopPriorities returns the n section names with the lowest defined scores,
// most urgent first. It is the same selection logic as the improvement
// priorities in the scoring pass, not a reimplementation. n <= 0 falls back
// to the default.
func TopPriorities(result *model.ScoreResult, n int) []string {
	if result == nil {
		return []string{}
	}
	if n <= 0 {
		n = DefaultTopN
	}
	return rankSectionsAscending(result.SectionOrder, result.SectionScores, n)
}
