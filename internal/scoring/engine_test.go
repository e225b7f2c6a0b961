package scoring

import (
	"testing"

	"complymeter/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var yesNoNA = []string{"Yes", "Partial", "No", "Not applicable"}

func section(name string, weight float64, questionCount int) model.Section {
	s := model.Section{Name: name, Weight: weight}
	for i := 0; i < questionCount; i++ {
		s.Questions = append(s.Questions, model.Question{
			Text:    "question",
			Options: yesNoNA,
		})
	}
	return s
}

func questionnaire(sections ...model.Section) *model.Questionnaire {
	return &model.Questionnaire{
		Regulation: "DPDP",
		Industry:   "banking and finance",
		Sections:   sections,
	}
}

func responses(raw map[string]string) model.ResponseSet {
	return model.ResponseSetFromStrings(raw)
}

func TestComputeScoresScenarioA(t *testing.T) {
	q := questionnaire(
		section("S1", 0.5, 2),
		section("S2", 0.5, 2),
	)
	result := ComputeScores(q, responses(map[string]string{
		"s0_q0": "Yes",
		"s0_q1": "Yes",
		"s1_q0": "No",
		"s1_q1": "No",
	}))

	require.NotNil(t, result.SectionScores["S1"])
	require.NotNil(t, result.SectionScores["S2"])
	assert.Equal(t, 1.0, *result.SectionScores["S1"])
	assert.Equal(t, 0.0, *result.SectionScores["S2"])
	assert.Equal(t, 50.0, result.OverallScore)
	assert.Equal(t, LevelNonCompliant, result.ComplianceLevel)
	assert.Equal(t, []string{"S2"}, result.HighRiskAreas)
	assert.Equal(t, []string{"S2", "S1"}, result.ImprovementPriorities)
}

func TestComputeScoresScenarioB(t *testing.T) {
	q := questionnaire(section("S1", 1.0, 2))
	result := ComputeScores(q, responses(map[string]string{
		"s0_q0": "Not applicable",
		"s0_q1": "Not applicable",
	}))

	score, ok := result.SectionScores["S1"]
	require.True(t, ok, "section must be present in the map")
	assert.Nil(t, score)
	assert.Equal(t, 0.0, result.OverallScore)
	assert.Equal(t, LevelNonCompliant, result.ComplianceLevel)
	assert.Empty(t, result.HighRiskAreas)
	assert.Empty(t, result.ImprovementPriorities)
}

func TestComputeScoresScenarioC(t *testing.T) {
	q := questionnaire(section("S1", 1.0, 4))
	result := ComputeScores(q, responses(map[string]string{
		"s0_q0": "Yes",
		"s0_q1": "Partial",
		"s0_q2": "No",
		"s0_q3": "Not applicable",
	}))

	require.NotNil(t, result.SectionScores["S1"])
	assert.Equal(t, 0.5, *result.SectionScores["S1"])
	assert.Equal(t, 50.0, result.OverallScore)
	// 0.5 is below the 0.60 boundary: high risk, not medium
	assert.Equal(t, []string{"S1"}, result.HighRiskAreas)
	assert.Equal(t, LevelNonCompliant, result.ComplianceLevel)
}

func TestComputeScoresIdempotent(t *testing.T) {
	q := questionnaire(
		section("A", 0.3, 3),
		section("B", 0.5, 2),
		section("C", 0.2, 2),
	)
	resp := responses(map[string]string{
		"s0_q0": "Yes",
		"s0_q1": "Partial",
		"s0_q2": "No",
		"s1_q0": "Not applicable",
		"s2_q0": "Yes",
		"s2_q1": "Yes",
	})

	first := ComputeScores(q, resp)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ComputeScores(q, resp))
	}
}

func TestNotApplicableEquivalentToUnanswered(t *testing.T) {
	q := questionnaire(section("S1", 1.0, 3))

	withNA := ComputeScores(q, responses(map[string]string{
		"s0_q0": "Yes",
		"s0_q1": "No",
		"s0_q2": "Not applicable",
	}))
	withMissing := ComputeScores(q, responses(map[string]string{
		"s0_q0": "Yes",
		"s0_q1": "No",
	}))

	assert.Equal(t, withMissing, withNA)
}

func TestWeightInvarianceUnderExclusion(t *testing.T) {
	base := questionnaire(
		section("S1", 0.4, 2),
		section("S2", 0.6, 2),
	)
	extended := questionnaire(
		section("S1", 0.4, 2),
		section("S2", 0.6, 2),
		section("S3", 0.9, 2),
	)
	shared := map[string]string{
		"s0_q0": "Yes",
		"s0_q1": "Partial",
		"s1_q0": "Yes",
		"s1_q1": "Yes",
	}
	withNASection := map[string]string{}
	for k, v := range shared {
		withNASection[k] = v
	}
	withNASection["s2_q0"] = "Not applicable"
	withNASection["s2_q1"] = "Not applicable"

	baseResult := ComputeScores(base, responses(shared))
	extendedResult := ComputeScores(extended, responses(withNASection))

	// A fully-NA section contributes nothing to either side of the average
	assert.Equal(t, baseResult.OverallScore, extendedResult.OverallScore)
	assert.Equal(t, baseResult.ComplianceLevel, extendedResult.ComplianceLevel)
}

func TestComplianceLevelBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.0, LevelNonCompliant},
		{0.5999, LevelNonCompliant},
		{0.60, LevelPartiallyCompliant},
		{0.7499, LevelPartiallyCompliant},
		{0.75, LevelMostlyCompliant},
		{0.8999, LevelMostlyCompliant},
		{0.90, LevelFullyCompliant},
		{1.0, LevelFullyCompliant},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForFraction(tt.score), "score %v", tt.score)
	}
}

func TestExactBoundaryScores(t *testing.T) {
	// 3 Yes + 2 No = 0.6 exactly
	q := questionnaire(section("S1", 1.0, 5))
	result := ComputeScores(q, responses(map[string]string{
		"s0_q0": "Yes", "s0_q1": "Yes", "s0_q2": "Yes",
		"s0_q3": "No", "s0_q4": "No",
	}))
	require.NotNil(t, result.SectionScores["S1"])
	assert.InDelta(t, 0.6, *result.SectionScores["S1"], 1e-9)
	assert.Equal(t, LevelPartiallyCompliant, result.ComplianceLevel)
	assert.Empty(t, result.HighRiskAreas, "0.60 is not high risk")

	// 3 Yes + 1 No = 0.75 exactly
	q = questionnaire(section("S1", 1.0, 4))
	result = ComputeScores(q, responses(map[string]string{
		"s0_q0": "Yes", "s0_q1": "Yes", "s0_q2": "Yes", "s0_q3": "No",
	}))
	assert.InDelta(t, 0.75, *result.SectionScores["S1"], 1e-9)
	assert.Equal(t, LevelMostlyCompliant, result.ComplianceLevel)
}

func TestDeterministicTieOrdering(t *testing.T) {
	q := questionnaire(
		section("First", 0.25, 1),
		section("Second", 0.25, 1),
		section("Third", 0.25, 1),
		section("Fourth", 0.25, 1),
	)
	result := ComputeScores(q, responses(map[string]string{
		"s0_q0": "No",
		"s1_q0": "No",
		"s2_q0": "No",
		"s3_q0": "No",
	}))

	// Identical scores keep questionnaire definition order
	assert.Equal(t, []string{"First", "Second", "Third", "Fourth"}, result.HighRiskAreas)
	assert.Equal(t, []string{"First", "Second", "Third"}, result.ImprovementPriorities)
}

func TestEmptyQuestionnaire(t *testing.T) {
	for _, q := range []*model.Questionnaire{nil, questionnaire()} {
		result := ComputeScores(q, responses(nil))
		assert.Equal(t, 0.0, result.OverallScore)
		assert.Equal(t, LevelNonCompliant, result.ComplianceLevel)
		assert.Empty(t, result.SectionScores)
		assert.Empty(t, result.HighRiskAreas)
		assert.Empty(t, result.ImprovementPriorities)
		assert.Empty(t, result.Recommendations)
	}
}

func TestZeroWeightGuard(t *testing.T) {
	q := questionnaire(
		section("S1", 0, 1),
		section("S2", -1, 1),
	)
	result := ComputeScores(q, responses(map[string]string{
		"s0_q0": "Yes",
		"s1_q0": "Yes",
	}))

	// Section scores still computed, but no weighted average is possible
	require.NotNil(t, result.SectionScores["S1"])
	assert.Equal(t, 1.0, *result.SectionScores["S1"])
	assert.Equal(t, 0.0, result.OverallScore)
	assert.Equal(t, LevelNonCompliant, result.ComplianceLevel)
}

func TestMalformedResponseKeysExcluded(t *testing.T) {
	q := questionnaire(section("S1", 1.0, 2))
	result := ComputeScores(q, responses(map[string]string{
		"s0_q0":   "Yes",
		"bogus":   "No",
		"s99_q99": "No", // out of range, never looked up
	}))

	require.NotNil(t, result.SectionScores["S1"])
	assert.Equal(t, 1.0, *result.SectionScores["S1"])
	assert.Equal(t, 100.0, result.OverallScore)
	assert.Equal(t, LevelFullyCompliant, result.ComplianceLevel)
}

func TestUnclassifiableDefaultsToHalf(t *testing.T) {
	q := questionnaire(section("S1", 1.0, 1))
	result := ComputeScores(q, responses(map[string]string{
		"s0_q0": "Some free-form answer",
	}))

	require.NotNil(t, result.SectionScores["S1"])
	assert.Equal(t, 0.5, *result.SectionScores["S1"])
}

func TestWeightedOverallScore(t *testing.T) {
	q := questionnaire(
		section("Heavy", 0.8, 1),
		section("Light", 0.2, 1),
	)
	result := ComputeScores(q, responses(map[string]string{
		"s0_q0": "Yes",
		"s1_q0": "No",
	}))

	// 100 * (0.8*1.0 + 0.2*0.0) / 1.0 = 80
	assert.InDelta(t, 80.0, result.OverallScore, 1e-9)
	assert.Equal(t, LevelMostlyCompliant, result.ComplianceLevel)
}

func TestWeightsNormalizedNotAssumedToSumToOne(t *testing.T) {
	q := questionnaire(
		section("A", 2.0, 1),
		section("B", 2.0, 1),
	)
	result := ComputeScores(q, responses(map[string]string{
		"s0_q0": "Yes",
		"s1_q0": "No",
	}))

	// Weights are relative: 100 * (2*1 + 2*0) / 4 = 50
	assert.InDelta(t, 50.0, result.OverallScore, 1e-9)
}
