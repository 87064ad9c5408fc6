package toxic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyScore(t *testing.T) {
	tests := []struct {
		score    float64
		expected Tier
		desc     string
	}{
		{100, Match, "Far above match"},
		{20, Match, "Match threshold is inclusive"},
		{19.9, PartialMatch, "Just under match"},
		{10, PartialMatch, "Partial threshold is inclusive"},
		{9, ContextualAnalysis, "Just under partial"},
		{0.1, ContextualAnalysis, "Any positive score"},
		{0, NoIssue, "Zero"},
		{-5, NoIssue, "Negative"},
		{math.NaN(), NoIssue, "NaN"},
		{math.Inf(1), Match, "Positive infinity"},
		{math.Inf(-1), NoIssue, "Negative infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyScore(tt.score))
		})
	}
}

func TestClassifyScoreMonotonic(t *testing.T) {
	prev := ClassifyScore(-1)
	for s := 0.0; s <= 30; s += 0.5 {
		tier := ClassifyScore(s)
		assert.GreaterOrEqual(t, tier, prev, "score %v", s)
		prev = tier
	}
}

func TestTierLabels(t *testing.T) {
	assert.Equal(t, "no issue", NoIssue.String())
	assert.Equal(t, "contextual analysis", ContextualAnalysis.String())
	assert.Equal(t, "partial match", PartialMatch.String())
	assert.Equal(t, "match", Match.String())
	assert.Equal(t, "unknown", Tier(42).String())

	assert.Equal(t, "問題なし", NoIssue.Message())
	assert.Contains(t, Match.Message(), "【一致】")
	assert.Contains(t, PartialMatch.Message(), "【部分一致】")
	assert.Contains(t, ContextualAnalysis.Message(), "【文脈解析】")
	assert.Empty(t, Tier(-1).Message())
}

func TestTiersAreOrdered(t *testing.T) {
	assert.Less(t, NoIssue, ContextualAnalysis)
	assert.Less(t, ContextualAnalysis, PartialMatch)
	assert.Less(t, PartialMatch, Match)
}
