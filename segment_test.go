package toxic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplainSentences(t *testing.T) {
	dict := NewDictionary(
		Entry{Insults, []string{"idiot"}},
		Entry{Threats, []string{"hurt"}},
	)
	analyzer := NewAnalyzer(UsingDictionary(dict))

	text := "You are an idiot. I will hurt you."
	reports, err := analyzer.ExplainSentences(text)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, "You are an idiot.", reports[0].Text)
	assert.Equal(t, 2, reports[0].Score)

	// "I" is contained in "idiot" and scores as an insult.
	assert.Equal(t, "I will hurt you.", reports[1].Text)
	assert.Equal(t, 7, reports[1].Score)
	assert.Less(t, reports[0].Start, reports[1].Start)

	assert.Equal(t, analyzer.Score(text), reports[0].Score+reports[1].Score)
}

func TestExplainSentencesJapanese(t *testing.T) {
	reports, err := NewAnalyzer().ExplainSentences("バカ。お前を殺す。今日はいい天気。")
	require.NoError(t, err)
	require.Len(t, reports, 3)

	tests := []struct {
		text  string
		score int
		tier  Tier
	}{
		{"バカ。", 2, ContextualAnalysis},
		{"お前を殺す。", 7, ContextualAnalysis},
		{"今日はいい天気。", 0, NoIssue},
	}
	for i, tt := range tests {
		assert.Equal(t, tt.text, reports[i].Text)
		assert.Equal(t, tt.score, reports[i].Score, tt.text)
		assert.Equal(t, tt.tier, reports[i].Tier, tt.text)
	}
}

func TestExplainSentencesEmpty(t *testing.T) {
	reports, err := NewAnalyzer().ExplainSentences("   ")
	require.NoError(t, err)
	assert.Empty(t, reports)
}
