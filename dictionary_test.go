package toxic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDictionary(t *testing.T) {
	dict := DefaultDictionary()

	assert.Equal(t, []Category{Insults, Defamation, Harassment, Threats, Ambiguous}, dict.Categories())
	assert.Equal(t, 5, dict.Len())
	assert.Contains(t, dict.Phrases(Insults), "バカ")
	assert.Contains(t, dict.Phrases(Threats), "お前を殺す")
	assert.Nil(t, dict.Phrases(Names))
}

func TestNewDictionaryMergesCategories(t *testing.T) {
	dict := NewDictionary(
		Entry{Insults, []string{"a", "b"}},
		Entry{Threats, []string{"c"}},
		Entry{Insults, []string{"b", "d"}},
	)

	assert.Equal(t, []Category{Insults, Threats}, dict.Categories())
	assert.Equal(t, []string{"a", "b", "d"}, dict.Phrases(Insults))
}

func TestDictionaryIsImmutable(t *testing.T) {
	phrases := []string{"バカ"}
	dict := NewDictionary(Entry{Insults, phrases})
	phrases[0] = "changed"

	assert.Equal(t, []string{"バカ"}, dict.Phrases(Insults))

	got := dict.Phrases(Insults)
	got[0] = "changed"
	assert.Equal(t, []string{"バカ"}, dict.Phrases(Insults))

	entries := dict.Entries()
	entries[0].Phrases[0] = "changed"
	assert.Equal(t, []string{"バカ"}, dict.Phrases(Insults))
}

func TestDictionaryWith(t *testing.T) {
	base := DefaultDictionary()
	merged := base.With(Names, "山田", "田中", "山田")

	require.Equal(t, 6, merged.Len())
	assert.Equal(t, Names, merged.Categories()[5])
	assert.Equal(t, []string{"山田", "田中"}, merged.Phrases(Names))
	assert.Equal(t, 5, base.Len(), "receiver must not change")

	extended := merged.With(Insults, "バカ", "カス")
	assert.Equal(t, []string{"バカ", "クズ", "アホ", "ゴミ", "しね", "低能", "カス"}, extended.Phrases(Insults))
	assert.Equal(t, merged.Categories(), extended.Categories())
}

func TestNilDictionary(t *testing.T) {
	var dict *Dictionary

	assert.Equal(t, 0, dict.Len())
	assert.Nil(t, dict.Categories())
	assert.Nil(t, dict.Phrases(Insults))
	assert.Nil(t, dict.Entries())
	assert.Equal(t, []string{"x"}, dict.With(Insults, "x").Phrases(Insults))
}

func TestWeightsOf(t *testing.T) {
	weights := DefaultWeights()

	tests := []struct {
		category Category
		expected int
	}{
		{Insults, 2},
		{Defamation, 3},
		{Harassment, 4},
		{Threats, 5},
		{Ambiguous, 1},
		{Names, DefaultWeight},
		{Category("unknown"), DefaultWeight},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, weights.Of(tt.category), string(tt.category))
	}

	var empty Weights
	assert.Equal(t, DefaultWeight, empty.Of(Threats))
	assert.Equal(t, DefaultWeight, Weights{Threats: 0}.Of(Threats))
}
