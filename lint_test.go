package toxic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func findingKinds(findings []Finding) map[Category]map[string][]FindingKind {
	out := make(map[Category]map[string][]FindingKind)
	for _, f := range findings {
		if out[f.Category] == nil {
			out[f.Category] = make(map[string][]FindingKind)
		}
		out[f.Category][f.Phrase] = append(out[f.Category][f.Phrase], f.Kind)
	}
	return out
}

func TestLint(t *testing.T) {
	dict := NewDictionary(
		Entry{Insults, []string{"", "殺", "the and", "Baka", "baka", "クズ"}},
		Entry{Threats, []string{"クズ", "殺す"}},
	)

	kinds := findingKinds(Lint(dict, English))

	assert.Equal(t, []FindingKind{EmptyPhrase}, kinds[Insults][""])
	assert.Contains(t, kinds[Insults]["殺"], ShortPhrase)
	assert.Contains(t, kinds[Insults]["the and"], StopWordPhrase)
	assert.NotContains(t, kinds[Insults], "Baka")
	assert.Equal(t, []FindingKind{DuplicatePhrase}, kinds[Insults]["baka"])
	assert.NotContains(t, kinds[Insults], "クズ")
	assert.Equal(t, []FindingKind{SharedPhrase}, kinds[Threats]["クズ"])
	assert.NotContains(t, kinds[Threats], "殺す")
}

func TestLintCleanDictionary(t *testing.T) {
	dict := NewDictionary(
		Entry{Insults, []string{"idiot", "moron"}},
		Entry{Threats, []string{"i will hurt you"}},
	)
	assert.Empty(t, Lint(dict, English))
	assert.Empty(t, Lint(nil, English))
}

func TestLintLeavesDictionaryUnchanged(t *testing.T) {
	dict := NewDictionary(Entry{Insults, []string{"", "a", "A"}})
	before := dict.Entries()

	assert.NotEmpty(t, Lint(dict, English))
	assert.Equal(t, before, dict.Entries())
}

func TestFindingString(t *testing.T) {
	f := Finding{Category: Insults, Phrase: "x", Kind: ShortPhrase, Detail: "too short"}
	assert.Equal(t, `insults: "x" (short): too short`, f.String())
}

func TestLintDetectsLanguage(t *testing.T) {
	dict := NewDictionary(Entry{Insults, []string{"idiot", "the"}})

	findings := Lint(dict, "")
	assert.Equal(t, []FindingKind{StopWordPhrase}, findingKinds(findings)[Insults]["the"])
	assert.Equal(t, English, detectDictionaryLanguage(dict))
	assert.Equal(t, Japanese, detectDictionaryLanguage(DefaultDictionary()))
}

func TestLintSymbolPhrasesAreNotStopWords(t *testing.T) {
	dict := NewDictionary(Entry{Insults, []string{"💀", "!!", "🖕🖕", "the 💀", "idiot"}})

	for _, f := range Lint(dict, English) {
		assert.NotEqual(t, StopWordPhrase, f.Kind, f.String())
	}
	assert.Equal(t, 2, AnalyzeText("you 💀", dict))
}
