package toxic

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// newLowerer returns a fresh caser. cases.Caser keeps state between calls, so
// each goroutine needs its own.
func newLowerer() cases.Caser {
	return cases.Lower(language.Und)
}

// MatchDictionary reports whether token matches any of phrases. Matching is
// case-insensitive and bidirectional: the token may contain the phrase or the
// phrase may contain the token.
func MatchDictionary(token string, phrases []string) bool {
	lower := newLowerer()
	return newPhraseSet(lower, phrases).match(lower.String(token))
}

// phraseSet holds one category's phrases, already lower-cased.
type phraseSet []string

func newPhraseSet(lower cases.Caser, phrases []string) phraseSet {
	set := make(phraseSet, len(phrases))
	for i, p := range phrases {
		set[i] = lower.String(p)
	}
	return set
}

// match expects token to be lower-cased already.
func (s phraseSet) match(token string) bool {
	for _, p := range s {
		if strings.Contains(token, p) || strings.Contains(p, token) {
			return true
		}
	}
	return false
}
