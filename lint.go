package toxic

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bbalet/stopwords"
)

// FindingKind classifies a dictionary lint finding.
type FindingKind string

const (
	// EmptyPhrase matches every token.
	EmptyPhrase FindingKind = "empty"
	// ShortPhrase is a single rune and matches most tokens containing it.
	ShortPhrase FindingKind = "short"
	// StopWordPhrase is made only of stop words.
	StopWordPhrase FindingKind = "stop-word"
	// DuplicatePhrase repeats within a category after lower-casing.
	DuplicatePhrase FindingKind = "duplicate"
	// SharedPhrase appears in more than one category and scores in each.
	SharedPhrase FindingKind = "shared"
)

// A Finding is one questionable phrase in a dictionary.
type Finding struct {
	Category Category
	Phrase   string
	Kind     FindingKind
	Detail   string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %q (%s): %s", f.Category, f.Phrase, f.Kind, f.Detail)
}

// Lint reports phrases that make the bidirectional matcher overly broad or
// that double count. It never changes the dictionary. lang picks the
// stop-word list; when empty it is detected from the phrases.
func Lint(dict *Dictionary, lang Language) []Finding {
	var findings []Finding
	lower := newLowerer()
	owners := make(map[string]Category)

	if lang == "" {
		lang = detectDictionaryLanguage(dict)
	}

	for _, e := range dict.Entries() {
		seen := make(map[string]bool, len(e.Phrases))
		for _, phrase := range e.Phrases {
			add := func(kind FindingKind, detail string) {
				findings = append(findings, Finding{Category: e.Category, Phrase: phrase, Kind: kind, Detail: detail})
			}

			if phrase == "" {
				add(EmptyPhrase, "an empty phrase is contained in every token")
				continue
			}
			if utf8.RuneCountInString(phrase) == 1 {
				add(ShortPhrase, "single-character phrases match any token containing them")
			}
			if isStopPhrase(phrase, lang) {
				add(StopWordPhrase, fmt.Sprintf("consists only of %s stop words", lang))
			}

			lowered := lower.String(phrase)
			if seen[lowered] {
				add(DuplicatePhrase, "repeated in this category ignoring case")
				continue
			}
			seen[lowered] = true

			if owner, ok := owners[lowered]; ok && owner != e.Category {
				add(SharedPhrase, fmt.Sprintf("also listed under %s, matches score in both", owner))
			} else if !ok {
				owners[lowered] = e.Category
			}
		}
	}

	return findings
}

// isStopPhrase reports whether every word of phrase is a stop word for lang.
// CleanString also drops runs without letters, so a phrase with any such
// field (emoji, symbols) is never a stop phrase.
func isStopPhrase(phrase string, lang Language) bool {
	fields := strings.Fields(phrase)
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if strings.IndexFunc(f, unicode.IsLetter) < 0 {
			return false
		}
	}
	cleaned := stopwords.CleanString(phrase, string(lang), false)
	return strings.TrimSpace(cleaned) == ""
}

func detectDictionaryLanguage(dict *Dictionary) Language {
	var all []string
	for _, e := range dict.Entries() {
		all = append(all, e.Phrases...)
	}
	return DetectLanguage(strings.Join(all, " "))
}
