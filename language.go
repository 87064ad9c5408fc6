package toxic

import (
	"regexp"
	"strings"
	"unicode"
)

// functionWords are frequent short words that tell Latin-script languages
// apart. Checked in order; the first language wins a tie.
var functionWords = []struct {
	lang    Language
	pattern *regexp.Regexp
}{
	{English, regexp.MustCompile(`\b(the|and|that|have|for|not|with|you|this|but|his|from|they)\b`)},
	{Spanish, regexp.MustCompile(`\b(que|de|no|la|el|es|en|un|por|con|como|para|todo|pero)\b`)},
	{French, regexp.MustCompile(`\b(de|le|et|un|il|en|que|pour|dans|ce|son|une)\b`)},
	{German, regexp.MustCompile(`\b(der|die|und|in|den|von|zu|das|mit|sich|des|auf|ist|im|dem)\b`)},
}

var letterHints = map[rune]Language{
	'ñ': Spanish,
	'ç': French,
	'ü': German,
	'ö': German,
	'ä': German,
	'ß': German,
}

// DetectLanguage guesses the language of text from its script, function
// words and a few distinctive letters. Text that is at least half kana or
// kanji is Japanese. English is returned when nothing else scores.
func DetectLanguage(text string) Language {
	var cjk, letters int
	for _, r := range text {
		switch {
		case unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Han):
			cjk++
			letters++
		case unicode.IsLetter(r):
			letters++
		}
	}
	if letters == 0 {
		return English
	}
	if 2*cjk >= letters {
		return Japanese
	}

	text = strings.ToLower(text)
	scores := make(map[Language]int, len(functionWords))
	for _, fw := range functionWords {
		scores[fw.lang] += len(fw.pattern.FindAllStringIndex(text, -1))
	}
	for _, r := range text {
		if lang, ok := letterHints[r]; ok {
			scores[lang]++
		}
	}

	best, bestScore := English, 0
	for _, fw := range functionWords {
		if scores[fw.lang] > bestScore {
			best, bestScore = fw.lang, scores[fw.lang]
		}
	}
	return best
}
