package toxic

import (
	"strings"
	"unicode"
)

// Tokenizer splits raw text into tokens.
type Tokenizer interface {
	Tokenize(string) []string
}

// punctuation is blanked out before splitting on whitespace.
const punctuation = ".,/#!?$%^&*;:{}=-_`~()"

var sanitizer = newSanitizer(punctuation)

// PunctTokenizer replaces a fixed punctuation class with spaces and splits on
// runs of whitespace.
type PunctTokenizer struct {
	sanitizer *strings.Replacer
}

type TokenizerOptFunc func(*PunctTokenizer)

// UsingSanitizer replaces the punctuation sanitizer.
func UsingSanitizer(x *strings.Replacer) TokenizerOptFunc {
	return func(tokenizer *PunctTokenizer) {
		tokenizer.sanitizer = x
	}
}

// NewTokenizer returns a tokenizer using the default punctuation class.
func NewTokenizer(opts ...TokenizerOptFunc) *PunctTokenizer {
	tok := &PunctTokenizer{sanitizer: sanitizer}
	for _, applyOpt := range opts {
		applyOpt(tok)
	}
	return tok
}

// Tokenize splits text into tokens, preserving order and casing. It never
// returns nil.
func (t *PunctTokenizer) Tokenize(text string) []string {
	return strings.FieldsFunc(t.sanitizer.Replace(text), isSpace)
}

var defaultTokenizer = NewTokenizer()

// Tokenize splits text with the default tokenizer.
func Tokenize(text string) []string {
	return defaultTokenizer.Tokenize(text)
}

func newSanitizer(chars string) *strings.Replacer {
	pairs := make([]string, 0, 2*len(chars))
	for _, r := range chars {
		pairs = append(pairs, string(r), " ")
	}
	return strings.NewReplacer(pairs...)
}

// isSpace matches the ECMAScript \s class: Unicode White_Space plus the BOM,
// without NEL.
func isSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}
