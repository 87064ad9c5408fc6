package toxic

import (
	"sort"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
	"go.uber.org/zap"
)

const (
	// ContextRange is the number of tokens on each side of a match that are
	// searched for danger words.
	ContextRange = 2
	// DangerBonus is added for every category match whose context window
	// contains a danger word.
	DangerBonus = 2
)

var dangerWords = []string{"死ね", "殺す", "殺", "潰す"}

// dangerMatcher is built once and only queried through MatchThreadSafe.
var dangerMatcher = ahocorasick.NewStringMatcher(dangerWords)

// DangerWords returns the substrings that escalate a nearby match.
func DangerWords() []string {
	return append([]string(nil), dangerWords...)
}

// Analyzer scores text against a dictionary and weight table. It is
// immutable once built and safe for concurrent use.
type Analyzer struct {
	dict      *Dictionary
	weights   Weights
	tokenizer Tokenizer
	logger    *zap.Logger

	categories []Category
	sets       []phraseSet
}

type AnalyzerOptFunc func(*Analyzer)

// UsingDictionary sets the phrase dictionary. A nil dictionary matches nothing.
func UsingDictionary(d *Dictionary) AnalyzerOptFunc {
	return func(a *Analyzer) {
		a.dict = d
	}
}

// UsingWeights sets the category weight table. The map is copied.
func UsingWeights(w Weights) AnalyzerOptFunc {
	return func(a *Analyzer) {
		a.weights = make(Weights, len(w))
		for c, weight := range w {
			a.weights[c] = weight
		}
	}
}

// UsingTokenizer replaces the default punctuation tokenizer.
func UsingTokenizer(t Tokenizer) AnalyzerOptFunc {
	return func(a *Analyzer) {
		a.tokenizer = t
	}
}

// UsingLogger attaches a logger. Hits are logged at debug level.
func UsingLogger(l *zap.Logger) AnalyzerOptFunc {
	return func(a *Analyzer) {
		a.logger = l
	}
}

// NewAnalyzer creates an analyzer. Without options it uses
// DefaultDictionary and DefaultWeights.
func NewAnalyzer(opts ...AnalyzerOptFunc) *Analyzer {
	a := &Analyzer{
		dict:      DefaultDictionary(),
		weights:   DefaultWeights(),
		tokenizer: defaultTokenizer,
		logger:    zap.NewNop(),
	}
	for _, applyOpt := range opts {
		applyOpt(a)
	}
	if a.dict == nil {
		a.dict = NewDictionary()
	}
	if a.tokenizer == nil {
		a.tokenizer = defaultTokenizer
	}
	if a.logger == nil {
		a.logger = zap.NewNop()
	}

	lower := newLowerer()
	phrases := 0
	for _, e := range a.dict.Entries() {
		a.categories = append(a.categories, e.Category)
		a.sets = append(a.sets, newPhraseSet(lower, e.Phrases))
		phrases += len(e.Phrases)
	}

	a.logger.Info("analyzer initialized",
		zap.Int("categories", len(a.categories)),
		zap.Int("phrases", phrases))

	return a
}

// Dictionary returns the dictionary the analyzer scores against.
func (a *Analyzer) Dictionary() *Dictionary {
	return a.dict
}

// Weight returns the points a match in category c is worth.
func (a *Analyzer) Weight(c Category) int {
	return a.weights.Of(c)
}

// Score returns the weighted severity score of text.
func (a *Analyzer) Score(text string) int {
	return a.Explain(text).Score
}

// Explain scores text and records every hit that contributed to the score.
//
// Each token is tested against every category in dictionary order. A match
// adds the category weight, and DangerBonus on top when the token's context
// window contains a danger word. The bonus is applied per category match, so
// a token matching two categories near a danger word collects it twice.
func (a *Analyzer) Explain(text string) Report {
	tokens := a.tokenizer.Tokenize(text)
	report := Report{Text: text, Tokens: tokens}
	lower := newLowerer()

	for i, token := range tokens {
		lowered := lower.String(token)

		var (
			window  string
			danger  []string
			scanned bool
		)
		for j, set := range a.sets {
			if !set.match(lowered) {
				continue
			}
			if !scanned {
				window = contextWindow(tokens, i)
				danger = dangerIn(window)
				scanned = true
			}

			hit := Hit{
				Token:    token,
				Position: i,
				Category: a.categories[j],
				Weight:   a.weights.Of(a.categories[j]),
				Context:  window,
				Danger:   danger,
			}
			if len(danger) > 0 {
				hit.Bonus = DangerBonus
			}
			report.Score += hit.Points()
			report.Hits = append(report.Hits, hit)

			a.logger.Debug("dictionary hit",
				zap.String("token", token),
				zap.Int("position", i),
				zap.String("category", string(hit.Category)),
				zap.Int("points", hit.Points()))
		}
	}

	report.Tier = ClassifyScore(float64(report.Score))
	return report
}

// contextWindow joins up to ContextRange tokens on each side of position i
// around the token itself. Missing sides leave their separator space in place.
func contextWindow(tokens []string, i int) string {
	left := strings.Join(tokens[max(0, i-ContextRange):i], " ")
	right := strings.Join(tokens[i+1:min(len(tokens), i+1+ContextRange)], " ")
	return left + " " + tokens[i] + " " + right
}

// dangerIn returns the danger words contained in s, in declaration order.
func dangerIn(s string) []string {
	hits := dangerMatcher.MatchThreadSafe([]byte(s))
	if len(hits) == 0 {
		return nil
	}
	sort.Ints(hits)
	words := make([]string, 0, len(hits))
	for i, idx := range hits {
		if i > 0 && hits[i-1] == idx {
			continue
		}
		words = append(words, dangerWords[idx])
	}
	return words
}

// AnalyzeText scores text against dict using DefaultWeights.
func AnalyzeText(text string, dict *Dictionary) int {
	return NewAnalyzer(UsingDictionary(dict)).Score(text)
}
