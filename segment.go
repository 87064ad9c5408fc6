package toxic

import (
	"fmt"
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

var (
	segmenterOnce sync.Once
	segmenter     *sentences.DefaultSentenceTokenizer
	segmenterErr  error
)

// punktSegmenter loads the punkt model once; the tokenizer is read-only after
// training data is loaded.
func punktSegmenter() (*sentences.DefaultSentenceTokenizer, error) {
	segmenterOnce.Do(func() {
		segmenter, segmenterErr = english.NewSentenceTokenizer(nil)
	})
	return segmenter, segmenterErr
}

// ExplainSentences splits text into sentences and analyzes each one on its
// own. Context windows do not cross sentence boundaries here, so the sum of
// sentence scores can differ from Explain(text).Score.
func (a *Analyzer) ExplainSentences(text string) ([]SentenceReport, error) {
	seg, err := punktSegmenter()
	if err != nil {
		return nil, fmt.Errorf("error loading sentence segmenter: %w", err)
	}

	var out []SentenceReport
	for _, s := range seg.Tokenize(text) {
		trimmed := strings.TrimSpace(s.Text)
		if trimmed == "" {
			continue
		}
		out = append(out, SentenceReport{
			Report: a.Explain(trimmed),
			Start:  s.Start,
			End:    s.End,
		})
	}
	return out, nil
}
