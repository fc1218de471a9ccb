package scoring

import (
	_ "embed"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yml
var lexiconYAML []byte

type lexicon struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

var (
	positiveWords map[string]struct{}
	negativeWords map[string]struct{}
)

func init() {
	var lex lexicon
	if err := yaml.Unmarshal(lexiconYAML, &lex); err != nil {
		panic(fmt.Sprintf("scoring: invalid embedded lexicon: %v", err))
	}
	positiveWords = make(map[string]struct{}, len(lex.Positive))
	for _, w := range lex.Positive {
		positiveWords[w] = struct{}{}
	}
	negativeWords = make(map[string]struct{}, len(lex.Negative))
	for _, w := range lex.Negative {
		negativeWords[w] = struct{}{}
	}
}

// SentimentScorer estimates text polarity from a fixed word lexicon. This is
// a deterministic heuristic proxy with no model dependency; treat the output
// as a coarse signal, not a measurement.
type SentimentScorer struct{}

// NewSentimentScorer returns a lexicon-based sentiment scorer.
func NewSentimentScorer() *SentimentScorer {
	return &SentimentScorer{}
}

// Score returns sentiment in [-1,1]: (positive hits - negative hits) over
// total hits, or 0 when the text contains no lexicon words.
func (s *SentimentScorer) Score(text string) float64 {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	pos, neg := 0, 0
	for _, w := range words {
		if _, ok := positiveWords[w]; ok {
			pos++
		} else if _, ok := negativeWords[w]; ok {
			neg++
		}
	}

	total := pos + neg
	if total == 0 {
		return 0
	}
	return float64(pos-neg) / float64(total)
}
