// Package scoring implements the per-post and per-batch scorers behind the
// trend analysis engine. Scorers hold no mutable state across batches: a
// fresh scorer is constructed for every analysis run.
package scoring

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"trendpulse/internal/models"
)

const (
	defaultMaxFeatures = 1000
	defaultMaxDocFrac  = 0.8
)

// RelevanceScorer computes batch-scoped TF-IDF relevance. The keyword's own
// post set is the corpus; there is no global corpus.
type RelevanceScorer struct {
	maxFeatures int
	maxDocFrac  float64
}

// RelevanceResult carries per-post relevance in [0,1] and the batch's top
// terms by mean weight.
type RelevanceResult struct {
	Scores   map[uint]float64
	TopTerms []models.TermScore
}

// NewRelevanceScorer returns a scorer with the default feature cap (1000)
// and document-frequency ceiling (80%).
func NewRelevanceScorer() *RelevanceScorer {
	return &RelevanceScorer{
		maxFeatures: defaultMaxFeatures,
		maxDocFrac:  defaultMaxDocFrac,
	}
}

// Score vectorizes the batch and returns one relevance value per post.
// Degenerate batches (0 or 1 post) produce zero values rather than an error:
// with a single document every term exceeds the document-frequency ceiling.
func (s *RelevanceScorer) Score(posts []*models.Post, topN int) RelevanceResult {
	result := RelevanceResult{
		Scores:   make(map[uint]float64, len(posts)),
		TopTerms: []models.TermScore{},
	}
	for _, p := range posts {
		result.Scores[p.ID] = 0
	}
	if len(posts) == 0 {
		return result
	}

	docs := make([][]string, len(posts))
	docFreq := map[string]int{}
	totalFreq := map[string]int{}
	for i, p := range posts {
		terms := extractTerms(p.FullText())
		docs[i] = terms
		seen := map[string]struct{}{}
		for _, t := range terms {
			totalFreq[t]++
			if _, dup := seen[t]; !dup {
				seen[t] = struct{}{}
				docFreq[t]++
			}
		}
	}

	// Document-frequency ceiling, then the feature cap by total frequency.
	n := float64(len(posts))
	vocab := make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		if float64(df) <= s.maxDocFrac*n {
			vocab = append(vocab, term)
		}
	}
	sort.Slice(vocab, func(i, j int) bool {
		if totalFreq[vocab[i]] != totalFreq[vocab[j]] {
			return totalFreq[vocab[i]] > totalFreq[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})
	if len(vocab) > s.maxFeatures {
		vocab = vocab[:s.maxFeatures]
	}
	kept := make(map[string]struct{}, len(vocab))
	for _, t := range vocab {
		kept[t] = struct{}{}
	}
	if len(kept) == 0 {
		return result
	}

	// TF-IDF with smoothed IDF and L2-normalized rows.
	idf := make(map[string]float64, len(kept))
	for t := range kept {
		idf[t] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
	}

	rowSums := make([]float64, len(posts))
	termMeans := make(map[string]float64, len(kept))
	maxSum := 0.0
	for i := range posts {
		tf := map[string]int{}
		for _, t := range docs[i] {
			if _, ok := kept[t]; ok {
				tf[t]++
			}
		}
		norm := 0.0
		for t, c := range tf {
			w := float64(c) * idf[t]
			norm += w * w
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue
		}
		for t, c := range tf {
			w := float64(c) * idf[t] / norm
			rowSums[i] += w
			termMeans[t] += w / n
		}
		if rowSums[i] > maxSum {
			maxSum = rowSums[i]
		}
	}

	if maxSum > 0 {
		for i, p := range posts {
			result.Scores[p.ID] = rowSums[i] / maxSum
		}
	}
	result.TopTerms = topTerms(termMeans, topN)
	return result
}

func topTerms(means map[string]float64, topN int) []models.TermScore {
	terms := make([]models.TermScore, 0, len(means))
	for t, m := range means {
		terms = append(terms, models.TermScore{Term: t, Score: m})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Score != terms[j].Score {
			return terms[i].Score > terms[j].Score
		}
		return terms[i].Term < terms[j].Term
	})
	if topN >= 0 && len(terms) > topN {
		terms = terms[:topN]
	}
	return terms
}

// extractTerms tokenizes text into lowercase unigrams and bigrams with stop
// words removed. Bigrams are formed over the surviving token sequence.
func extractTerms(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 || isStopWord(f) {
			continue
		}
		tokens = append(tokens, f)
	}

	terms := make([]string, 0, 2*len(tokens))
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}
