package similarity

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Vectorizer turns text into a vector
type Vectorizer interface {
	Fit(docs []string)
	Transform(text string) []float64
}

// TFIDFVectorizer implements Term Frequency - Inverse Document Frequency
// with smoothed IDF and L2-normalized output vectors.
type TFIDFVectorizer struct {
	Vocabulary map[string]int
	IDF        []float64
}

func NewTFIDFVectorizer() *TFIDFVectorizer {
	return &TFIDFVectorizer{
		Vocabulary: make(map[string]int),
	}
}

// Terms splits text into lower-cased runs of word characters
func Terms(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(c rune) bool {
		return !unicode.IsLetter(c) && !unicode.IsNumber(c) && !unicode.IsMark(c) && c != '_'
	})
}

// Fit builds a sorted vocabulary and IDF weights from docs, replacing any
// previous fit.
func (v *TFIDFVectorizer) Fit(docs []string) {
	docCount := float64(len(docs))
	wordDocCounts := make(map[string]int)

	for _, doc := range docs {
		seenInDoc := make(map[string]bool)
		for _, term := range Terms(doc) {
			if !seenInDoc[term] {
				wordDocCounts[term]++
				seenInDoc[term] = true
			}
		}
	}

	words := make([]string, 0, len(wordDocCounts))
	for word := range wordDocCounts {
		words = append(words, word)
	}
	sort.Strings(words)

	v.Vocabulary = make(map[string]int, len(words))
	v.IDF = make([]float64, len(words))
	for i, word := range words {
		v.Vocabulary[word] = i
		// idf = ln((1 + n) / (1 + df)) + 1
		v.IDF[i] = math.Log((1+docCount)/(1+float64(wordDocCounts[word]))) + 1
	}
}

// Transform converts text to a unit-length vector over the fitted
// vocabulary. Text with no known terms yields the zero vector.
func (v *TFIDFVectorizer) Transform(text string) []float64 {
	vector := make([]float64, len(v.Vocabulary))
	for _, term := range Terms(text) {
		if idx, exists := v.Vocabulary[term]; exists {
			vector[idx]++
		}
	}

	var norm float64
	for i := range vector {
		vector[i] *= v.IDF[i]
		norm += vector[i] * vector[i]
	}
	if norm == 0 {
		return vector
	}

	norm = math.Sqrt(norm)
	for i := range vector {
		vector[i] /= norm
	}
	return vector
}
