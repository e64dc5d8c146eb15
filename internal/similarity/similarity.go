// Package similarity scores how alike two normalized documents are.
package similarity

import (
	"math"
)

// Scorer compares two normalized documents and returns a score in [0, 1]
type Scorer interface {
	Score(a, b string) (float64, error)
}

// TFIDFCosine fits a fresh TF-IDF space over each pair it scores and
// returns the cosine of the two document vectors.
type TFIDFCosine struct{}

func NewTFIDFCosine() *TFIDFCosine {
	return &TFIDFCosine{}
}

func (TFIDFCosine) Score(a, b string) (float64, error) {
	vectorizer := NewTFIDFVectorizer()
	vectorizer.Fit([]string{a, b})
	if len(vectorizer.Vocabulary) == 0 {
		return 0, nil
	}
	return Clamp(CosineSimilarity(vectorizer.Transform(a), vectorizer.Transform(b))), nil
}

// CosineSimilarity calculates the cosine similarity between two vectors.
// Mismatched, empty or zero-magnitude vectors score 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Clamp bounds score to [0, 1]; NaN becomes 0
func Clamp(score float64) float64 {
	switch {
	case math.IsNaN(score), score < 0:
		return 0
	case score > 1:
		return 1
	}
	return score
}
