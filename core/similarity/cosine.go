// Package similarity provides the embedding similarity primitive used by
// every other engine in the module.
package similarity

import "math"

// Cosine calculates the cosine similarity between two embedding vectors.
// The result is in [-1,1]. Vectors of differing length and zero vectors
// score 0; the function never returns NaN and never panics.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
