package similarity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosine(t *testing.T) {
	t.Run("Identical vectors score 1", func(t *testing.T) {
		v := []float32{0.5, 0.5, 0.5, 0.5}
		score := Cosine(v, v)
		assert.InDelta(t, 1.0, score, 1e-6, "Expected cosine of a vector with itself to be 1")
	})

	t.Run("Opposite vectors score -1", func(t *testing.T) {
		v := []float32{0.2, -0.4, 0.6}
		neg := []float32{-0.2, 0.4, -0.6}
		score := Cosine(v, neg)
		assert.InDelta(t, -1.0, score, 1e-6, "Expected cosine of a vector with its negation to be -1")
	})

	t.Run("Orthogonal vectors score 0", func(t *testing.T) {
		a := []float32{1, 0}
		b := []float32{0, 1}
		score := Cosine(a, b)
		assert.InDelta(t, 0.0, score, 1e-6, "Expected cosine of orthogonal vectors to be 0")
	})

	t.Run("Length mismatch scores 0", func(t *testing.T) {
		a := []float32{1, 2, 3}
		b := []float32{1, 2}
		score := Cosine(a, b)
		assert.Equal(t, 0.0, score, "Expected cosine of vectors with differing lengths to be 0")
		assert.False(t, math.IsNaN(score), "Expected no NaN for mismatched lengths")
	})

	t.Run("Zero vector scores 0 without NaN", func(t *testing.T) {
		zero := []float32{0, 0, 0}
		v := []float32{1, 2, 3}

		score := Cosine(zero, v)
		assert.Equal(t, 0.0, score, "Expected zero vector to score 0")
		assert.False(t, math.IsNaN(score), "Expected no NaN for a zero vector")

		score = Cosine(zero, zero)
		assert.Equal(t, 0.0, score, "Expected two zero vectors to score 0")
		assert.False(t, math.IsNaN(score), "Expected no NaN for two zero vectors")
	})

	t.Run("Empty vectors score 0", func(t *testing.T) {
		score := Cosine(nil, nil)
		assert.Equal(t, 0.0, score, "Expected nil vectors to score 0")
	})

	t.Run("Result stays within [-1,1]", func(t *testing.T) {
		a := []float32{0.1, 0.9, 0.3, 0.7}
		b := []float32{0.8, 0.2, 0.5, 0.4}
		score := Cosine(a, b)
		assert.GreaterOrEqual(t, score, -1.0, "Expected score >= -1")
		assert.LessOrEqual(t, score, 1.0, "Expected score <= 1")
	})
}
