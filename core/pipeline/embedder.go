package pipeline

import (
	"fmt"
	"sync"

	"github.com/knights-analytics/hugot"
	"github.com/siherrmann/notegraph/helper"
	"golang.org/x/sync/singleflight"
)

// DefaultEmbedder creates an embedder using a real sentence transformer model.
// Uses the all-MiniLM-L6-v2 model which produces 384-dimensional embeddings.
func DefaultEmbedder() (EmbedFunc, error) {
	// Prepare model (download if needed)
	modelName := "sentence-transformers/all-MiniLM-L6-v2"
	modelPath, err := helper.PrepareModel(modelName, "onnx/model.onnx")
	if err != nil {
		return nil, err
	}

	// Initialize hugot session with Go backend
	session, err := hugot.NewGoSession()
	if err != nil {
		return nil, fmt.Errorf("failed to create hugot session: %w", err)
	}

	// Create sentence transformers pipeline configuration
	config := hugot.FeatureExtractionConfig{
		ModelPath: modelPath,
		Name:      "embedder-pipeline",
	}
	sentencePipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		if destroyErr := session.Destroy(); destroyErr != nil {
			return nil, fmt.Errorf("failed to create sentence pipeline: %w (cleanup error: %v)", err, destroyErr)
		}
		return nil, fmt.Errorf("failed to create sentence pipeline: %w", err)
	}

	return func(text string) ([]float32, error) {
		result, err := sentencePipeline.RunPipeline([]string{text})
		if err != nil {
			return nil, fmt.Errorf("failed to generate embedding: %w", err)
		}

		if len(result.Embeddings) == 0 {
			return nil, fmt.Errorf("no embedding generated")
		}

		return result.Embeddings[0], nil
	}, nil
}

// CachedEmbedder wraps an embedder with a per-session cache.
// Identical text embeds exactly once (concurrent callers share one in-flight
// call), which also makes the provider deterministic within a session.
func CachedEmbedder(embed EmbedFunc) EmbedFunc {
	var mu sync.RWMutex
	cache := make(map[string][]float32)
	var group singleflight.Group

	return func(text string) ([]float32, error) {
		mu.RLock()
		embedding, ok := cache[text]
		mu.RUnlock()
		if ok {
			return embedding, nil
		}

		result, err, _ := group.Do(text, func() (interface{}, error) {
			// Recheck under the group: a caller may join after the winner
			// already filled the cache.
			mu.RLock()
			cached, ok := cache[text]
			mu.RUnlock()
			if ok {
				return cached, nil
			}

			embedding, err := embed(text)
			if err != nil {
				return nil, err
			}

			mu.Lock()
			cache[text] = embedding
			mu.Unlock()

			return embedding, nil
		})
		if err != nil {
			return nil, err
		}

		return result.([]float32), nil
	}
}
