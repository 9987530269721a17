package pipeline

import (
	"strings"

	"github.com/siherrmann/notegraph/model"
)

// ParagraphChunker creates a chunker that splits each page on paragraph
// boundaries. Page numbers are 1-based; empty paragraphs are skipped.
func ParagraphChunker() ChunkFunc {
	return func(pages []string) []model.DocumentChunk {
		var chunks []model.DocumentChunk

		for pageIdx, page := range pages {
			paragraphs := strings.Split(page, "\n\n")
			for _, para := range paragraphs {
				para = strings.TrimSpace(para)
				if para == "" {
					continue
				}

				chunks = append(chunks, model.DocumentChunk{
					Content: para,
					Page:    pageIdx + 1,
				})
			}
		}

		return chunks
	}
}
