// Package kb synchronizes documents from the external provider, chunks and
// embeds them, and serves semantic search plus always-on context files.
package kb

import (
	"strings"

	"github.com/offgrid-ops/commandcenter/pkg/contextmgr"
)

// sentenceAlignShare is how far back from the window edge a sentence
// terminator may sit and still be used as the chunk boundary.
const sentenceAlignShare = 0.2

// Chunker splits normalized document text into fixed token windows with
// overlap. Chunking is deterministic: the same text and config always
// produce the same chunks.
type Chunker struct {
	sizeTokens    int
	overlapTokens int
}

// NewChunker creates a chunker with the given window and overlap in tokens.
func NewChunker(sizeTokens, overlapTokens int) *Chunker {
	return &Chunker{
		sizeTokens:    sizeTokens,
		overlapTokens: overlapTokens,
	}
}

// Chunk is one produced slice.
type Chunk struct {
	OrderIndex int
	Text       string
	TokenCount int
}

// Split cuts text into overlapping windows. Boundaries prefer a sentence
// end within sentenceAlignShare of the window edge, then a word boundary,
// then a hard cut.
func (c *Chunker) Split(text string) []Chunk {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	windowChars := c.sizeTokens * 4
	overlapChars := c.overlapTokens * 4

	var chunks []Chunk
	start := 0
	for start < len(text) {
		end := start + windowChars
		if end >= len(text) {
			chunks = c.append(chunks, text[start:])
			break
		}

		cut := c.boundary(text, start, end)
		chunks = c.append(chunks, text[start:cut])

		next := cut - overlapChars
		if next <= start {
			next = cut
		}
		// Move the overlapped start forward to a word boundary so chunks
		// never begin mid-word; give up the overlap entirely if the span
		// holds no boundary.
		if next > 0 && !isSpace(text[next-1]) {
			if i := strings.IndexByte(text[next:cut], ' '); i >= 0 {
				next += i + 1
			} else {
				next = cut
			}
		}
		start = next
	}

	return chunks
}

func (c *Chunker) append(chunks []Chunk, raw string) []Chunk {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return chunks
	}
	return append(chunks, Chunk{
		OrderIndex: len(chunks),
		Text:       trimmed,
		TokenCount: contextmgr.EstimateTokens(trimmed),
	})
}

// boundary picks the cut position for a window [start, end).
func (c *Chunker) boundary(text string, start, end int) int {
	windowChars := end - start
	alignLimit := end - int(float64(windowChars)*sentenceAlignShare)

	// Sentence end within the alignment zone wins.
	for i := end - 1; i >= alignLimit; i-- {
		if isSentenceEnd(text[i]) {
			return i + 1
		}
	}

	// Otherwise back up to a word boundary.
	for i := end - 1; i > start; i-- {
		if isSpace(text[i]) {
			return i + 1
		}
	}

	return end
}

func isSentenceEnd(b byte) bool {
	return b == '.' || b == '!' || b == '?' || b == '\n'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
