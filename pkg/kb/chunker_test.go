package kb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkerEmptyInput(t *testing.T) {
	c := NewChunker(500, 50)

	assert.Nil(t, c.Split(""))
	assert.Nil(t, c.Split("   \n\t  "))
}

func TestChunkerShortTextSingleChunk(t *testing.T) {
	c := NewChunker(500, 50)

	chunks := c.Split("The generator runs on propane.")
	require.Len(t, chunks, 1)
	assert.Equal(t, 0, chunks[0].OrderIndex)
	assert.Equal(t, "The generator runs on propane.", chunks[0].Text)
	assert.Positive(t, chunks[0].TokenCount)
}

func TestChunkerDeterministic(t *testing.T) {
	c := NewChunker(50, 10)
	text := strings.Repeat("The battery bank holds forty kilowatt hours. ", 60)

	first := c.Split(text)
	second := c.Split(text)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Text, second[i].Text)
		assert.Equal(t, first[i].OrderIndex, second[i].OrderIndex)
	}
}

func TestChunkerWindowAndOverlap(t *testing.T) {
	c := NewChunker(50, 10)
	text := strings.Repeat("Solar production peaks near noon on clear days. ", 40)

	chunks := c.Split(text)
	require.Greater(t, len(chunks), 1)

	for i, chunk := range chunks {
		assert.Equal(t, i, chunk.OrderIndex)
		// Window is 50 tokens; boundary adjustment can only shrink it.
		assert.LessOrEqual(t, chunk.TokenCount, 50)
		assert.NotEmpty(t, chunk.Text)
	}

	// Consecutive chunks share overlapping text.
	tail := chunks[0].Text[len(chunks[0].Text)-20:]
	assert.Contains(t, chunks[1].Text, strings.TrimSpace(tail))
}

func TestChunkerSentenceAlignment(t *testing.T) {
	c := NewChunker(25, 0)

	// Sentences sized so a terminator falls inside the 20% alignment zone
	// of every window.
	text := strings.Repeat("This sentence is roughly ninety characters long to land a period near the window edge. ", 10)

	chunks := c.Split(text)
	require.Greater(t, len(chunks), 1)

	// All but the last chunk should end on a sentence terminator.
	for _, chunk := range chunks[:len(chunks)-1] {
		last := chunk.Text[len(chunk.Text)-1]
		assert.Contains(t, []byte{'.', '!', '?'}, last, "chunk ends with %q", string(last))
	}
}

func TestChunkerNeverCutsMidWord(t *testing.T) {
	c := NewChunker(30, 5)
	text := strings.Repeat("hydroelectric considerations ", 80)

	for _, chunk := range c.Split(text) {
		for _, word := range strings.Fields(chunk.Text) {
			assert.Contains(t, []string{"hydroelectric", "considerations"}, word)
		}
	}
}
