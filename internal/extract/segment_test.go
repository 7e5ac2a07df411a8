package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pad(n int) string {
	return strings.Repeat("filler text for the question body ", n)
}

func TestSegment_QDotNumbering(t *testing.T) {
	s := NewSegmenter(0, nil)
	text := "Q. 1. What is the value of x? " + pad(4) +
		"\nQ. 2. What is the value of y? " + pad(4)

	blocks := s.Segment(text)

	require.Len(t, blocks, 2)
	assert.True(t, strings.HasPrefix(blocks[0], "Q. 1."))
	assert.True(t, strings.HasPrefix(blocks[1], "Q. 2."))
}

func TestSegment_FirstPatternWins(t *testing.T) {
	// "Question N." is present, so the lower-priority bare-number pattern
	// must not introduce extra boundaries.
	s := NewSegmenter(0, nil)
	text := "Question 1. Evaluate the sum. " + pad(4) +
		"\n1. An inner enumeration item that looks like a question start\n" +
		"Question 2. Evaluate the product. " + pad(4)

	blocks := s.Segment(text)

	require.Len(t, blocks, 2)
	assert.Contains(t, blocks[0], "inner enumeration")
	assert.True(t, strings.HasPrefix(blocks[1], "Question 2."))
}

func TestSegment_StripsWorkedSolution(t *testing.T) {
	s := NewSegmenter(0, nil)
	text := "Q. 1. Compute the limit of the sequence. " + pad(3) +
		"(1) 0 (2) 1 (3) 2 (4) 3\nAns. (2) Sol. We expand the series and observe the dominant term."

	blocks := s.Segment(text)

	require.Len(t, blocks, 1)
	assert.Contains(t, blocks[0], "Ans. (2)")
	assert.NotContains(t, blocks[0], "dominant term")
}

func TestSegment_SolutionWithoutAnswerKeyKept(t *testing.T) {
	s := NewSegmenter(0, nil)
	text := "Q. 1. Compute the limit. " + pad(4) +
		"Sol. appears without a preceding answer marker here."

	blocks := s.Segment(text)

	require.Len(t, blocks, 1)
	assert.Contains(t, blocks[0], "without a preceding answer marker")
}

func TestSegment_ShortCandidatesDropped(t *testing.T) {
	s := NewSegmenter(0, nil)
	text := "Q. 1. Too short.\nQ. 2. Long enough to survive the candidate filter. " + pad(4)

	blocks := s.Segment(text)

	require.Len(t, blocks, 1)
	assert.True(t, strings.HasPrefix(blocks[0], "Q. 2."))
}

func TestSegment_BlankLineFallback(t *testing.T) {
	s := NewSegmenter(0, nil)
	text := "A paragraph with no numbering convention at all, " + pad(2) +
		"\n\n" +
		"Another paragraph, also unnumbered, " + pad(2) +
		"\n\nshort"

	blocks := s.Segment(text)

	require.Len(t, blocks, 2)
	assert.Contains(t, blocks[0], "no numbering convention")
	assert.Contains(t, blocks[1], "also unnumbered")
}

func TestSegment_CapsBlockCount(t *testing.T) {
	s := NewSegmenter(3, nil)
	var b strings.Builder
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&b, "Q. %d. Question number %d body. %s\n", i, i, pad(4))
	}

	blocks := s.Segment(b.String())

	assert.Len(t, blocks, 3)
}

func TestSegment_DefaultCap(t *testing.T) {
	s := NewSegmenter(0, nil)
	var b strings.Builder
	for i := 1; i <= DefaultMaxBlocks+10; i++ {
		fmt.Fprintf(&b, "Q. %d. Question number %d body. %s\n", i, i, pad(4))
	}

	blocks := s.Segment(b.String())

	assert.Len(t, blocks, DefaultMaxBlocks)
}
