package extract

import (
	"log/slog"
	"regexp"
	"strings"
)

// DefaultMaxBlocks caps how many candidate blocks one document may yield.
// Larger papers are a known limitation, not an error.
const DefaultMaxBlocks = 50

const (
	// a segment must be longer than this to count as a question candidate
	minCandidateLen = 100
	// segments shorter than this after shrinking are discarded
	minBlockLen = 50
)

// Numbering patterns tried in fixed priority order against the whole text.
// The first pattern producing at least one match is used for splitting;
// patterns are never combined.
var questionStartPatterns = []*regexp.Regexp{
	regexp.MustCompile(`Q\.\s*\d+\.`),
	regexp.MustCompile(`Question\s+\d+\.`),
	regexp.MustCompile(`(?m)^\s*\d+\.\s+[A-Z]`),
	regexp.MustCompile(`\d+\.\s+Let\b`),
}

var (
	reAnswerMarker = regexp.MustCompile(`Ans\.\s*\(\d+\)`)
	reBlankRun     = regexp.MustCompile(`\n\s*\n`)
)

// Segmenter splits a raw text blob into candidate question blocks.
type Segmenter struct {
	maxBlocks int
	logger    *slog.Logger
}

func NewSegmenter(maxBlocks int, logger *slog.Logger) *Segmenter {
	if maxBlocks <= 0 {
		maxBlocks = DefaultMaxBlocks
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Segmenter{maxBlocks: maxBlocks, logger: logger}
}

// Segment returns the ordered candidate blocks for one document.
func (s *Segmenter) Segment(text string) []string {
	for i, pat := range questionStartPatterns {
		locs := pat.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			continue
		}
		blocks := s.splitAt(text, locs, pat)
		s.logger.Debug("segmenter pattern matched",
			"pattern_index", i, "matches", len(locs), "blocks", len(blocks))
		return s.cap(blocks)
	}

	// No numbering convention recognized; fall back to blank-line runs.
	blocks := make([]string, 0, 8)
	for _, seg := range reBlankRun.Split(text, -1) {
		seg = strings.TrimSpace(seg)
		if len(seg) > minBlockLen {
			blocks = append(blocks, seg)
		}
	}
	s.logger.Debug("segmenter fell back to blank-line split", "blocks", len(blocks))
	return s.cap(blocks)
}

// splitAt inserts a boundary before each pattern match and filters the
// resulting segments.
func (s *Segmenter) splitAt(text string, locs [][]int, pat *regexp.Regexp) []string {
	bounds := make([]int, 0, len(locs)+2)
	bounds = append(bounds, 0)
	for _, loc := range locs {
		if loc[0] > 0 {
			bounds = append(bounds, loc[0])
		}
	}
	bounds = append(bounds, len(text))

	blocks := make([]string, 0, len(bounds)-1)
	for i := 0; i+1 < len(bounds); i++ {
		seg := strings.TrimSpace(text[bounds[i]:bounds[i+1]])
		if len(seg) <= minCandidateLen {
			continue
		}
		seg = truncateAtNextStart(seg, pat)
		seg = stripSolution(seg)
		seg = strings.TrimSpace(seg)
		if len(seg) < minBlockLen {
			continue
		}
		blocks = append(blocks, seg)
	}
	return blocks
}

// truncateAtNextStart guards against two adjacent questions surviving in one
// segment: a second question-start inside the segment truncates it there.
func truncateAtNextStart(seg string, pat *regexp.Regexp) string {
	for _, loc := range pat.FindAllStringIndex(seg, -1) {
		if loc[0] > 0 {
			return seg[:loc[0]]
		}
	}
	return seg
}

// stripSolution drops a worked solution trailing the answer key: when an
// "Ans. (n)" marker is followed by "Sol.", the segment ends at "Sol.".
func stripSolution(seg string) string {
	loc := reAnswerMarker.FindStringIndex(seg)
	if loc == nil {
		return seg
	}
	if sol := strings.Index(seg[loc[1]:], "Sol."); sol >= 0 {
		return seg[:loc[1]+sol]
	}
	return seg
}

func (s *Segmenter) cap(blocks []string) []string {
	if len(blocks) > s.maxBlocks {
		s.logger.Warn("segmenter truncating block list", "found", len(blocks), "cap", s.maxBlocks)
		return blocks[:s.maxBlocks]
	}
	return blocks
}
