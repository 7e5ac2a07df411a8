package extract

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/qforge/exambank/internal/entity"
)

var (
	// pure question-number marker lines carry no stem text
	reQuestionMarker = regexp.MustCompile(`^Q\.?\s*\d+\.?\s*$`)

	// "(n)" option marker, scanned over the whole block in the inline pass
	reOptionMarker = regexp.MustCompile(`\((\d+)\)`)

	// line-based option patterns for the fallback pass
	reNumberedOptionLine = regexp.MustCompile(`^\s*\((\d+)\)\s*(.*)$`)
	reLetteredOptionLine = regexp.MustCompile(`(?i)^\s*([a-d])\)\s*(.*)$`)

	// answer-key styles, in priority order: JEE numeric "Ans. (n)" first,
	// legacy alphabetic "answer: b" as fallback. At most one style is
	// honored per block.
	reNumericKey = regexp.MustCompile(`Ans\.\s*\((\d+)\)`)
	reAlphaKey   = regexp.MustCompile(`(?i)answer[:\s]*([a-d])\b`)

	// explanation section boundary: blank-line run followed by a capital
	reExplanationEnd = regexp.MustCompile(`\n\s*\n[A-Z]`)
)

// answerKeyCascade maps each key style's capture to a 0-based option index.
// Evaluated in order with early exit on first match.
var answerKeyCascade = []struct {
	re    *regexp.Regexp
	index func(capture string) int
}{
	{reNumericKey, func(c string) int {
		n, err := strconv.Atoi(c)
		if err != nil {
			return -1
		}
		return n - 1
	}},
	{reAlphaKey, func(c string) int {
		return int(strings.ToLower(c)[0] - 'a')
	}},
}

// explanationHeaders are tried in order; the first one found wins.
var explanationHeaders = []*regexp.Regexp{
	regexp.MustCompile(`(?i)solution:`),
	regexp.MustCompile(`(?i)explanation:`),
	regexp.MustCompile(`(?i)answer:`),
}

// Fields is the raw field split of one block, before math normalization.
type Fields struct {
	Stem        string
	Options     []entity.ExtractedOption
	Explanation *string
}

// FieldExtractor pulls stem, options, correct-answer key and explanation
// out of one block.
type FieldExtractor struct {
	logger *slog.Logger
}

func NewFieldExtractor(logger *slog.Logger) *FieldExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FieldExtractor{logger: logger}
}

// Extract returns the block's fields. The second return is false when the
// block yields no question (empty stem or fewer than two options after both
// option strategies) — a structural skip, not an error.
func (e *FieldExtractor) Extract(block string) (*Fields, bool) {
	options := e.extractOptions(block)
	stem := e.extractStem(block)
	if stem == "" || len(options) < 2 {
		e.logger.Debug("block skipped", "stem_len", len(stem), "options", len(options))
		return nil, false
	}

	if idx, ok := e.findAnswerKey(block); ok {
		// out-of-range keys are silently dropped; the validator rejects
		// the record later for having no correct option
		if idx >= 0 && idx < len(options) {
			options[idx].IsCorrect = true
		}
	}

	return &Fields{
		Stem:        stem,
		Options:     options,
		Explanation: e.extractExplanation(block),
	}, true
}

// extractStem accumulates block lines up to the first option line, skipping
// pure question-number markers, and joins them with single spaces.
func (e *FieldExtractor) extractStem(block string) string {
	var parts []string
	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)
		if isOptionLine(trimmed) {
			break
		}
		if trimmed == "" || reQuestionMarker.MatchString(trimmed) {
			continue
		}
		parts = append(parts, trimmed)
	}
	return strings.Join(parts, " ")
}

func isOptionLine(line string) bool {
	return reNumberedOptionLine.MatchString(line) || reLetteredOptionLine.MatchString(line)
}

// extractOptions recovers the option list: a greedy inline pass over the
// whole block first (handles all options crammed on one physical line),
// falling back to line-by-line scanning when that yields fewer than two.
func (e *FieldExtractor) extractOptions(block string) []entity.ExtractedOption {
	if opts := e.inlineOptions(block); len(opts) >= 2 {
		return opts
	}
	return e.lineOptions(block)
}

// inlineOptions walks "(n)" markers in encounter order, taking the text up
// to the next marker or end of region. Markers must run 1, 2, 3, … — a
// break in the sequence (an answer key's "(2)", a stray parenthesized
// number in the stem) ends the scan.
func (e *FieldExtractor) inlineOptions(block string) []entity.ExtractedOption {
	region := optionRegion(block)
	locs := reOptionMarker.FindAllStringSubmatchIndex(region, -1)

	var opts []entity.ExtractedOption
	for i, loc := range locs {
		n, err := strconv.Atoi(region[loc[2]:loc[3]])
		if err != nil || n != len(opts)+1 {
			if len(opts) > 0 {
				break
			}
			continue
		}
		end := len(region)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		text := strings.TrimSpace(region[loc[1]:end])
		if text == "" {
			continue
		}
		opts = append(opts, entity.ExtractedOption{Text: text, Order: len(opts)})
	}
	return opts
}

// optionRegion cuts the block just before the answer key or an explanation
// header so neither leaks into option text.
func optionRegion(block string) string {
	end := len(block)
	if loc := reNumericKey.FindStringIndex(block); loc != nil && loc[0] < end {
		end = loc[0]
	}
	for _, header := range explanationHeaders {
		if loc := header.FindStringIndex(block); loc != nil && loc[0] < end {
			end = loc[0]
		}
	}
	return block[:end]
}

// lineOptions scans line by line: an option line opens a new option, and
// text on following non-option lines is appended to the open option
// (multi-line option wrapping).
func (e *FieldExtractor) lineOptions(block string) []entity.ExtractedOption {
	region := optionRegion(block)

	var opts []entity.ExtractedOption
	open := -1
	for _, line := range strings.Split(region, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		var text string
		switch {
		case reNumberedOptionLine.MatchString(trimmed):
			text = reNumberedOptionLine.FindStringSubmatch(trimmed)[2]
		case reLetteredOptionLine.MatchString(trimmed):
			text = reLetteredOptionLine.FindStringSubmatch(trimmed)[2]
		default:
			if open >= 0 {
				opts[open].Text = strings.TrimSpace(opts[open].Text + " " + trimmed)
			}
			continue
		}
		opts = append(opts, entity.ExtractedOption{Text: strings.TrimSpace(text), Order: len(opts)})
		open = len(opts) - 1
	}
	return opts
}

// findAnswerKey resolves the block's answer key to a 0-based option index.
func (e *FieldExtractor) findAnswerKey(block string) (int, bool) {
	for _, style := range answerKeyCascade {
		if m := style.re.FindStringSubmatch(block); m != nil {
			return style.index(m[1]), true
		}
	}
	return 0, false
}

// extractExplanation captures the text after the first recognized section
// header, up to the next blank-line-then-capital boundary or end of block.
func (e *FieldExtractor) extractExplanation(block string) *string {
	for _, header := range explanationHeaders {
		loc := header.FindStringIndex(block)
		if loc == nil {
			continue
		}
		rest := block[loc[1]:]
		if end := reExplanationEnd.FindStringIndex(rest); end != nil {
			rest = rest[:end[0]]
		}
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return nil
		}
		return &rest
	}
	return nil
}
