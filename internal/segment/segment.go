// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment splits a document's line stream into per-record
// chunks using a data-driven boundary rule table.
package segment

import "strings"

// Chunk is the contiguous slice of lines believed to contain one
// record. StartLine/EndLine are indices into the document's line
// sequence, end exclusive, so a row can be traced back to its source.
type Chunk struct {
	StartLine int
	EndLine   int
	Lines     []string
}

// Segment scans lines in a single forward pass and yields one chunk per
// detected record boundary. Lines before the first boundary are
// preamble and belong to no chunk; every other line belongs to exactly
// one chunk. A document with no boundary yields no chunks.
//
// A confirmation-based boundary cannot open within its rule's window
// of the previous boundary. That keeps a "Lot 1" heading and the
// artist line right under it from producing two chunks for one record.
// Rules without confirmation labels are never suppressed.
func Segment(lines []string, rules *RuleTable) []Chunk {
	var chunks []Chunk
	start := -1
	lastBoundary := -1

	flush := func(end int) {
		if start < 0 {
			return
		}
		chunks = append(chunks, Chunk{
			StartLine: start,
			EndLine:   end,
			Lines:     lines[start:end],
		})
	}

	for i := range lines {
		rule := rules.match(lines, i)
		if rule == nil {
			continue
		}
		if len(rule.ConfirmLabels) > 0 && lastBoundary >= 0 && i-lastBoundary <= rule.Window {
			continue
		}
		flush(i)
		start = i
		lastBoundary = i
	}
	flush(len(lines))

	return chunks
}

// IsEmpty reports whether the chunk contains no non-blank line.
func (c Chunk) IsEmpty() bool {
	for _, line := range c.Lines {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}
