// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"testing"
)

func lines(ls ...string) []string { return ls }

func TestSegmentLotHeadings(t *testing.T) {
	doc := lines(
		"Auction Results Spring 2022", // preamble, claimed by no chunk
		"Lot 1",
		"Pablo Picasso",
		"Title Femme assise",
		"Medium Oil on canvas",
		"Sold For $12,500",
		"Lot 2",
		"Henri Matisse",
		"Title La danse",
		"Medium Gouache",
		"Sold For $8,000",
	)

	chunks := Segment(doc, DefaultRules())

	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if chunks[0].StartLine != 1 || chunks[0].EndLine != 6 {
		t.Errorf("chunk 0 spans [%d,%d), want [1,6)", chunks[0].StartLine, chunks[0].EndLine)
	}
	if chunks[1].StartLine != 6 || chunks[1].EndLine != 11 {
		t.Errorf("chunk 1 spans [%d,%d), want [6,11)", chunks[1].StartLine, chunks[1].EndLine)
	}
}

func TestSegmentArtistHeadings(t *testing.T) {
	doc := lines(
		"Pablo Picasso",
		"Title Femme assise",
		"Medium Oil on canvas",
		"Henri Matisse",
		"Title La danse",
	)

	chunks := Segment(doc, DefaultRules())

	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if got := chunks[0].Lines[0]; got != "Pablo Picasso" {
		t.Errorf("chunk 0 opens with %q", got)
	}
	if got := chunks[1].Lines[0]; got != "Henri Matisse" {
		t.Errorf("chunk 1 opens with %q", got)
	}
}

func TestSegmentNoLineClaimedTwice(t *testing.T) {
	doc := lines(
		"preamble",
		"Lot 1",
		"Ann Artist",
		"Title One",
		"Lot 2",
		"Bea Artist",
		"Title Two",
		"Lot 3",
		"Cal Artist",
		"Title Three",
	)

	chunks := Segment(doc, DefaultRules())

	claimed := make(map[int]int)
	for ci, c := range chunks {
		if c.EndLine-c.StartLine != len(c.Lines) {
			t.Errorf("chunk %d: span %d-%d disagrees with %d lines",
				ci, c.StartLine, c.EndLine, len(c.Lines))
		}
		for i := c.StartLine; i < c.EndLine; i++ {
			if prev, ok := claimed[i]; ok {
				t.Errorf("line %d claimed by chunks %d and %d", i, prev, ci)
			}
			claimed[i] = ci
		}
	}

	if _, ok := claimed[0]; ok {
		t.Error("preamble line 0 should belong to no chunk")
	}
	for i := 1; i < len(doc); i++ {
		if _, ok := claimed[i]; !ok {
			t.Errorf("line %d belongs to no chunk", i)
		}
	}
}

func TestSegmentZeroBoundaries(t *testing.T) {
	doc := lines(
		"no recognizable heading here",
		"just prose text",
	)

	if chunks := Segment(doc, DefaultRules()); len(chunks) != 0 {
		t.Errorf("got %d chunks, want 0", len(chunks))
	}
}

func TestSegmentEmptyDocument(t *testing.T) {
	if chunks := Segment(nil, DefaultRules()); len(chunks) != 0 {
		t.Errorf("got %d chunks from nil lines, want 0", len(chunks))
	}
}

func TestSegmentHeadingNotConfirmedIsNotBoundary(t *testing.T) {
	// A plain line with no Title label nearby must not open a chunk,
	// even though it matches the artist-heading pattern.
	doc := lines(
		"Lot 9",
		"Ann Artist",
		"Title One",
		"Description includes a stray line",
		"that wrapped onto this row",
		"Sold For $100",
	)

	chunks := Segment(doc, DefaultRules())

	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want 1", len(chunks))
	}
}

func TestSegmentWrappedTailBeforeNextArtistHeading(t *testing.T) {
	doc := lines(
		"Ann Artist",
		"Title One",
		"Misc. Signed lower right",
		"and dated on the reverse",
		"Henri Matisse",
		"Title Two",
	)

	chunks := Segment(doc, DefaultRules())

	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	// The wrapped Misc. tail stays with its record; the next chunk opens
	// on the artist heading itself.
	if chunks[0].EndLine != 4 {
		t.Errorf("chunk 0 ends at %d, want 4", chunks[0].EndLine)
	}
	if got := chunks[1].Lines[0]; got != "Henri Matisse" {
		t.Errorf("chunk 1 opens with %q, want the artist heading", got)
	}
}

func TestSegmentAdjacentLotHeadings(t *testing.T) {
	doc := lines(
		"Lot 1",
		"Withdrawn",
		"Lot 2",
		"Ann Artist",
		"Title Two",
	)

	chunks := Segment(doc, DefaultRules())

	// A lot heading needs no confirmation and is never suppressed, even
	// two lines after the previous boundary.
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if chunks[0].StartLine != 0 || chunks[0].EndLine != 2 {
		t.Errorf("chunk 0 spans [%d,%d), want [0,2)", chunks[0].StartLine, chunks[0].EndLine)
	}
	if chunks[1].StartLine != 2 || chunks[1].EndLine != 5 {
		t.Errorf("chunk 1 spans [%d,%d), want [2,5)", chunks[1].StartLine, chunks[1].EndLine)
	}
}

func TestSegmentLotInsideLabelValueIsNotBoundary(t *testing.T) {
	doc := lines(
		"Lot 1",
		"Ann Artist",
		"Title One",
		"Sale of Phillips: Friday, June 3, 2022 [Lot 77]",
		"Sold For $100",
	)

	chunks := Segment(doc, DefaultRules())

	// The "[Lot 77]" reference sits inside a label line, which is never
	// a boundary.
	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want 1", len(chunks))
	}
}
