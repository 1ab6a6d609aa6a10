// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chdonahue/art-valuation/internal/assemble"
	"github.com/chdonahue/art-valuation/internal/segment"
	"github.com/chdonahue/art-valuation/internal/textract"
	"github.com/chdonahue/art-valuation/pkg/types"
)

func doc(path string, lines ...string) textract.Document {
	return textract.Document{SourcePath: path, Lines: lines}
}

func TestParseDocumentTwoLots(t *testing.T) {
	d := doc("sale.pdf",
		"Auction Results",
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

	report := &RunReport{}
	records := ParseDocument(d, segment.DefaultRules(), report)

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	// No cross-record bleed: each value stays with its lot.
	first, second := records[0].Fields, records[1].Fields
	if first["artist"] != "Pablo Picasso" || first["medium"] != "Oil on canvas" || first["sold_for"] != "12500" {
		t.Errorf("lot 1 fields wrong: %v", first)
	}
	if second["artist"] != "Henri Matisse" || second["medium"] != "Gouache" || second["sold_for"] != "8000" {
		t.Errorf("lot 2 fields wrong: %v", second)
	}
	if first["lot_number"] != "1" || second["lot_number"] != "2" {
		t.Errorf("lot numbers wrong: %q, %q", first["lot_number"], second["lot_number"])
	}

	// Both records assemble into the table without schema violations.
	table := assemble.New()
	for _, r := range records {
		if err := table.Append(r); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
}

func TestParseDocumentZeroBoundariesWarns(t *testing.T) {
	d := doc("prose.pdf", "nothing here resembles", "an auction record")

	report := &RunReport{}
	records := ParseDocument(d, segment.DefaultRules(), report)

	if len(records) != 0 {
		t.Fatalf("got %d records, want 0", len(records))
	}
	if len(report.Warnings) != 1 || report.Warnings[0].Kind != types.WarnSegmentation {
		t.Fatalf("want one segmentation warning, got %v", report.Warnings)
	}
	if report.Warnings[0].SourcePath != "prose.pdf" {
		t.Errorf("warning keyed to %q", report.Warnings[0].SourcePath)
	}
}

func TestParseDocumentCountsMissingFields(t *testing.T) {
	d := doc("sale.pdf",
		"Lot 1",
		"Ann Artist",
		"Title One",
		"Lot 2",
		"Bea Artist",
		"Title Two",
	)

	report := &RunReport{}
	records := ParseDocument(d, segment.DefaultRules(), report)

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if got := report.MissingByField["medium"]; got != 2 {
		t.Errorf("missing medium count = %d, want 2", got)
	}
	if got := report.MissingByField["sold_for"]; got != 2 {
		t.Errorf("missing sold_for count = %d, want 2", got)
	}
	// The lot heading supplies the lot number, so it must not be counted.
	if got := report.MissingByField["lot_number"]; got != 0 {
		t.Errorf("missing lot_number count = %d, want 0", got)
	}
}

func TestOrderAcrossDocuments(t *testing.T) {
	docs := []textract.Document{
		doc("a.pdf", "Lot 1", "Ann Artist", "Title A1", "Lot 2", "Ann Artist", "Title A2"),
		doc("b.pdf", "Lot 1", "Bea Artist", "Title B1"),
		doc("c.pdf", "Lot 1", "Cal Artist", "Title C1"),
	}

	report := &RunReport{}
	table := assemble.New()
	for _, d := range docs {
		for _, r := range ParseDocument(d, segment.DefaultRules(), report) {
			require.NoError(t, table.Append(r))
		}
	}

	var sources []string
	for _, r := range table.Records() {
		sources = append(sources, r.SourcePath)
	}
	assert.Equal(t, []string{"a.pdf", "a.pdf", "b.pdf", "c.pdf"}, sources)

	titles := []string{"A1", "A2", "B1", "C1"}
	for i, r := range table.Records() {
		assert.Equal(t, "Title "+titles[i], "Title "+r.Fields["title"], "row %d", i)
	}
}

func TestRunEmptyInputDirWritesHeaderOnlyTable(t *testing.T) {
	inputDir := t.TempDir()
	outPath := filepath.Join(t.TempDir(), "out.csv")

	cfg := types.PipelineConfig{
		InputDir: inputDir,
		Output:   types.OutputConfig{Path: outPath},
	}

	var out bytes.Buffer
	report, err := Run(cfg, &out)
	require.NoError(t, err)
	assert.Equal(t, 0, report.RecordsParsed)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, types.Schema, rows[0])
}

func TestRunMissingInputDirFails(t *testing.T) {
	cfg := types.PipelineConfig{
		InputDir: filepath.Join(t.TempDir(), "does-not-exist"),
		Output:   types.OutputConfig{Path: filepath.Join(t.TempDir(), "out.csv")},
	}

	var out bytes.Buffer
	_, err := Run(cfg, &out)
	assert.Error(t, err)
}

func TestRunUnreadablePDFIsSkippedNotFatal(t *testing.T) {
	inputDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "broken.pdf"), []byte("not a pdf"), 0o644))
	outPath := filepath.Join(t.TempDir(), "out.csv")

	cfg := types.PipelineConfig{
		InputDir: inputDir,
		Output:   types.OutputConfig{Path: outPath},
	}

	var out bytes.Buffer
	report, err := Run(cfg, &out)
	require.NoError(t, err)

	assert.Equal(t, 1, report.DocumentsSkipped)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, types.WarnDocumentRead, report.Warnings[0].Kind)
	assert.True(t, strings.HasSuffix(report.Warnings[0].SourcePath, "broken.pdf"))

	// The table is still written.
	_, err = os.Stat(outPath)
	assert.NoError(t, err)
}

func TestRunReportSummary(t *testing.T) {
	report := &RunReport{
		DocumentsProcessed: 2,
		DocumentsSkipped:   1,
		RecordsParsed:      5,
	}
	report.warn(types.Warning{Kind: types.WarnFieldExtraction, Field: "medium", SourcePath: "a.pdf"})
	report.warn(types.Warning{Kind: types.WarnFieldExtraction, Field: "medium", SourcePath: "a.pdf"})
	report.warn(types.Warning{Kind: types.WarnSegmentation, SourcePath: "b.pdf", Detail: "no record boundary in 4 lines"})

	var buf bytes.Buffer
	report.Summary(&buf)

	out := buf.String()
	assert.Contains(t, out, "2 documents processed, 1 skipped, 5 records")
	assert.Contains(t, out, "medium")
	assert.Contains(t, out, "b.pdf")
}
