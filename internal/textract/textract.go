// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textract turns PDF documents into ordered text lines with
// pluggable extraction backends.
package textract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chdonahue/art-valuation/pkg/types"
)

// Extractor produces the plain text of a PDF file. Different backends
// (pdflib, pdftotext) implement this interface.
type Extractor interface {
	// Extract reads the PDF at pdfPath and returns its text. Pages are
	// separated by form feeds.
	Extract(pdfPath string) (string, error)
}

// Document is one input file converted to an ordered line sequence.
type Document struct {
	// SourcePath is the path of the original PDF.
	SourcePath string

	// Lines is the extracted text split on newlines, in page order.
	Lines []string
}

// BatchResult holds the outcome of a batch extraction run.
type BatchResult struct {
	Extracted int
	Failed    int
}

// Total returns the total number of documents processed.
func (r BatchResult) Total() int {
	return r.Extracted + r.Failed
}

// HasFailures reports whether any documents failed extraction.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// New returns the extractor for the configured backend. With Fallback
// set, a pdflib failure on a document is retried with pdftotext.
func New(cfg types.ConversionConfig) (Extractor, error) {
	switch cfg.Backend {
	case types.BackendPDFLib, "":
		if cfg.Fallback {
			return fallbackExtractor{primary: PDFLibExtractor{}, secondary: PdftotextExtractor{}}, nil
		}
		return PDFLibExtractor{}, nil
	case types.BackendPdftotext:
		return PdftotextExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown extraction backend %q", cfg.Backend)
	}
}

// fallbackExtractor tries the primary backend and falls back to the
// secondary when the primary cannot read a document.
type fallbackExtractor struct {
	primary   Extractor
	secondary Extractor
}

func (f fallbackExtractor) Extract(pdfPath string) (string, error) {
	text, err := f.primary.Extract(pdfPath)
	if err == nil {
		return text, nil
	}
	text, ferr := f.secondary.Extract(pdfPath)
	if ferr != nil {
		return "", fmt.Errorf("%v (fallback: %w)", err, ferr)
	}
	return text, nil
}

// ListPDFs returns the PDF paths in dir in lexical order. The order is
// the traversal order of the whole run, so output rows stay traceable
// to their source files.
func ListPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// ExtractDocument runs the extractor on one file and splits the result
// into lines. Form feeds become line breaks so page boundaries never
// glue two lines together.
func ExtractDocument(e Extractor, pdfPath string) (Document, error) {
	text, err := e.Extract(pdfPath)
	if err != nil {
		return Document{}, fmt.Errorf("extracting text from %s: %w", pdfPath, err)
	}
	return Document{SourcePath: pdfPath, Lines: SplitLines(text)}, nil
}

// SplitLines splits extracted text into lines, treating form feeds as
// line breaks.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\f", "\n")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

// ExtractBatch converts every PDF in inputDir to a text file under
// textDir, printing per-file status to w and returning a summary.
// A failing document is reported and skipped; the batch continues.
func ExtractBatch(e Extractor, inputDir, textDir string, w io.Writer) (BatchResult, error) {
	paths, err := ListPDFs(inputDir)
	if err != nil {
		return BatchResult{}, err
	}

	if err := os.MkdirAll(textDir, 0o755); err != nil {
		return BatchResult{}, fmt.Errorf("creating text directory: %w", err)
	}

	var result BatchResult
	for _, p := range paths {
		base := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		outPath := filepath.Join(textDir, base+".txt")

		text, err := e.Extract(p)
		if err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", base, err)
			result.Failed++
			continue
		}

		if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", base, err)
			result.Failed++
			continue
		}

		fmt.Fprintf(w, "extracted: %s\n", base)
		result.Extracted++
	}

	fmt.Fprintf(w, "\nBatch summary: %d extracted, %d failed (total: %d)\n",
		result.Extracted, result.Failed, result.Total())
	return result, nil
}
