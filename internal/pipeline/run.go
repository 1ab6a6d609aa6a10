// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates one batch run: a directory of PDFs in,
// one rectangular CSV table and a run report out.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"sort"

	"go.yaml.in/yaml/v3"

	"github.com/chdonahue/art-valuation/internal/assemble"
	"github.com/chdonahue/art-valuation/internal/fields"
	"github.com/chdonahue/art-valuation/internal/segment"
	"github.com/chdonahue/art-valuation/internal/textract"
	"github.com/chdonahue/art-valuation/pkg/types"
)

// RunReport aggregates the non-fatal conditions of one run. The run
// always completes and writes whatever rows were produced; the report
// is what lets the operator tighten the extraction rules afterwards.
type RunReport struct {
	DocumentsProcessed int             `yaml:"documents_processed"`
	DocumentsSkipped   int             `yaml:"documents_skipped"`
	RecordsParsed      int             `yaml:"records_parsed"`
	MissingByField     map[string]int  `yaml:"missing_by_field,omitempty"`
	Warnings           []types.Warning `yaml:"warnings,omitempty"`
}

func (r *RunReport) warn(w types.Warning) {
	r.Warnings = append(r.Warnings, w)
	if w.Kind == types.WarnFieldExtraction && w.Field != "" {
		if r.MissingByField == nil {
			r.MissingByField = make(map[string]int)
		}
		r.MissingByField[w.Field]++
	}
}

// Summary prints the end-of-run report: document and record counts,
// then missing-field occurrences per field in schema order.
func (r *RunReport) Summary(w io.Writer) {
	fmt.Fprintf(w, "\nRun summary: %d documents processed, %d skipped, %d records\n",
		r.DocumentsProcessed, r.DocumentsSkipped, r.RecordsParsed)

	if len(r.MissingByField) > 0 {
		fmt.Fprintln(w, "Missing or unnormalized fields:")
		names := make([]string, 0, len(r.MissingByField))
		for name := range r.MissingByField {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "  %-14s %d\n", name, r.MissingByField[name])
		}
	}

	for _, warn := range r.Warnings {
		if warn.Kind == types.WarnFieldExtraction {
			continue
		}
		fmt.Fprintf(w, "warning: %s: %s\n", warn.SourcePath, warn.Detail)
	}
}

// WriteYAML dumps the full report, including per-field warnings, to a
// YAML file for later inspection.
func (r *RunReport) WriteYAML(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Rules returns the boundary rule table from cfg, or the built-in
// artnet table when no override file is configured.
func Rules(cfg types.ParsingConfig) (*segment.RuleTable, error) {
	if cfg.RulesFile == "" {
		return segment.DefaultRules(), nil
	}
	return segment.LoadRules(cfg.RulesFile)
}

// ParseDocument segments one document and parses every chunk into a
// record. It never fails: segmentation and field conditions surface as
// warnings on the report.
func ParseDocument(doc textract.Document, rules *segment.RuleTable, report *RunReport) []types.Record {
	chunks := segment.Segment(doc.Lines, rules)
	if len(chunks) == 0 {
		report.warn(types.Warning{
			Kind:       types.WarnSegmentation,
			SourcePath: doc.SourcePath,
			Detail:     fmt.Sprintf("no record boundary in %d lines", len(doc.Lines)),
		})
		return nil
	}

	records := make([]types.Record, 0, len(chunks))
	for _, chunk := range chunks {
		if chunk.IsEmpty() {
			report.warn(types.Warning{
				Kind:       types.WarnSegmentation,
				SourcePath: doc.SourcePath,
				Detail:     fmt.Sprintf("empty chunk at lines %d-%d", chunk.StartLine, chunk.EndLine),
			})
			continue
		}

		res := fields.Parse(chunk.Lines)
		rec := types.Record{
			SourcePath: doc.SourcePath,
			Index:      len(records),
			Fields:     res.Fields,
		}
		for _, note := range res.Notes {
			report.warn(types.Warning{
				Kind:       types.WarnFieldExtraction,
				SourcePath: doc.SourcePath,
				Record:     rec.Index,
				Field:      note.Field,
				Detail:     note.Detail,
			})
		}
		records = append(records, rec)
	}
	return records
}

// Run executes the whole pipeline: list PDFs, extract text per
// document, segment, parse, assemble, write the CSV. Per-document
// failures are reported and skipped; only environment failures (input
// directory missing, output unwritable, internal schema violation)
// return an error.
func Run(cfg types.PipelineConfig, out io.Writer) (*RunReport, error) {
	rules, err := Rules(cfg.Parsing)
	if err != nil {
		return nil, err
	}

	extractor, err := textract.New(cfg.Conversion)
	if err != nil {
		return nil, err
	}

	paths, err := textract.ListPDFs(cfg.InputDir)
	if err != nil {
		return nil, err
	}

	report := &RunReport{}
	table := assemble.New()

	for _, path := range paths {
		doc, err := textract.ExtractDocument(extractor, path)
		if err != nil {
			fmt.Fprintf(out, "skipped: %s (%v)\n", path, err)
			report.DocumentsSkipped++
			report.warn(types.Warning{
				Kind:       types.WarnDocumentRead,
				SourcePath: path,
				Detail:     err.Error(),
			})
			continue
		}

		records := ParseDocument(doc, rules, report)
		for _, rec := range records {
			if err := table.Append(rec); err != nil {
				return nil, err
			}
		}

		fmt.Fprintf(out, "parsed:  %s (%d records)\n", path, len(records))
		report.DocumentsProcessed++
		report.RecordsParsed += len(records)
	}

	if err := table.WriteCSVFile(cfg.Output.Path); err != nil {
		return nil, err
	}

	if cfg.Output.ReportPath != "" {
		if err := report.WriteYAML(cfg.Output.ReportPath); err != nil {
			return nil, err
		}
	}

	report.Summary(out)
	return report, nil
}
