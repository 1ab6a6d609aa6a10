// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data and configuration types shared across
// pipeline stages.
package types

// ExtractionBackend identifies the PDF text-extraction tool.
type ExtractionBackend string

const (
	BackendPDFLib    ExtractionBackend = "pdflib"
	BackendPdftotext ExtractionBackend = "pdftotext"
)

// ConversionConfig holds settings for the PDF text-extraction stage.
type ConversionConfig struct {
	// Backend selects the extraction tool: pdflib or pdftotext.
	Backend ExtractionBackend `json:"backend" yaml:"backend"`

	// Fallback enables retrying a failed document with pdftotext when
	// the pdflib backend cannot read it.
	Fallback bool `json:"fallback" yaml:"fallback"`

	// TextDir is the directory where per-document text files are written
	// by the convert subcommand.
	TextDir string `json:"text_dir" yaml:"text_dir"`
}

// ParsingConfig holds settings for segmentation and field extraction.
type ParsingConfig struct {
	// RulesFile is an optional YAML file overriding the built-in
	// boundary rule table for a different document family.
	RulesFile string `json:"rules_file,omitempty" yaml:"rules_file,omitempty"`

	// RecordsDir is the directory where per-document record YAML files
	// are written by the parse subcommand.
	RecordsDir string `json:"records_dir" yaml:"records_dir"`
}

// OutputConfig holds settings for the assembled table.
type OutputConfig struct {
	// Path is the output CSV file.
	Path string `json:"path" yaml:"path"`

	// ReportPath is an optional YAML file for the end-of-run report.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`
}

// CatalogConfig holds settings for the SQLite record catalog.
type CatalogConfig struct {
	// Dir is the directory containing the catalog database (catalog.db).
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations for one run.
type PipelineConfig struct {
	// InputDir is the directory of PDF documents to process.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	Conversion ConversionConfig `json:"conversion" yaml:"conversion"`
	Parsing    ParsingConfig    `json:"parsing" yaml:"parsing"`
	Output     OutputConfig     `json:"output" yaml:"output"`
	Catalog    CatalogConfig    `json:"catalog" yaml:"catalog"`
}
