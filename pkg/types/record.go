// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Missing is the sentinel stored for a field whose extraction rule
// found no match. It renders as an empty cell in the output table.
const Missing = ""

// Schema lists the output columns in their fixed order. Every Record
// carries exactly this field set, so the table is always rectangular.
var Schema = []string{
	"artist",
	"title",
	"medium",
	"dimensions",
	"date",
	"description",
	"estimate_low",
	"estimate_high",
	"sold_for",
	"auction_house",
	"sale_date",
	"lot_number",
	"is_online",
}

// Record is one artwork's sale information parsed into the fixed field
// schema. Records are immutable once produced; SourcePath and Index
// trace a row back to its source document for QA.
type Record struct {
	// SourcePath is the path of the document the record came from.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// Index is the zero-based position of the record within its document.
	Index int `json:"index" yaml:"index"`

	// Fields maps schema column name to the normalized value, or
	// Missing when no extraction rule matched.
	Fields map[string]string `json:"fields" yaml:"fields"`
}

// Row projects the record onto the schema order. It returns false when
// the record does not carry exactly the schema field set; that is an
// internal defect, never a data condition.
func (r Record) Row() ([]string, bool) {
	if len(r.Fields) != len(Schema) {
		return nil, false
	}
	row := make([]string, len(Schema))
	for i, name := range Schema {
		v, ok := r.Fields[name]
		if !ok {
			return nil, false
		}
		row[i] = v
	}
	return row, true
}

// WarningKind classifies non-fatal conditions surfaced during a run.
type WarningKind string

const (
	// WarnDocumentRead marks a document whose text could not be extracted.
	WarnDocumentRead WarningKind = "document_read"

	// WarnSegmentation marks a document that yielded zero chunks or an
	// ambiguous boundary.
	WarnSegmentation WarningKind = "segmentation"

	// WarnFieldExtraction marks a field whose rule found no usable match
	// in a chunk.
	WarnFieldExtraction WarningKind = "field_extraction"
)

// Warning is a non-fatal condition keyed to its source location.
// Warnings are reported at the end of a run; they never abort it.
type Warning struct {
	Kind       WarningKind `json:"kind" yaml:"kind"`
	SourcePath string      `json:"source_path" yaml:"source_path"`
	Record     int         `json:"record" yaml:"record"`
	Field      string      `json:"field,omitempty" yaml:"field,omitempty"`
	Detail     string      `json:"detail" yaml:"detail"`
}
