// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fields converts one record chunk into the fixed field
// schema. Each field is bound to its own extraction rule, evaluated
// independently against the chunk, so a malformed or missing field
// never disturbs the others.
package fields

import (
	"strings"

	"github.com/chdonahue/art-valuation/pkg/types"
)

// Labels are the field labels of the artnet document family, in the
// order they appear within a record.
var Labels = []string{
	"Title",
	"Description",
	"Medium",
	"Year of Work",
	"Size",
	"Sale of",
	"Estimate",
	"Sold For",
	"Misc.",
}

// LabelLine returns the label a trimmed line opens with, or "" when
// the line is not a label line. A label may be followed directly by
// its value, with or without a colon.
func LabelLine(trimmed string) string {
	for _, label := range Labels {
		if !strings.HasPrefix(trimmed, label) {
			continue
		}
		rest := trimmed[len(label):]
		if rest == "" || strings.HasPrefix(rest, ":") || strings.HasPrefix(rest, " ") {
			return label
		}
	}
	return ""
}

// RuleKind tags an extraction strategy.
type RuleKind string

const (
	// RuleLabel anchors on a known label and captures until the next
	// label line or chunk end.
	RuleLabel RuleKind = "label"

	// RulePositional takes a field from its fixed position in the chunk.
	RulePositional RuleKind = "positional"

	// RulePattern derives a field from the shape of a labeled capture
	// (currency range, sale reference, year).
	RulePattern RuleKind = "pattern"

	// RuleFreeText captures everything no other rule claimed.
	RuleFreeText RuleKind = "freetext"
)

// Rule binds one schema field to its extraction strategy. The rule
// table is data: extending the schema or retargeting a label is a
// table edit, not new parser logic.
type Rule struct {
	// Field is the schema column the rule fills.
	Field string

	// Kind selects the strategy.
	Kind RuleKind

	// Label is the anchor for label rules and the source capture for
	// pattern rules.
	Label string

	// Part selects which component of a pattern capture fills the field
	// (e.g. "low"/"high" of an estimate range).
	Part string

	// Normalize names the normalizer applied to the raw value:
	// "text", "currency", "year" or "saledate". Empty means "text".
	Normalize string
}

// artnetRules is the rule table for artnet-style auction listings.
// Ordering matches types.Schema.
var artnetRules = []Rule{
	{Field: "artist", Kind: RulePositional},
	{Field: "title", Kind: RuleLabel, Label: "Title"},
	{Field: "medium", Kind: RuleLabel, Label: "Medium"},
	{Field: "dimensions", Kind: RuleLabel, Label: "Size"},
	{Field: "date", Kind: RuleLabel, Label: "Year of Work", Normalize: "year"},
	{Field: "description", Kind: RuleFreeText, Label: "Description"},
	{Field: "estimate_low", Kind: RulePattern, Label: "Estimate", Part: "low", Normalize: "currency"},
	{Field: "estimate_high", Kind: RulePattern, Label: "Estimate", Part: "high", Normalize: "currency"},
	{Field: "sold_for", Kind: RuleLabel, Label: "Sold For", Normalize: "currency"},
	{Field: "auction_house", Kind: RulePattern, Label: "Sale of", Part: "house"},
	{Field: "sale_date", Kind: RulePattern, Label: "Sale of", Part: "date", Normalize: "saledate"},
	{Field: "lot_number", Kind: RulePattern, Label: "Sale of", Part: "lot"},
	{Field: "is_online", Kind: RulePattern, Label: "Sale of", Part: "online"},
}

// Note records a per-field condition worth surfacing: a rule that
// found no match, or a value kept literal because it could not be
// normalized cleanly.
type Note struct {
	Field  string
	Detail string
}

// Result is the outcome of parsing one chunk. Fields always carries
// exactly the schema key set.
type Result struct {
	Fields map[string]string
	Notes  []Note
}

// Parse extracts the fixed field set from one chunk's lines. It never
// fails: a field whose rule finds no match gets types.Missing and a
// note. Parsing is stateless, so the same chunk always yields the
// same result.
func Parse(chunkLines []string) Result {
	captures, unclaimed := captureLabels(chunkLines)

	res := Result{Fields: make(map[string]string, len(types.Schema))}
	for _, rule := range artnetRules {
		value, note := applyRule(rule, chunkLines, captures, unclaimed)
		res.Fields[rule.Field] = value
		if note != "" {
			res.Notes = append(res.Notes, Note{Field: rule.Field, Detail: note})
		}
	}
	return res
}

// applyRule evaluates one rule. It returns the normalized value (or
// types.Missing) and an optional note.
func applyRule(rule Rule, lines []string, captures map[string]string, unclaimed []string) (string, string) {
	switch rule.Kind {
	case RulePositional:
		return positionalArtist(lines)
	case RuleLabel:
		raw, ok := captures[rule.Label]
		if !ok {
			return types.Missing, "no " + rule.Label + " label in chunk"
		}
		return normalize(rule.Normalize, raw)
	case RulePattern:
		return patternField(rule, lines, captures)
	case RuleFreeText:
		return freeText(rule, lines, captures, unclaimed)
	}
	return types.Missing, "unknown rule kind " + string(rule.Kind)
}

// captureLabels walks the chunk once and captures the value of every
// label present: the remainder of the label line plus any continuation
// lines up to the next label line, joined with single spaces. Each
// label is captured at its first occurrence only. Lines claimed by no
// label, including any repeated label line, come back in the unclaimed
// slice so the free-text rule can keep them.
func captureLabels(lines []string) (map[string]string, []string) {
	captures := make(map[string]string)
	var unclaimed []string
	current := ""

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if label := LabelLine(trimmed); label != "" {
			value := strings.TrimSpace(trimmed[len(label):])
			value = strings.TrimSpace(strings.TrimPrefix(value, ":"))
			if _, seen := captures[label]; seen {
				unclaimed = append(unclaimed, trimmed)
				current = ""
				continue
			}
			captures[label] = value
			current = label
			continue
		}

		// Continuation of the open label's wrapped value.
		if current != "" {
			if captures[current] == "" {
				captures[current] = trimmed
			} else {
				captures[current] += " " + trimmed
			}
			continue
		}

		unclaimed = append(unclaimed, trimmed)
	}

	return captures, unclaimed
}

// positionalArtist finds the artist heading: the non-label line
// immediately before the Title label, or failing that the first
// non-label line that is not a lot heading.
func positionalArtist(lines []string) (string, string) {
	prev := ""
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if LabelLine(trimmed) == "Title" {
			if prev != "" {
				return CollapseWhitespace(prev), ""
			}
			break
		}
		if LabelLine(trimmed) == "" && !lotHeadingRe.MatchString(trimmed) {
			prev = trimmed
		} else {
			prev = ""
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || LabelLine(trimmed) != "" || lotHeadingRe.MatchString(trimmed) {
			continue
		}
		return CollapseWhitespace(trimmed), ""
	}
	return types.Missing, "no artist heading in chunk"
}

// patternField evaluates the shape-based rules over labeled captures.
func patternField(rule Rule, lines []string, captures map[string]string) (string, string) {
	switch rule.Label {
	case "Estimate":
		raw, ok := captures["Estimate"]
		if !ok {
			return types.Missing, "no Estimate label in chunk"
		}
		low, high := estimateBounds(raw)
		if rule.Part == "high" {
			if high == "" {
				return types.Missing, "estimate has no upper bound"
			}
			return normalize("currency", high)
		}
		if low == "" {
			return types.Missing, "no amount in estimate"
		}
		return normalize("currency", low)

	case "Sale of":
		return saleOfField(rule.Part, lines, captures)
	}
	return types.Missing, "no pattern for " + rule.Label
}

// freeText assembles the description: the Description capture, the
// Misc. capture, and every unclaimed line left over once the artist
// heading and lot heading are set aside for their own rules. No line
// of the chunk is dropped.
func freeText(rule Rule, lines []string, captures map[string]string, unclaimed []string) (string, string) {
	parts := make([]string, 0, 2+len(unclaimed))
	if v := captures[rule.Label]; v != "" {
		parts = append(parts, v)
	}
	if v := captures["Misc."]; v != "" {
		parts = append(parts, v)
	}

	artist, _ := positionalArtist(lines)
	artistSeen := false
	for _, line := range unclaimed {
		if lotHeadingRe.MatchString(line) {
			continue
		}
		if !artistSeen && CollapseWhitespace(line) == artist {
			artistSeen = true
			continue
		}
		parts = append(parts, line)
	}

	if len(parts) == 0 {
		return types.Missing, "no " + rule.Label + " label in chunk"
	}
	return CollapseWhitespace(strings.Join(parts, " ")), ""
}
