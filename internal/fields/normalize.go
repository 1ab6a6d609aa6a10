// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fields

import (
	"regexp"
	"strings"
	"time"

	"github.com/chdonahue/art-valuation/pkg/types"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	lotHeadingRe = regexp.MustCompile(`^Lot\s+[0-9][0-9A-Za-z-]*\b`)
	amountRe     = regexp.MustCompile(`[0-9][0-9,]*(?:\.[0-9]+)?`)
	yearRe       = regexp.MustCompile(`^(?i:ca\.?|c\.|circa)?\s*([0-9]{4})$`)
	rangeSplitRe = regexp.MustCompile(`\s*[-–—]\s*`)
)

// CollapseWhitespace trims the value and collapses internal whitespace
// runs, including line breaks from wrapped values, to single spaces.
// Casing and punctuation are preserved; the output stays human-readable.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// normalize applies the named normalizer to a raw capture. The second
// return value is a note when the value was kept literal because it
// did not normalize cleanly, or when the capture was empty.
func normalize(name, raw string) (string, string) {
	value := CollapseWhitespace(raw)
	if value == "" {
		return types.Missing, "label present but value empty"
	}

	switch name {
	case "", "text":
		return value, ""
	case "currency":
		return normalizeCurrency(value)
	case "year":
		return normalizeYear(value)
	case "saledate":
		return normalizeSaleDate(value)
	}
	return value, "unknown normalizer " + name
}

// normalizeCurrency reduces a money literal to a bare decimal: no
// symbol, no thousands separators ("$12,500" becomes "12500").
// Literals with no amount, such as "Not Sold", are kept verbatim with
// a note so they stay inspectable.
func normalizeCurrency(value string) (string, string) {
	m := amountRe.FindString(value)
	if m == "" {
		return value, "no amount in " + value
	}
	return strings.ReplaceAll(m, ",", ""), ""
}

// normalizeYear reduces a year-of-work literal to "YYYY" when it is a
// bare four-digit year, with an optional circa prefix. Anything else
// ("1950s", "ca. 1900-1910") is kept verbatim with a note.
func normalizeYear(value string) (string, string) {
	m := yearRe.FindStringSubmatch(value)
	if m == nil {
		return value, "year kept literal: " + value
	}
	return m[1], ""
}

// saleDateLayout is how artnet renders sale dates ("Tuesday, May 17, 2022").
const saleDateLayout = "Monday, January 2, 2006"

// normalizeSaleDate converts a sale-date literal to ISO "YYYY-MM-DD"
// when it parses unambiguously, keeping the literal otherwise.
func normalizeSaleDate(value string) (string, string) {
	t, err := time.Parse(saleDateLayout, value)
	if err != nil {
		return value, "sale date kept literal: " + value
	}
	return t.Format("2006-01-02"), ""
}

// estimateBounds splits an estimate literal into its low and high
// bounds on a dash. A single amount fills only the low bound. Trailing
// currency codes stay attached to the parts; normalizeCurrency strips
// them.
func estimateBounds(raw string) (low, high string) {
	value := CollapseWhitespace(raw)
	if value == "" {
		return "", ""
	}
	parts := rangeSplitRe.Split(value, 2)
	low = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		high = strings.TrimSpace(parts[1])
	}
	return low, high
}
