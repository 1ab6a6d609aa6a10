// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fields

import (
	"regexp"
	"strings"

	"github.com/chdonahue/art-valuation/pkg/types"
)

// saleOfRe matches the "Sale of" value shape:
// "Christie's New York: Tuesday, May 17, 2022 [Lot 14 B] Online sale".
var saleOfRe = regexp.MustCompile(`^(.*?):\s*(.*?)\s*\[(Lot\s*[0-9A-Za-z\s]+)\](.*)$`)

var (
	lotPrefixRe = regexp.MustCompile(`Lot\s*`)
	onlineRe    = regexp.MustCompile(`(?i)online`)
)

// saleDetails are the components of a parsed "Sale of" value.
type saleDetails struct {
	house  string
	date   string
	lot    string
	online bool
}

// parseSaleOf decomposes a "Sale of" capture. It returns false when
// the capture does not carry the house/date/[Lot ...] shape.
func parseSaleOf(value string) (saleDetails, bool) {
	m := saleOfRe.FindStringSubmatch(CollapseWhitespace(value))
	if m == nil {
		return saleDetails{}, false
	}
	return saleDetails{
		house:  strings.TrimSpace(m[1]),
		date:   strings.TrimSpace(m[2]),
		lot:    strings.TrimSpace(lotPrefixRe.ReplaceAllString(m[3], "")),
		online: onlineRe.MatchString(m[4]),
	}, true
}

// saleOfField fills one of the fields derived from the "Sale of"
// capture. When the capture is absent or malformed, the lot number
// still falls back to a leading "Lot <n>" heading line; the other
// derived fields go missing.
func saleOfField(part string, lines []string, captures map[string]string) (string, string) {
	raw, ok := captures["Sale of"]
	details, parsed := saleDetails{}, false
	if ok {
		details, parsed = parseSaleOf(raw)
	}

	switch part {
	case "house":
		if !parsed {
			return types.Missing, saleOfNote(ok)
		}
		return details.house, ""
	case "date":
		if !parsed {
			return types.Missing, saleOfNote(ok)
		}
		return normalize("saledate", details.date)
	case "lot":
		if parsed {
			return details.lot, ""
		}
		if lot := headingLot(lines); lot != "" {
			return lot, ""
		}
		return types.Missing, saleOfNote(ok)
	case "online":
		if !parsed {
			return types.Missing, saleOfNote(ok)
		}
		if details.online {
			return "true", ""
		}
		return "false", ""
	}
	return types.Missing, "unknown sale-of part " + part
}

func saleOfNote(labelPresent bool) string {
	if labelPresent {
		return "Sale of value does not match house/date/[Lot] shape"
	}
	return "no Sale of label in chunk"
}

// headingLot returns the lot number from a leading "Lot <n>" heading
// line, or "" when the chunk has none.
func headingLot(lines []string) string {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if lotHeadingRe.MatchString(trimmed) {
			rest := strings.TrimSpace(lotPrefixRe.ReplaceAllString(trimmed, ""))
			if i := strings.IndexAny(rest, " \t"); i > 0 {
				rest = rest[:i]
			}
			return rest
		}
		return ""
	}
	return ""
}
