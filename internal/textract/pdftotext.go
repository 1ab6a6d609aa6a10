// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textract

import (
	"fmt"
	"os/exec"
)

// PdftotextExtractor shells out to the poppler pdftotext tool. The
// -layout flag keeps column positions, which the boundary heuristics
// rely on for multi-column listings.
type PdftotextExtractor struct{}

// Extract runs pdftotext and returns its stdout. Pages are separated
// by form feeds, pdftotext's native page delimiter.
func (PdftotextExtractor) Extract(pdfPath string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", pdfPath, "-")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext %s: %w", pdfPath, err)
	}
	if len(out) == 0 {
		return "", fmt.Errorf("pdftotext produced empty output for %s", pdfPath)
	}
	return string(out), nil
}
