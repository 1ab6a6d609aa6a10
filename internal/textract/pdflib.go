// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textract

import (
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFLibExtractor reads PDF text in-process with the ledongthuc/pdf
// library. Pages that cannot be decoded are skipped rather than
// failing the whole document.
type PDFLibExtractor struct{}

// Extract returns the plain text of all pages, separated by form feeds.
func (PDFLibExtractor) Extract(pdfPath string) (string, error) {
	f, reader, err := pdflib.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\f")
		}
		buf.WriteString(text)
	}

	if buf.Len() == 0 {
		return "", fmt.Errorf("no extractable text in %s", pdfPath)
	}
	return buf.String(), nil
}
