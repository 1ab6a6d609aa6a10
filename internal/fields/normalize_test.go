// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fields

import "testing"

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Oil   on\ncanvas ", "Oil on canvas"},
		{"already clean", "already clean"},
		{"\t tab\tand\t\tnewline \n", "tab and newline"},
		{"Signed, dated; (verso)", "Signed, dated; (verso)"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := CollapseWhitespace(tt.in); got != tt.want {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeCurrency(t *testing.T) {
	tests := []struct {
		in       string
		want     string
		wantNote bool
	}{
		{"$12,500", "12500", false},
		{"12,000 USD", "12000", false},
		{"€9,800.50", "9800.50", false},
		{"1200", "1200", false},
		{"Not Sold", "Not Sold", true},
		{"Withdrawn", "Withdrawn", true},
	}

	for _, tt := range tests {
		got, note := normalizeCurrency(tt.in)
		if got != tt.want {
			t.Errorf("normalizeCurrency(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if (note != "") != tt.wantNote {
			t.Errorf("normalizeCurrency(%q) note = %q, wantNote %v", tt.in, note, tt.wantNote)
		}
	}
}

func TestNormalizeYear(t *testing.T) {
	tests := []struct {
		in       string
		want     string
		wantNote bool
	}{
		{"1938", "1938", false},
		{"ca. 1920", "1920", false},
		{"circa 1890", "1890", false},
		{"1950s", "1950s", true},
		{"1900-1910", "1900-1910", true},
		{"unknown", "unknown", true},
	}

	for _, tt := range tests {
		got, note := normalizeYear(tt.in)
		if got != tt.want {
			t.Errorf("normalizeYear(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if (note != "") != tt.wantNote {
			t.Errorf("normalizeYear(%q) note = %q, wantNote %v", tt.in, note, tt.wantNote)
		}
	}
}

func TestNormalizeSaleDate(t *testing.T) {
	tests := []struct {
		in       string
		want     string
		wantNote bool
	}{
		{"Tuesday, May 17, 2022", "2022-05-17", false},
		{"Wednesday, January 5, 2000", "2000-01-05", false},
		{"May 2022", "May 2022", true},
		{"17/05/2022", "17/05/2022", true},
	}

	for _, tt := range tests {
		got, note := normalizeSaleDate(tt.in)
		if got != tt.want {
			t.Errorf("normalizeSaleDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if (note != "") != tt.wantNote {
			t.Errorf("normalizeSaleDate(%q) note = %q, wantNote %v", tt.in, note, tt.wantNote)
		}
	}
}

func TestEstimateBounds(t *testing.T) {
	tests := []struct {
		in       string
		wantLow  string
		wantHigh string
	}{
		{"12,000 - 18,000 USD", "12,000", "18,000 USD"},
		{"$10,000–$15,000", "$10,000", "$15,000"},
		{"5,000 USD", "5,000 USD", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		low, high := estimateBounds(tt.in)
		if low != tt.wantLow || high != tt.wantHigh {
			t.Errorf("estimateBounds(%q) = (%q, %q), want (%q, %q)",
				tt.in, low, high, tt.wantLow, tt.wantHigh)
		}
	}
}
