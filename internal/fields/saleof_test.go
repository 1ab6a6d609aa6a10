// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fields

import (
	"testing"

	"github.com/chdonahue/art-valuation/pkg/types"
)

func TestParseSaleOf(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantOK     bool
		wantHouse  string
		wantDate   string
		wantLot    string
		wantOnline bool
	}{
		{
			name:      "standard reference",
			in:        "Christie's New York: Tuesday, May 17, 2022 [Lot 14]",
			wantOK:    true,
			wantHouse: "Christie's New York",
			wantDate:  "Tuesday, May 17, 2022",
			wantLot:   "14",
		},
		{
			name:       "online sale",
			in:         "Sotheby's: Monday, March 1, 2021 [Lot 7 B] Online auction",
			wantOK:     true,
			wantHouse:  "Sotheby's",
			wantDate:   "Monday, March 1, 2021",
			wantLot:    "7 B",
			wantOnline: true,
		},
		{
			name:   "no lot bracket",
			in:     "Phillips: Friday, June 3, 2022",
			wantOK: false,
		},
		{
			name:   "empty",
			in:     "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details, ok := parseSaleOf(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("parseSaleOf(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if details.house != tt.wantHouse {
				t.Errorf("house = %q, want %q", details.house, tt.wantHouse)
			}
			if details.date != tt.wantDate {
				t.Errorf("date = %q, want %q", details.date, tt.wantDate)
			}
			if details.lot != tt.wantLot {
				t.Errorf("lot = %q, want %q", details.lot, tt.wantLot)
			}
			if details.online != tt.wantOnline {
				t.Errorf("online = %v, want %v", details.online, tt.wantOnline)
			}
		})
	}
}

func TestSaleOfFieldsInParse(t *testing.T) {
	res := Parse([]string{
		"Ann Artist",
		"Title Work",
		"Sale of Sotheby's: Monday, March 1, 2021 [Lot 7] Online only",
	})

	if got := res.Fields["auction_house"]; got != "Sotheby's" {
		t.Errorf("auction_house = %q, want %q", got, "Sotheby's")
	}
	if got := res.Fields["sale_date"]; got != "2021-03-01" {
		t.Errorf("sale_date = %q, want %q", got, "2021-03-01")
	}
	if got := res.Fields["lot_number"]; got != "7" {
		t.Errorf("lot_number = %q, want %q", got, "7")
	}
	if got := res.Fields["is_online"]; got != "true" {
		t.Errorf("is_online = %q, want %q", got, "true")
	}
}

func TestLotNumberFallsBackToHeading(t *testing.T) {
	res := Parse([]string{
		"Lot 31",
		"Ann Artist",
		"Title Work",
	})

	if got := res.Fields["lot_number"]; got != "31" {
		t.Errorf("lot_number = %q, want %q", got, "31")
	}
	if got := res.Fields["auction_house"]; got != types.Missing {
		t.Errorf("auction_house = %q, want missing marker", got)
	}
}

func TestMalformedSaleOfKeepsOtherFields(t *testing.T) {
	res := Parse([]string{
		"Ann Artist",
		"Title Work",
		"Sale of somewhere, sometime",
		"Sold For $900",
	})

	if got := res.Fields["auction_house"]; got != types.Missing {
		t.Errorf("auction_house = %q, want missing marker", got)
	}
	if got := res.Fields["sold_for"]; got != "900" {
		t.Errorf("sold_for = %q, want %q", got, "900")
	}

	found := false
	for _, note := range res.Notes {
		if note.Field == "auction_house" {
			found = true
		}
	}
	if !found {
		t.Error("expected a note for the malformed Sale of value")
	}
}
