package quote

import (
	"testing"

	"stockinsight/internal/market"
)

func fp(v float64) *float64 { return &v }

func TestFormatMarketCap_UnitSelection(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{2_500_000_000_000, "$2.50T"},
		{1_000_000_000_000, "$1.00T"},
		{999_999_999_999, "$1000.00B"}, // rounds within the unit, does not jump early
		{150_000_000_000, "$150.00B"},
		{1_000_000_000, "$1.00B"},
		{999_999_999, "$1000.00M"},
		{1_000_000, "$1.00M"},
		{999_999, "$999,999"},
		{12_345, "$12,345"},
	}
	for _, tc := range cases {
		if got := FormatMarketCap(tc.in); got != tc.want {
			t.Fatalf("FormatMarketCap(%.0f) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMarketCapDisplay_AbsentIsNA(t *testing.T) {
	s := Snapshot{}
	if got := s.MarketCapDisplay(); got != NotAvailable {
		t.Fatalf("nil cap: got %q", got)
	}
	s.MarketCap = fp(0)
	if got := s.MarketCapDisplay(); got != NotAvailable {
		t.Fatalf("zero cap: got %q", got)
	}
}

func TestBuild_CompanyNameFallbackChain(t *testing.T) {
	cases := []struct {
		profile market.Profile
		want    string
	}{
		{market.Profile{LongName: "Apple Inc.", ShortName: "Apple"}, "Apple Inc."},
		{market.Profile{ShortName: "Apple"}, "Apple"},
		{market.Profile{}, "AAPL"},
	}
	for _, tc := range cases {
		snap := Build("AAPL", tc.profile, 10)
		if snap.CompanyName != tc.want {
			t.Fatalf("profile %+v: name %q, want %q", tc.profile, snap.CompanyName, tc.want)
		}
	}
}

func TestBuild_RoundsPriceAndChange(t *testing.T) {
	snap := Build("AAPL", market.Profile{Change: fp(1.23456)}, 187.90500001)
	if snap.Price != 187.91 {
		t.Fatalf("price = %v", snap.Price)
	}
	if snap.DayChange != 1.23 {
		t.Fatalf("day change = %v", snap.DayChange)
	}
}

func TestBuild_ChangePercentIsFractionScaledToPercent(t *testing.T) {
	snap := Build("AAPL", market.Profile{ChangePercent: fp(0.012345)}, 100)
	if snap.DayChangePercent != 1.23 {
		t.Fatalf("day change percent = %v, want 1.23", snap.DayChangePercent)
	}
	snap = Build("AAPL", market.Profile{}, 100)
	if snap.DayChangePercent != 0 {
		t.Fatalf("absent change percent = %v, want 0", snap.DayChangePercent)
	}
}

func TestBuild_PERounding(t *testing.T) {
	snap := Build("AAPL", market.Profile{TrailingPE: fp(28.9173)}, 100)
	if snap.TrailingPE == nil || *snap.TrailingPE != 28.92 {
		t.Fatalf("pe = %v", snap.TrailingPE)
	}
	if got := snap.PEDisplay(); got != 28.92 {
		t.Fatalf("pe display = %v", got)
	}
}

func TestPEDisplay_AbsentIsNA(t *testing.T) {
	snap := Build("AAPL", market.Profile{}, 100)
	if got := snap.PEDisplay(); got != NotAvailable {
		t.Fatalf("pe display = %v, want %q", got, NotAvailable)
	}
}

func TestBuild_Defaults(t *testing.T) {
	snap := Build("AAPL", market.Profile{}, 100)
	if snap.Currency != "USD" {
		t.Fatalf("currency = %q", snap.Currency)
	}
	if snap.SectorDisplay() != NotAvailable || snap.IndustryDisplay() != NotAvailable {
		t.Fatalf("sector/industry = %q/%q", snap.SectorDisplay(), snap.IndustryDisplay())
	}
}

func TestBuild_PassesThroughClassification(t *testing.T) {
	snap := Build("AAPL", market.Profile{Currency: "EUR", Sector: "Technology", Industry: "Consumer Electronics"}, 100)
	if snap.Currency != "EUR" || snap.SectorDisplay() != "Technology" || snap.IndustryDisplay() != "Consumer Electronics" {
		t.Fatalf("unexpected: %+v", snap)
	}
}
