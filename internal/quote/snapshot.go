package quote

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"stockinsight/internal/market"
)

// NotAvailable is the display sentinel for absent optional fields. It is
// applied only when formatting for a response, never stored internally.
const NotAvailable = "N/A"

// Snapshot is the normalized per-ticker quote served to clients. Optional
// numeric fields stay as pointers; absence is rendered at the serialization
// edge via the Display helpers.
type Snapshot struct {
	Ticker           string
	CompanyName      string
	Price            float64
	DayChange        float64
	DayChangePercent float64
	TrailingPE       *float64
	MarketCap        *float64
	Currency         string
	Sector           string
	Industry         string
}

// Build assembles a Snapshot from raw provider metadata and the most recent
// close. Prices round to 2 decimals, the day change percent arrives as a
// fraction and is scaled to percent, and the company name falls back from
// long name to short name to the ticker itself.
func Build(ticker string, p market.Profile, lastClose float64) Snapshot {
	name := p.LongName
	if name == "" {
		name = p.ShortName
	}
	if name == "" {
		name = ticker
	}

	var change, changePct float64
	if p.Change != nil {
		change = market.Round2(*p.Change)
	}
	if p.ChangePercent != nil {
		changePct = market.Round2(*p.ChangePercent * 100)
	}

	var pe *float64
	if p.TrailingPE != nil && !math.IsNaN(*p.TrailingPE) && !math.IsInf(*p.TrailingPE, 0) {
		r := market.Round2(*p.TrailingPE)
		pe = &r
	}

	currency := p.Currency
	if currency == "" {
		currency = "USD"
	}

	return Snapshot{
		Ticker:           ticker,
		CompanyName:      name,
		Price:            market.Round2(lastClose),
		DayChange:        change,
		DayChangePercent: changePct,
		TrailingPE:       pe,
		MarketCap:        p.MarketCap,
		Currency:         currency,
		Sector:           p.Sector,
		Industry:         p.Industry,
	}
}

// PEDisplay returns the rounded P/E ratio, or the "N/A" sentinel.
func (s Snapshot) PEDisplay() any {
	if s.TrailingPE == nil {
		return NotAvailable
	}
	return *s.TrailingPE
}

// MarketCapDisplay formats the market cap by magnitude: trillions, billions
// and millions with two decimals, smaller caps with thousands separators.
func (s Snapshot) MarketCapDisplay() string {
	if s.MarketCap == nil || *s.MarketCap <= 0 {
		return NotAvailable
	}
	return FormatMarketCap(*s.MarketCap)
}

func (s Snapshot) SectorDisplay() string   { return textOr(s.Sector) }
func (s Snapshot) IndustryDisplay() string { return textOr(s.Industry) }

func textOr(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}

// FormatMarketCap picks the display unit by magnitude. StringFixed rounds
// half away from zero, so 999,999,999 renders as "$1000.00M" rather than
// crossing into the billions unit.
func FormatMarketCap(v float64) string {
	d := decimal.NewFromFloat(v)
	switch {
	case v >= 1e12:
		return "$" + d.Div(decimal.New(1, 12)).StringFixed(2) + "T"
	case v >= 1e9:
		return "$" + d.Div(decimal.New(1, 9)).StringFixed(2) + "B"
	case v >= 1e6:
		return "$" + d.Div(decimal.New(1, 6)).StringFixed(2) + "M"
	default:
		return "$" + humanize.Comma(d.Round(0).IntPart())
	}
}
