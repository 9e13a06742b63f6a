package market

import (
	"bytes"
	"context"
	"errors"
	"strconv"

	"github.com/shopspring/decimal"
)

// ErrNoData reports that the upstream has no rows for a ticker/range,
// typically an unknown or delisted symbol. Callers distinguish it from
// transport failures with errors.Is.
var ErrNoData = errors.New("no data for symbol")

// Range is a provider period token for historical closes.
type Range string

const (
	Range1D  Range = "1d"
	Range7D  Range = "7d"
	Range1Mo Range = "1mo"
	Range3Mo Range = "3mo"
	Range6Mo Range = "6mo"
	Range1Y  Range = "1y"
	Range5Y  Range = "5y"
)

// Point is a single daily close.
type Point struct {
	Date  string  // YYYY-MM-DD, calendar order equals lexical order
	Close float64 // rounded to 2 decimals at construction
}

// Series is a run of daily closes ordered oldest first. The slice order is
// authoritative; no calendar semantics are inferred from the dates.
type Series []Point

// Last returns the most recent point.
func (s Series) Last() (Point, bool) {
	if len(s) == 0 {
		return Point{}, false
	}
	return s[len(s)-1], true
}

// MarshalJSON renders the series as a date->price object in slice order.
// Lexical key order matches chronological order for YYYY-MM-DD dates, so
// clients that re-sort keys see the same sequence.
func (s Series) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, p := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(p.Date))
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(p.Close, 'f', -1, 64))
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// Profile carries per-ticker metadata from the provider. Pointer fields are
// nil when the upstream has no value; display sentinels are applied later,
// at the serialization edge.
type Profile struct {
	LongName      string
	ShortName     string
	Change        *float64 // absolute day change
	ChangePercent *float64 // fraction, e.g. 0.0123 for +1.23%
	TrailingPE    *float64
	MarketCap     *float64
	Currency      string
	Sector        string
	Industry      string
}

// Provider fetches price history and metadata for a ticker.
type Provider interface {
	Name() string
	History(ctx context.Context, symbol string, rng Range) (Series, error)
	Profile(ctx context.Context, symbol string) (Profile, error)
}

// Round2 rounds to 2 decimal places half away from zero.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
