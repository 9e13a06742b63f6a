package analysis

import (
	"fmt"
	"math"
	"strings"

	"stockinsight/internal/market"
)

// Disclaimer replaces the verdict whenever derivation hits malformed input.
// Verdict never fails past its boundary.
const Disclaimer = "Basic analysis available - consult financial advisor for investment decisions"

const (
	trendUp       = "📈 Upward"
	trendDown     = "📉 Downward"
	trendSideways = "➡️ Sideways"
	trendNeutral  = "➡️ Neutral"
)

// Verdict derives a short assessment from the P/E ratio, market cap and the
// chronological close series. It joins up to three clauses with " | " in the
// fixed order valuation, trend, cap size; the trend clause is always present.
func Verdict(trailingPE, marketCap *float64, history market.Series) string {
	var changePct float64
	label := trendNeutral
	if len(history) >= 2 {
		first := history[0].Close
		last := history[len(history)-1].Close
		if first == 0 {
			return Disclaimer
		}
		changePct = (last - first) / first * 100
		if math.IsNaN(changePct) || math.IsInf(changePct, 0) {
			return Disclaimer
		}
		switch {
		case changePct > 2:
			label = trendUp
		case changePct < -2:
			label = trendDown
		default:
			label = trendSideways
		}
	}

	parts := make([]string, 0, 3)

	if trailingPE != nil {
		pe := *trailingPE
		if math.IsNaN(pe) || math.IsInf(pe, 0) {
			return Disclaimer
		}
		switch {
		case pe < 15:
			parts = append(parts, "Potentially undervalued (low P/E)")
		case pe > 25:
			parts = append(parts, "May be overvalued (high P/E)")
		default:
			parts = append(parts, "Fairly valued")
		}
	}

	parts = append(parts, fmt.Sprintf("%s trend (%+.1f%% period)", label, changePct))

	if marketCap != nil {
		switch mc := *marketCap; {
		case mc > 200_000_000_000:
			parts = append(parts, "Large-cap stock")
		case mc > 10_000_000_000:
			parts = append(parts, "Mid-cap stock")
		case mc > 0:
			parts = append(parts, "Small-cap stock")
		}
	}

	return strings.Join(parts, " | ")
}
