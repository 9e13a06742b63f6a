package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"stockinsight/internal/httpx"
	"stockinsight/internal/market"
)

type Config struct {
	Name    string
	BaseURL string
	// Modules requested from the quoteSummary endpoint. Defaults cover
	// price, valuation and sector/industry metadata.
	Modules []string
}

// Client fetches daily closes from the Yahoo Finance chart API and ticker
// metadata from the quoteSummary API.
type Client struct {
	cfg    Config
	client *httpx.Client
}

func New(cfg Config, hc *httpx.Client) *Client {
	if cfg.Name == "" {
		cfg.Name = "Yahoo"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://query1.finance.yahoo.com"
	}
	if len(cfg.Modules) == 0 {
		cfg.Modules = []string{"price", "summaryDetail", "assetProfile"}
	}
	return &Client{cfg: cfg, client: hc}
}

func (c *Client) Name() string { return c.cfg.Name }

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// History returns daily closes for the range, oldest first. Null bars
// (holidays, halted sessions) are skipped.
func (c *Client) History(ctx context.Context, symbol string, rng market.Range) (market.Series, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%s",
		c.cfg.BaseURL, url.PathEscape(symbol), url.QueryEscape(string(rng)))

	var chart chartResponse
	if err := c.getJSON(ctx, u, &chart); err != nil {
		return nil, err
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("chart %s: %s: %w", symbol, chart.Chart.Error.Description, market.ErrNoData)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return market.Series{}, nil
	}

	result := chart.Chart.Result[0]
	closes := result.Indicators.Quote[0].Close
	series := make(market.Series, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		series = append(series, market.Point{
			Date:  time.Unix(ts, 0).UTC().Format("2006-01-02"),
			Close: market.Round2(*closes[i]),
		})
	}
	sort.SliceStable(series, func(i, j int) bool { return series[i].Date < series[j].Date })
	return series, nil
}

// rawValue is Yahoo's {raw, fmt} number wrapper.
type rawValue struct {
	Raw *float64 `json:"raw"`
}

type summaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			Price struct {
				LongName                   string   `json:"longName"`
				ShortName                  string   `json:"shortName"`
				Currency                   string   `json:"currency"`
				MarketCap                  rawValue `json:"marketCap"`
				RegularMarketChange        rawValue `json:"regularMarketChange"`
				RegularMarketChangePercent rawValue `json:"regularMarketChangePercent"`
			} `json:"price"`
			SummaryDetail struct {
				TrailingPE rawValue `json:"trailingPE"`
			} `json:"summaryDetail"`
			AssetProfile struct {
				Sector   string `json:"sector"`
				Industry string `json:"industry"`
			} `json:"assetProfile"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// Profile returns name, valuation and classification metadata for a ticker.
func (c *Client) Profile(ctx context.Context, symbol string) (market.Profile, error) {
	q := url.Values{}
	for _, m := range c.cfg.Modules {
		q.Add("modules", m)
	}
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?%s",
		c.cfg.BaseURL, url.PathEscape(symbol), q.Encode())

	var summary summaryResponse
	if err := c.getJSON(ctx, u, &summary); err != nil {
		return market.Profile{}, err
	}
	if summary.QuoteSummary.Error != nil {
		return market.Profile{}, fmt.Errorf("quoteSummary %s: %s: %w",
			symbol, summary.QuoteSummary.Error.Description, market.ErrNoData)
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return market.Profile{}, fmt.Errorf("quoteSummary %s: empty result: %w", symbol, market.ErrNoData)
	}

	r := summary.QuoteSummary.Result[0]
	return market.Profile{
		LongName:      r.Price.LongName,
		ShortName:     r.Price.ShortName,
		Change:        r.Price.RegularMarketChange.Raw,
		ChangePercent: r.Price.RegularMarketChangePercent.Raw,
		TrailingPE:    r.SummaryDetail.TrailingPE.Raw,
		MarketCap:     r.Price.MarketCap.Raw,
		Currency:      r.Price.Currency,
		Sector:        r.AssetProfile.Sector,
		Industry:      r.AssetProfile.Industry,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	// Yahoo answers 404 with a JSON error payload for unknown symbols;
	// surface it as decoded chart/summary errors instead of a status error.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2<<10))
		return fmt.Errorf("GET %s -> %d: %s", u, resp.StatusCode, string(b))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
