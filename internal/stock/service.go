package stock

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"stockinsight/internal/analysis"
	"stockinsight/internal/market"
	"stockinsight/internal/news"
	"stockinsight/internal/quote"
)

// NewsFetcher is the slice of the news client the service needs.
type NewsFetcher interface {
	Search(ctx context.Context, query string) ([]news.Article, error)
}

// Config bounds the outbound calls. Zero values fall back to defaults.
type Config struct {
	MarketTimeout time.Duration
	NewsTimeout   time.Duration
}

// Service answers the three boundary operations: full quote, chart history
// and health. All state is per-request; the service itself is immutable
// after construction and safe for concurrent use.
type Service struct {
	market        market.Provider
	news          NewsFetcher
	marketTimeout time.Duration
	newsTimeout   time.Duration
}

func New(p market.Provider, nf NewsFetcher, cfg Config) *Service {
	if cfg.MarketTimeout <= 0 {
		cfg.MarketTimeout = 15 * time.Second
	}
	if cfg.NewsTimeout <= 0 {
		cfg.NewsTimeout = 10 * time.Second
	}
	return &Service{
		market:        p,
		news:          nf,
		marketTimeout: cfg.MarketTimeout,
		newsTimeout:   cfg.NewsTimeout,
	}
}

// Quote is the merged response for one ticker.
type Quote struct {
	Snapshot quote.Snapshot
	History  market.Series
	Advice   string
	News     []news.Article
}

// ChartData is the response for one ticker/period pair.
type ChartData struct {
	Ticker  string
	Period  string
	History market.Series
}

// Health is the boundary health report.
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// periodRanges maps the API period codes to provider range tokens.
// Unrecognized codes fall back to 7d.
var periodRanges = map[string]market.Range{
	"7d": market.Range7D,
	"1m": market.Range1Mo,
	"3m": market.Range3Mo,
	"6m": market.Range6Mo,
	"1y": market.Range1Y,
	"5y": market.Range5Y,
}

func rangeForPeriod(period string) market.Range {
	if r, ok := periodRanges[period]; ok {
		return r
	}
	return market.Range7D
}

// NormalizeTicker upper-cases and trims a raw ticker string.
func NormalizeTicker(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// GetQuote fetches current price, metadata and a 7-day close history for
// the ticker, derives the analysis verdict and attaches curated news. The
// three market calls fan out concurrently; the news lookup runs after (its
// query needs the company name) and its failure only degrades the news list.
func (s *Service) GetQuote(ctx context.Context, rawTicker string) (*Quote, error) {
	ticker := NormalizeTicker(rawTicker)
	if ticker == "" {
		return nil, validationf("Please provide a valid ticker symbol")
	}
	log.Printf("fetching data for ticker %s", ticker)

	mctx, cancel := context.WithTimeout(ctx, s.marketTimeout)
	defer cancel()

	var (
		hist1d  market.Series
		hist7d  market.Series
		profile market.Profile
	)
	g, gctx := errgroup.WithContext(mctx)
	g.Go(func() error {
		var err error
		hist1d, err = s.market.History(gctx, ticker, market.Range1D)
		return err
	})
	g.Go(func() error {
		var err error
		hist7d, err = s.market.History(gctx, ticker, market.Range7D)
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = s.market.Profile(gctx, ticker)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, market.ErrNoData) {
			return nil, notFoundf("Ticker '%s' not found. Please verify the symbol.", ticker)
		}
		return nil, upstreamf(err, "Error retrieving data: %v", err)
	}
	last, ok := hist1d.Last()
	if !ok {
		return nil, notFoundf("No data found for ticker '%s'. Please check the symbol.", ticker)
	}

	snap := quote.Build(ticker, profile, last.Close)
	advice := analysis.Verdict(snap.TrailingPE, snap.MarketCap, hist7d)
	articles := s.fetchNews(ctx, ticker, snap.CompanyName)

	log.Printf("returning data for %s: %d price points, %d news items",
		ticker, len(hist7d), len(articles))
	return &Quote{
		Snapshot: snap,
		History:  hist7d,
		Advice:   advice,
		News:     articles,
	}, nil
}

// fetchNews degrades to an empty list on any failure; a broken news
// upstream never fails the quote request.
func (s *Service) fetchNews(ctx context.Context, ticker, companyName string) []news.Article {
	if s.news == nil {
		return []news.Article{}
	}
	nctx, cancel := context.WithTimeout(ctx, s.newsTimeout)
	defer cancel()

	articles, err := s.news.Search(nctx, ticker+" "+companyName)
	if err != nil {
		log.Printf("news search for %s: %v", ticker, err)
		return []news.Article{}
	}
	if articles == nil {
		articles = []news.Article{}
	}
	return articles
}

// GetChartHistory fetches the close history for an enumerated period code,
// silently falling back to 7d for unrecognized codes.
func (s *Service) GetChartHistory(ctx context.Context, rawTicker, period string) (*ChartData, error) {
	ticker := NormalizeTicker(rawTicker)
	if ticker == "" {
		return nil, validationf("Please provide a valid ticker symbol")
	}
	log.Printf("chart data request: ticker=%s period=%s", ticker, period)

	mctx, cancel := context.WithTimeout(ctx, s.marketTimeout)
	defer cancel()

	hist, err := s.market.History(mctx, ticker, rangeForPeriod(period))
	if err != nil {
		if errors.Is(err, market.ErrNoData) {
			return nil, notFoundf("No chart data available for %s with period %s", ticker, period)
		}
		return nil, upstreamf(err, "Error retrieving chart data: %v", err)
	}
	if len(hist) == 0 {
		return nil, notFoundf("No chart data available for %s with period %s", ticker, period)
	}
	return &ChartData{Ticker: ticker, Period: period, History: hist}, nil
}

// HealthCheck reports liveness. It touches no upstream and cannot fail.
func (s *Service) HealthCheck() Health {
	return Health{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
