package main

import (
    "context"
    "encoding/json"
    "flag"
    "fmt"
    "log"
    "os"
    "time"

    "stockinsight/internal/config"
    "stockinsight/internal/httpx"
    "stockinsight/internal/market"
    "stockinsight/internal/market/yahoo"
    "stockinsight/internal/news"
    "stockinsight/internal/stock"
)

// fetch is an ad-hoc CLI for poking the upstream providers without running
// the server: prints history, profile and curated news for one ticker.
func main() {
    var ticker string
    var period string
    var withNews bool
    var timeout int
    var configPath string

    flag.StringVar(&ticker, "ticker", getenv("TICKER", "AAPL"), "ticker symbol")
    flag.StringVar(&period, "period", getenv("PERIOD", "7d"), "history period (7d,1m,3m,6m,1y,5y)")
    flag.BoolVar(&withNews, "news", true, "also search news (requires NEWS_API_KEY)")
    flag.IntVar(&timeout, "timeout", 15, "request timeout seconds")
    flag.StringVar(&configPath, "config", getenv("CONFIG_FILE", ""), "path to config.json (optional)")
    flag.Parse()

    cfg, err := config.Load(configPath)
    if err != nil { log.Fatalf("config: %v", err) }

    sym := stock.NormalizeTicker(ticker)
    if sym == "" { log.Fatal("no ticker provided") }

    hc := httpx.New(time.Duration(timeout) * time.Second)
    if cfg.Market.UserAgent != "" { hc.UserAgent = cfg.Market.UserAgent }
    provider := yahoo.New(yahoo.Config{BaseURL: cfg.Market.Endpoint}, hc)

    ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
    defer cancel()

    type result struct {
        History market.Series  `json:"history"`
        Profile market.Profile `json:"profile"`
        News    []news.Article `json:"news,omitempty"`
    }
    var out result

    type step struct { name string; err error }
    ch := make(chan step, 3)
    go func() {
        var err error
        out.History, err = provider.History(ctx, sym, rangeFor(period))
        ch <- step{"history", err}
    }()
    go func() {
        var err error
        out.Profile, err = provider.Profile(ctx, sym)
        ch <- step{"profile", err}
    }()
    steps := 2
    if withNews && cfg.News.APIKey != "" {
        steps++
        go func() {
            nc, err := news.NewClient(
                cfg.News.APIKey,
                news.WithBaseURL(cfg.News.Endpoint),
                news.WithHTTPClient(hc.HTTP),
                news.WithDomains(cfg.News.Domains),
            )
            if err == nil {
                out.News, err = nc.Search(ctx, sym)
            }
            ch <- step{"news", err}
        }()
    }

    failures := 0
    for i := 0; i < steps; i++ {
        s := <-ch
        if s.err != nil {
            log.Printf("%s error: %v", s.name, s.err)
            failures++
        }
    }
    if failures == steps { log.Fatal("all fetches failed") }

    b, _ := json.MarshalIndent(out, "", "  ")
    fmt.Println(string(b))
}

func rangeFor(period string) market.Range {
    switch period {
    case "1m":
        return market.Range1Mo
    case "3m":
        return market.Range3Mo
    case "6m":
        return market.Range6Mo
    case "1y":
        return market.Range1Y
    case "5y":
        return market.Range5Y
    default:
        return market.Range7D
    }
}

func getenv(key, def string) string { if v := os.Getenv(key); v != "" { return v }; return def }
