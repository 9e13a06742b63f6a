package config

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "strings"
)

type Server struct {
    Port              string `json:"port"`
    RequestTimeoutSec int    `json:"request_timeout_sec"`
}

type Market struct {
    Endpoint   string `json:"endpoint"`
    TimeoutSec int    `json:"timeout_sec"`
    UserAgent  string `json:"user_agent"`
}

type News struct {
    APIKey      string   `json:"api_key"`
    Endpoint    string   `json:"endpoint"`
    Domains     []string `json:"domains"`
    TimeoutSec  int      `json:"timeout_sec"`
    MaxArticles int      `json:"max_articles"`
}

type Config struct {
    Server Server `json:"server"`
    Market Market `json:"market"`
    News   News   `json:"news"`
}

func Default() Config {
    return Config{
        Server: Server{Port: "8080", RequestTimeoutSec: 30},
        Market: Market{
            Endpoint:   "https://query1.finance.yahoo.com",
            TimeoutSec: 15,
            UserAgent:  "Mozilla/5.0",
        },
        News: News{
            Endpoint:    "https://newsapi.org/v2",
            Domains:     []string{"reuters.com", "bloomberg.com", "cnbc.com", "marketwatch.com", "yahoo.com"},
            TimeoutSec:  10,
            MaxArticles: 5,
        },
    }
}

// Load reads JSON config from path. If path is empty or file does not exist,
// it returns defaults. Environment variables override select fields for secrecy.
func Load(path string) (Config, error) {
    cfg := Default()
    if path == "" {
        if _, err := os.Stat("config.json"); err == nil {
            path = "config.json"
        }
    }
    if path != "" {
        b, err := os.ReadFile(path)
        if err != nil && !errors.Is(err, os.ErrNotExist) {
            return cfg, fmt.Errorf("read config: %w", err)
        }
        if err == nil {
            if err := json.Unmarshal(b, &cfg); err != nil {
                return cfg, fmt.Errorf("parse config: %w", err)
            }
        }
    }
    applyEnv(&cfg)
    return cfg, nil
}

func applyEnv(cfg *Config) {
    if v := os.Getenv("PORT"); v != "" { cfg.Server.Port = v }
    if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.Server.RequestTimeoutSec = x }
    }
    if v := os.Getenv("MARKET_ENDPOINT"); v != "" { cfg.Market.Endpoint = v }
    if v := os.Getenv("MARKET_TIMEOUT_SEC"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.Market.TimeoutSec = x }
    }
    if v := os.Getenv("MARKET_USER_AGENT"); v != "" { cfg.Market.UserAgent = v }
    if v := os.Getenv("NEWS_API_KEY"); v != "" { cfg.News.APIKey = v }
    if v := os.Getenv("NEWS_ENDPOINT"); v != "" { cfg.News.Endpoint = v }
    if v := os.Getenv("NEWS_DOMAINS"); v != "" { cfg.News.Domains = splitCSV(v) }
    if v := os.Getenv("NEWS_TIMEOUT_SEC"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.News.TimeoutSec = x }
    }
    if v := os.Getenv("NEWS_MAX_ARTICLES"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.News.MaxArticles = x }
    }
}

func splitCSV(s string) []string {
    parts := strings.Split(s, ",")
    out := make([]string, 0, len(parts))
    for _, p := range parts {
        p = strings.TrimSpace(p)
        if p != "" { out = append(out, p) }
    }
    return out
}
