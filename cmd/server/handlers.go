package main

import (
    "encoding/json"
    "errors"
    "fmt"
    "log"
    "net/http"

    "stockinsight/internal/market"
    "stockinsight/internal/news"
    "stockinsight/internal/stock"
)

type stockRequest struct {
    Ticker string `json:"ticker"`
}

type chartRequest struct {
    Ticker string `json:"ticker"`
    Period string `json:"period"`
}

type errorResponse struct {
    Error string `json:"error"`
}

type stockResponse struct {
    Ticker           string         `json:"ticker"`
    CompanyName      string         `json:"company_name"`
    Price            float64        `json:"price"`
    DayChange        float64        `json:"day_change"`
    DayChangePercent float64        `json:"day_change_percent"`
    PERatio          any            `json:"pe_ratio"`
    MarketCap        string         `json:"market_cap"`
    History          market.Series  `json:"history"`
    Advice           string         `json:"advice"`
    News             []news.Article `json:"news"`
    Currency         string         `json:"currency"`
    Sector           string         `json:"sector"`
    Industry         string         `json:"industry"`
}

type chartResponse struct {
    Ticker  string        `json:"ticker"`
    Period  string        `json:"period"`
    History market.Series `json:"history"`
    Status  string        `json:"status"`
}

func handleStockData(w http.ResponseWriter, r *http.Request, svc *stock.Service) {
    var req stockRequest
    dec := json.NewDecoder(r.Body)
    dec.DisallowUnknownFields()
    if err := dec.Decode(&req); err != nil {
        writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
        return
    }

    q, err := svc.GetQuote(r.Context(), req.Ticker)
    if err != nil {
        writeError(w, err)
        return
    }

    snap := q.Snapshot
    writeJSON(w, http.StatusOK, stockResponse{
        Ticker:           snap.Ticker,
        CompanyName:      snap.CompanyName,
        Price:            snap.Price,
        DayChange:        snap.DayChange,
        DayChangePercent: snap.DayChangePercent,
        PERatio:          snap.PEDisplay(),
        MarketCap:        snap.MarketCapDisplay(),
        History:          q.History,
        Advice:           q.Advice,
        News:             q.News,
        Currency:         snap.Currency,
        Sector:           snap.SectorDisplay(),
        Industry:         snap.IndustryDisplay(),
    })
}

func handleChartData(w http.ResponseWriter, r *http.Request, svc *stock.Service) {
    var req chartRequest
    dec := json.NewDecoder(r.Body)
    dec.DisallowUnknownFields()
    if err := dec.Decode(&req); err != nil {
        writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
        return
    }
    if req.Period == "" { req.Period = "7d" }

    chart, err := svc.GetChartHistory(r.Context(), req.Ticker, req.Period)
    if err != nil {
        writeError(w, err)
        return
    }
    writeJSON(w, http.StatusOK, chartResponse{
        Ticker:  chart.Ticker,
        Period:  chart.Period,
        History: chart.History,
        Status:  "success",
    })
}

func handleHealth(w http.ResponseWriter, svc *stock.Service) {
    writeJSON(w, http.StatusOK, svc.HealthCheck())
}

// writeError maps typed service failures to statuses; the body stays
// {"error": string} for every failure so the front end has one shape to
// check.
func writeError(w http.ResponseWriter, err error) {
    var appErr *stock.Error
    if !errors.As(err, &appErr) {
        log.Printf("unexpected handler error: %v", err)
        writeJSON(w, http.StatusBadGateway, errorResponse{Error: fmt.Sprintf("Error retrieving data: %v", err)})
        return
    }
    if appErr.Err != nil {
        log.Printf("request failed: %s (%v)", appErr.Message, appErr.Err)
    }
    writeJSON(w, statusForKind(appErr.Kind), errorResponse{Error: appErr.Message})
}

func statusForKind(k stock.Kind) int {
    switch k {
    case stock.KindValidation:
        return http.StatusBadRequest
    case stock.KindNotFound:
        return http.StatusNotFound
    default:
        return http.StatusBadGateway
    }
}

func writeJSON(w http.ResponseWriter, status int, v any) {
    w.WriteHeader(status)
    enc := json.NewEncoder(w)
    enc.SetEscapeHTML(false)
    _ = enc.Encode(v)
}
