package yahoo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"

	"MarketScanner/internal/domain/repository"
	"MarketScanner/internal/provider"
)

const DefaultBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"

type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client fetches daily bars from the Yahoo Finance v8 chart API.
type Client struct {
	client *resty.Client
}

var _ repository.PriceProvider = (*Client)(nil)

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	if cfg.UserAgent != "" {
		c.SetHeader("User-Agent", cfg.UserAgent)
	}
	return &Client{client: c}
}

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
		Error *chartError `json:"error"`
	} `json:"chart"`
}

type chartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type bar struct {
	ts    int64
	close float64
}

// FetchDailyCloses returns closes ordered oldest first. Bars with a null close
// (holidays, halted sessions) are dropped.
func (c *Client) FetchDailyCloses(ctx context.Context, symbol string, lookbackDays int) ([]float64, error) {
	var ok, failed chartResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		SetQueryParams(map[string]string{
			"interval": "1d",
			"range":    RangeFor(lookbackDays),
		}).
		SetResult(&ok).
		SetError(&failed).
		Get("/{symbol}")
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch %s: %w", symbol, err)
	}
	if e := failed.Chart.Error; e != nil {
		return nil, fmt.Errorf("yahoo api error %s: %s: %s", symbol, e.Code, e.Description)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("yahoo %s: status %d", symbol, resp.StatusCode())
	}
	if e := ok.Chart.Error; e != nil {
		return nil, fmt.Errorf("yahoo api error %s: %s: %s", symbol, e.Code, e.Description)
	}
	if len(ok.Chart.Result) == 0 || len(ok.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo %s: %w", symbol, provider.ErrNoData)
	}

	result := ok.Chart.Result[0]
	closes := result.Indicators.Quote[0].Close
	bars := make([]bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		bars = append(bars, bar{ts: ts, close: *closes[i]})
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("yahoo %s: %w", symbol, provider.ErrNoData)
	}

	sort.SliceStable(bars, func(i, j int) bool { return bars[i].ts < bars[j].ts })
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.close
	}
	return out, nil
}

// RangeFor maps a lookback in calendar days to the smallest chart range covering it.
func RangeFor(days int) string {
	switch {
	case days <= 5:
		return "5d"
	case days <= 30:
		return "1mo"
	case days <= 90:
		return "3mo"
	case days <= 180:
		return "6mo"
	case days <= 365:
		return "1y"
	case days <= 730:
		return "2y"
	case days <= 1825:
		return "5y"
	default:
		return "10y"
	}
}
