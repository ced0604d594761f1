// Package fixture is a deterministic in-memory PriceProvider.
package fixture

import (
	"context"
	"fmt"
	"sync"

	"MarketScanner/internal/domain/repository"
	"MarketScanner/internal/provider"
)

// Provider serves closes from a map and records every symbol it is asked for.
type Provider struct {
	mu     sync.Mutex
	closes map[string][]float64
	errs   map[string]error
	calls  []string
}

var _ repository.PriceProvider = (*Provider)(nil)

func New() *Provider {
	return &Provider{
		closes: make(map[string][]float64),
		errs:   make(map[string]error),
	}
}

// WithCloses registers a series for symbol.
func (p *Provider) WithCloses(symbol string, closes ...float64) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closes[symbol] = append([]float64(nil), closes...)
	return p
}

// WithError makes every fetch of symbol fail with err.
func (p *Provider) WithError(symbol string, err error) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errs[symbol] = err
	return p
}

func (p *Provider) FetchDailyCloses(ctx context.Context, symbol string, _ int) ([]float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, symbol)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := p.errs[symbol]; ok {
		return nil, err
	}
	closes, ok := p.closes[symbol]
	if !ok {
		return nil, fmt.Errorf("fixture %s: %w", symbol, provider.ErrNoData)
	}
	return append([]float64(nil), closes...), nil
}

// Calls returns the symbols requested so far, in order.
func (p *Provider) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}
