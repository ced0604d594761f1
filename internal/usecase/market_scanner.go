package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"MarketScanner/internal/domain/models"
	domrepo "MarketScanner/internal/domain/repository"
	"MarketScanner/internal/provider"
	"MarketScanner/internal/services/signals"
	xlogger "MarketScanner/pkg/logger"
)

// SkipReason tells why an asset produced no result.
type SkipReason string

const (
	ReasonMissingSymbol    SkipReason = "missing_symbol"
	ReasonInvalidAsset     SkipReason = "invalid_asset"
	ReasonProviderError    SkipReason = "provider_error"
	ReasonEmptySeries      SkipReason = "empty_series"
	ReasonInsufficientData SkipReason = "insufficient_data"
	ReasonComputationError SkipReason = "computation_error"

	outcomeEvaluated = "evaluated"
)

// Outcome is the per-asset result of a scan: either Result or a skip Reason.
type Outcome struct {
	Index  int
	Symbol string
	Result *models.ScanResult
	Reason SkipReason
	Err    error
}

func (o Outcome) Skipped() bool { return o.Result == nil }

// MarketScanner evaluates requested assets one after another.
type MarketScanner struct {
	provider     domrepo.PriceProvider
	engine       *signals.Engine
	logger       *xlogger.Logger
	metrics      domrepo.Metrics
	validate     *validator.Validate
	lookbackDays int
}

func NewMarketScanner(p domrepo.PriceProvider, engine *signals.Engine, logger *xlogger.Logger, metrics domrepo.Metrics, lookbackDays int) *MarketScanner {
	if lookbackDays <= 0 {
		lookbackDays = 90
	}
	return &MarketScanner{
		provider:     p,
		engine:       engine,
		logger:       logger,
		metrics:      metrics,
		validate:     validator.New(),
		lookbackDays: lookbackDays,
	}
}

// Scan returns one Outcome per raw asset, in input order. A failing asset
// never stops the ones after it.
func (s *MarketScanner) Scan(ctx context.Context, assets []json.RawMessage) []Outcome {
	start := time.Now()
	s.metrics.RecordScan()

	out := make([]Outcome, 0, len(assets))
	for i, raw := range assets {
		o := s.scanOne(ctx, i, raw)
		if o.Skipped() {
			s.logger.Warn("scan.asset skipped",
				xlogger.Int("index", i),
				xlogger.String("symbol", o.Symbol),
				xlogger.String("reason", string(o.Reason)),
				xlogger.Error(o.Err),
			)
			s.metrics.RecordAsset(string(o.Reason))
		} else {
			s.metrics.RecordAsset(outcomeEvaluated)
		}
		out = append(out, o)
	}

	s.metrics.RecordLatency("scan", time.Since(start).Seconds())
	s.logger.Debug("scan.done",
		xlogger.Int("assets", len(assets)),
		xlogger.Duration("took", time.Since(start)),
	)
	return out
}

// Results keeps the successful outcomes, order preserved.
func Results(outcomes []Outcome) []models.ScanResult {
	res := make([]models.ScanResult, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Result != nil {
			res = append(res, *o.Result)
		}
	}
	return res
}

func (s *MarketScanner) scanOne(ctx context.Context, idx int, raw json.RawMessage) (o Outcome) {
	o.Index = idx
	defer func() {
		if r := recover(); r != nil {
			o.Result = nil
			o.Reason = ReasonComputationError
			o.Err = fmt.Errorf("panic: %v", r)
		}
	}()

	var asset models.Asset
	if err := json.Unmarshal(raw, &asset); err != nil {
		o.Reason = ReasonInvalidAsset
		if !errors.Is(err, models.ErrAssetNotObject) {
			o.Reason = ReasonMissingSymbol
		}
		o.Err = err
		return o
	}
	o.Symbol = asset.Symbol
	if err := s.validate.Struct(asset); err != nil {
		o.Reason = ReasonMissingSymbol
		o.Err = fmt.Errorf("validate asset: %w", err)
		return o
	}

	fetchStart := time.Now()
	closes, err := s.provider.FetchDailyCloses(ctx, asset.Symbol, s.lookbackDays)
	s.metrics.RecordLatency("fetch", time.Since(fetchStart).Seconds())
	switch {
	case errors.Is(err, provider.ErrNoData):
		o.Reason, o.Err = ReasonEmptySeries, err
		return o
	case err != nil:
		o.Reason, o.Err = ReasonProviderError, err
		return o
	case len(closes) == 0:
		o.Reason, o.Err = ReasonEmptySeries, provider.ErrNoData
		return o
	}

	ev, err := s.engine.Evaluate(closes)
	switch {
	case errors.Is(err, signals.ErrInsufficientData):
		o.Reason, o.Err = ReasonInsufficientData, err
		return o
	case err != nil:
		o.Reason, o.Err = ReasonComputationError, err
		return o
	}

	s.metrics.RecordSignal(string(ev.Signal.Action))
	s.logger.Debug("scan.asset evaluated",
		xlogger.String("symbol", asset.Symbol),
		xlogger.Float64("price", ev.Indicators.CurrentPrice),
		xlogger.Float64("rsi", ev.Indicators.RSI14),
		xlogger.Float64("sma", ev.Indicators.SMA50),
		xlogger.String("action", string(ev.Signal.Action)),
	)
	res := models.NewScanResult(asset, ev)
	o.Result = &res
	return o
}
