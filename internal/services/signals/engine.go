package signals

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"MarketScanner/internal/domain/models"
	"MarketScanner/internal/services/indicators"
)

const (
	RSIPeriod = 14
	SMAPeriod = 50

	oversold        = 30.0
	overbought      = 70.0
	accumulateLower = 45.0
	accumulateUpper = 65.0
)

var (
	// ErrInsufficientData means the series is too short for the indicators.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrUnusableValue means the arithmetic produced no usable number.
	ErrUnusableValue = errors.New("unusable value")
)

// Engine turns a daily close series into an Evaluation. It holds no state and
// is safe for concurrent use.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate expects closes ordered oldest first.
func (e *Engine) Evaluate(closes []float64) (models.Evaluation, error) {
	if len(closes) < 2 {
		return models.Evaluation{}, fmt.Errorf("%w: %d closes", ErrInsufficientData, len(closes))
	}
	price := closes[len(closes)-1]
	prev := closes[len(closes)-2]

	rsi, err := indicators.RSI(closes, RSIPeriod)
	if err != nil {
		return models.Evaluation{}, wrapIndicatorErr("rsi", len(closes), err)
	}
	sma, err := indicators.SMA(closes, SMAPeriod)
	if err != nil {
		return models.Evaluation{}, wrapIndicatorErr("sma", len(closes), err)
	}

	if prev == 0 {
		return models.Evaluation{}, fmt.Errorf("%w: previous close is zero", ErrUnusableValue)
	}
	change := (price - prev) / prev * 100
	if !indicators.Finite(price, prev, rsi, sma, change) {
		return models.Evaluation{}, fmt.Errorf("%w: non-finite indicator", ErrUnusableValue)
	}

	return models.Evaluation{
		Indicators: models.Indicators{
			CurrentPrice:  price,
			PreviousClose: prev,
			RSI14:         rsi,
			SMA50:         sma,
		},
		Price:  FormatFixed2(price),
		Change: FormatFixed2(change),
		RSI:    int(rsi),
		Trend:  TrendOf(price, sma),
		Signal: Classify(rsi, price, sma),
	}, nil
}

// Classify picks the first matching signal: oversold, overbought, uptrend, neutral.
func Classify(rsi, price, sma float64) models.Signal {
	switch {
	case rsi < oversold:
		return models.SignalBuy
	case rsi > overbought:
		return models.SignalSell
	case price > sma && rsi >= accumulateLower && rsi <= accumulateUpper:
		return models.SignalAccumulate
	default:
		return models.SignalHold
	}
}

// TrendOf is RISING only when price is strictly above the average.
func TrendOf(price, sma float64) models.Trend {
	if price > sma {
		return models.TrendRising
	}
	return models.TrendFalling
}

// exactExponent keeps every significant digit of a float64 in the price range.
const exactExponent = -60

// FormatFixed2 renders v with exactly two decimals, rounding the exact binary
// value half to even. Negative values that round to zero keep their sign.
func FormatFixed2(v float64) string {
	s := decimal.NewFromFloatWithExponent(v, exactExponent).StringFixedBank(2)
	if math.Signbit(v) && !strings.HasPrefix(s, "-") {
		s = "-" + s
	}
	return s
}

func wrapIndicatorErr(name string, n int, err error) error {
	if errors.Is(err, indicators.ErrNotEnoughData) {
		return fmt.Errorf("%w: %s needs more than %d closes", ErrInsufficientData, name, n)
	}
	return fmt.Errorf("%s: %w", name, err)
}
