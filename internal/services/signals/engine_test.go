package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MarketScanner/internal/domain/models"
)

// series builds 50 closes: 35 at base, an anchor, then 14 moves of up
// followed by down (7 each). The trailing RSI depends only on up and down.
func series(base, anchor, up, down float64) []float64 {
	closes := make([]float64, 0, SMAPeriod)
	for i := 0; i < 35; i++ {
		closes = append(closes, base)
	}
	last := anchor
	closes = append(closes, last)
	for i := 0; i < 7; i++ {
		last += up
		closes = append(closes, last)
		last -= down
		closes = append(closes, last)
	}
	return closes
}

func TestEvaluateClassification(t *testing.T) {
	tests := []struct {
		name      string
		closes    []float64
		wantRSI   float64
		action    models.Action
		reason    string
		wantTrend models.Trend
	}{
		{"oversold above sma", series(50, 100, 1, 3), 25, models.ActionBuy, "OVERSOLD (CHEAP)", models.TrendRising},
		{"oversold below sma", series(200, 100, 1, 3), 25, models.ActionBuy, "OVERSOLD (CHEAP)", models.TrendFalling},
		{"overbought below sma", series(200, 100, 3, 1), 75, models.ActionSell, "OVERBOUGHT (EXPENSIVE)", models.TrendFalling},
		{"uptrend", series(50, 100, 1.1, 0.9), 55, models.ActionAccumulate, "UPTREND", models.TrendRising},
		{"neutral below sma", series(200, 100, 1.1, 0.9), 55, models.ActionHold, "NEUTRAL", models.TrendFalling},
	}

	e := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Len(t, tt.closes, SMAPeriod)
			ev, err := e.Evaluate(tt.closes)
			require.NoError(t, err)

			assert.InDelta(t, tt.wantRSI, ev.Indicators.RSI14, 1e-6)
			assert.Equal(t, tt.action, ev.Signal.Action)
			assert.Equal(t, tt.reason, ev.Signal.Reason)
			assert.Equal(t, tt.wantTrend, ev.Trend)
		})
	}
}

func TestEvaluateStrictlyIncreasing(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 10 + float64(i)
	}

	ev, err := NewEngine().Evaluate(closes)
	require.NoError(t, err)

	assert.Equal(t, 100.0, ev.Indicators.RSI14)
	assert.Equal(t, 100, ev.RSI)
	assert.Equal(t, models.TrendRising, ev.Trend)
	assert.Equal(t, models.SignalSell, ev.Signal)
	assert.Equal(t, "69.00", ev.Price)
}

func TestEvaluateFlat(t *testing.T) {
	closes := make([]float64, SMAPeriod)
	for i := range closes {
		closes[i] = 42
	}

	ev, err := NewEngine().Evaluate(closes)
	require.NoError(t, err)

	assert.Equal(t, "0.00", ev.Change)
	assert.Equal(t, "42.00", ev.Price)
	assert.Equal(t, 50, ev.RSI)
	assert.Equal(t, models.TrendFalling, ev.Trend)
	assert.Equal(t, models.SignalHold, ev.Signal)
}

func TestEvaluateChangeAndPrice(t *testing.T) {
	closes := make([]float64, SMAPeriod)
	for i := range closes {
		closes[i] = 100
	}
	closes[len(closes)-1] = 101.5

	ev, err := NewEngine().Evaluate(closes)
	require.NoError(t, err)
	assert.Equal(t, "101.50", ev.Price)
	assert.Equal(t, "1.50", ev.Change)

	closes[len(closes)-1] = 99
	ev, err = NewEngine().Evaluate(closes)
	require.NoError(t, err)
	assert.Equal(t, "-1.00", ev.Change)
}

func TestEvaluateInsufficientData(t *testing.T) {
	e := NewEngine()
	for _, n := range []int{0, 1, 2, 14, 15, 49} {
		closes := make([]float64, n)
		for i := range closes {
			closes[i] = float64(i + 1)
		}
		_, err := e.Evaluate(closes)
		assert.ErrorIs(t, err, ErrInsufficientData, "n=%d", n)
	}
}

func TestEvaluateZeroPreviousClose(t *testing.T) {
	closes := make([]float64, SMAPeriod)
	for i := range closes {
		closes[i] = 1
	}
	closes[len(closes)-2] = 0

	_, err := NewEngine().Evaluate(closes)
	assert.ErrorIs(t, err, ErrUnusableValue)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	closes := series(50, 100, 1.1, 0.9)
	e := NewEngine()
	a, err := e.Evaluate(closes)
	require.NoError(t, err)
	b, err := e.Evaluate(closes)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		rsi, price, sma float64
		want            models.Action
	}{
		{29.99, 1, 2, models.ActionBuy},
		{30, 1, 2, models.ActionHold},
		{70, 1, 2, models.ActionHold},
		{70.01, 3, 2, models.ActionSell},
		{45, 3, 2, models.ActionAccumulate},
		{65, 3, 2, models.ActionAccumulate},
		{44.99, 3, 2, models.ActionHold},
		{65.01, 3, 2, models.ActionHold},
		{55, 2, 2, models.ActionHold},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.rsi, tt.price, tt.sma).Action, "rsi=%v price=%v sma=%v", tt.rsi, tt.price, tt.sma)
	}
}

func TestFormatFixed2(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{123.456, "123.46"},
		{0.1, "0.10"},
		{-3, "-3.00"},
		// below the tie in binary
		{2.675, "2.67"},
		{1.005, "1.00"},
		// exact binary ties go to the even digit
		{101.125, "101.12"},
		{0.125, "0.12"},
		{0.375, "0.38"},
		{-2.5, "-2.50"},
		// sign survives rounding to zero
		{-0.001, "-0.00"},
		{0, "0.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFixed2(tt.in), "in=%v", tt.in)
	}
}

func TestEvaluateRendersBinaryTies(t *testing.T) {
	closes := make([]float64, SMAPeriod)
	for i := range closes {
		closes[i] = 100
	}
	closes[len(closes)-1] = 101.125

	ev, err := NewEngine().Evaluate(closes)
	require.NoError(t, err)
	assert.Equal(t, "101.12", ev.Price)
	assert.Equal(t, "1.12", ev.Change)
}
