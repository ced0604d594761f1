package indicators

import (
	"errors"
	"math"
)

// ErrNotEnoughData is returned when a series is shorter than the requested window.
var ErrNotEnoughData = errors.New("not enough data")

// Deltas returns closes[i]-closes[i-1]; the result has len(closes)-1 elements.
func Deltas(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	out := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		out = append(out, closes[i]-closes[i-1])
	}
	return out
}

// RSI computes the Relative Strength Index from the simple mean of gains and
// losses over the trailing period deltas (no Wilder smoothing).
// With no losses it is 100, and a flat window yields the neutral 50.
func RSI(closes []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	deltas := Deltas(closes)
	if len(deltas) < period {
		return 0, ErrNotEnoughData
	}

	var avgGain, avgLoss float64
	for _, d := range deltas[len(deltas)-period:] {
		if d > 0 {
			avgGain += d
		} else {
			avgLoss -= d
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	switch {
	case avgLoss == 0 && avgGain == 0:
		return 50, nil
	case avgLoss == 0:
		return 100, nil
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs), nil
}

// SMA returns the unweighted mean of the last period closes.
func SMA(closes []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(closes) < period {
		return 0, ErrNotEnoughData
	}
	sum := 0.0
	for _, c := range closes[len(closes)-period:] {
		sum += c
	}
	return sum / float64(period), nil
}

// Finite reports whether every value is a usable number.
func Finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
