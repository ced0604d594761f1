package repository

import "context"

// PriceProvider returns daily closing prices, oldest first, covering at
// least lookbackDays calendar days.
type PriceProvider interface {
	FetchDailyCloses(ctx context.Context, symbol string, lookbackDays int) ([]float64, error)
}

type Metrics interface {
	RecordScan()
	RecordAsset(outcome string)
	RecordSignal(action string)
	RecordLatency(op string, seconds float64)
}
