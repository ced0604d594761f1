package models

import "encoding/json"

// ScanResult is an asset enriched with its evaluation. Computed keys win over
// passthrough keys of the same name.
type ScanResult struct {
	Asset  Asset
	Price  string
	Change string
	RSI    int
	Trend  Trend
	Signal Signal
}

// NewScanResult merges an asset with its evaluation.
func NewScanResult(a Asset, ev Evaluation) ScanResult {
	return ScanResult{
		Asset:  a,
		Price:  ev.Price,
		Change: ev.Change,
		RSI:    ev.RSI,
		Trend:  ev.Trend,
		Signal: ev.Signal,
	}
}

func (r ScanResult) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(r.Asset.Fields)+5)
	for k, v := range r.Asset.Fields {
		out[k] = v
	}
	if _, ok := out["symbol"]; !ok {
		out["symbol"] = r.Asset.Symbol
	}
	out["price"] = r.Price
	out["change"] = r.Change
	out["rsi"] = r.RSI
	out["trend"] = r.Trend
	out["signal"] = r.Signal
	return json.Marshal(out)
}
