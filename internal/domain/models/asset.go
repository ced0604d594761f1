package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrAssetNotObject is returned when an element of the assets list is not a JSON object.
var ErrAssetNotObject = errors.New("asset is not a JSON object")

// Asset is one caller-supplied instrument. Fields keeps every key of the
// incoming object, including symbol, so it can be echoed back verbatim.
type Asset struct {
	Symbol string `validate:"required"`
	Fields map[string]json.RawMessage
}

func (a *Asset) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return ErrAssetNotObject
	}
	if fields == nil {
		return ErrAssetNotObject
	}
	a.Fields = fields
	a.Symbol = ""

	raw, ok := fields["symbol"]
	if !ok {
		return nil
	}
	var symbol string
	if err := json.Unmarshal(raw, &symbol); err != nil {
		return fmt.Errorf("symbol must be a string: %w", err)
	}
	a.Symbol = symbol
	return nil
}

func (a Asset) MarshalJSON() ([]byte, error) {
	if a.Fields == nil {
		return json.Marshal(map[string]string{"symbol": a.Symbol})
	}
	return json.Marshal(a.Fields)
}

// ScanRequest is the POST body. Assets stay raw so one bad element does not
// invalidate the rest of the list.
type ScanRequest struct {
	Assets []json.RawMessage `json:"assets"`
}

// ScanResponse is the body returned to the dashboard.
type ScanResponse struct {
	Stocks []ScanResult `json:"stocks"`
}
