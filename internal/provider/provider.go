// Package provider holds what price providers share.
package provider

import "errors"

// ErrNoData is returned when the upstream source has no bars for a symbol.
var ErrNoData = errors.New("no price data")
