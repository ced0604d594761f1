package models

// Action is the categorical recommendation shown on the dashboard.
type Action string

const (
	ActionBuy        Action = "BUY"
	ActionSell       Action = "SELL"
	ActionAccumulate Action = "ACCUMULATE"
	ActionHold       Action = "HOLD"
)

// Trend compares the last close with the 50-period average.
type Trend string

const (
	TrendRising  Trend = "RISING"
	TrendFalling Trend = "FALLING"
)

// Signal carries an action with its presentation token and reason code.
type Signal struct {
	Action Action `json:"action"`
	Color  string `json:"color"`
	Reason string `json:"reason"`
}

var (
	SignalBuy = Signal{
		Action: ActionBuy,
		Color:  "text-indigo-300 border-indigo-500 bg-indigo-500/20",
		Reason: "OVERSOLD (CHEAP)",
	}
	SignalSell = Signal{
		Action: ActionSell,
		Color:  "text-pink-300 border-pink-500 bg-pink-500/20",
		Reason: "OVERBOUGHT (EXPENSIVE)",
	}
	SignalAccumulate = Signal{
		Action: ActionAccumulate,
		Color:  "text-emerald-300 border-emerald-500 bg-emerald-500/20",
		Reason: "UPTREND",
	}
	SignalHold = Signal{
		Action: ActionHold,
		Color:  "text-slate-400 border-slate-700 bg-slate-800",
		Reason: "NEUTRAL",
	}
)

// Indicators are computed fresh for every request and never stored.
type Indicators struct {
	CurrentPrice  float64
	PreviousClose float64
	RSI14         float64
	SMA50         float64
}

// Evaluation is the signal engine output for one price series.
type Evaluation struct {
	Indicators Indicators
	Price      string // 2 decimals
	Change     string // percent, 2 decimals
	RSI        int    // truncated toward zero
	Trend      Trend
	Signal     Signal
}
