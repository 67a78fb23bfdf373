package model

// TradeType is the direction of an option trade.
type TradeType string

const (
	TradeTypeBuy  TradeType = "BUY"
	TradeTypeSell TradeType = "SELL"
)

// OptionType is the kind of option contract.
type OptionType string

const (
	OptionTypeCall OptionType = "CALL"
	OptionTypePut  OptionType = "PUT"
)

// TradeStatus is the lifecycle label of a trade or group.
type TradeStatus string

const (
	TradeStatusOpen        TradeStatus = "OPEN"
	TradeStatusClosingSoon TradeStatus = "CLOSING_SOON"
	TradeStatusClosed      TradeStatus = "CLOSED"
)

// StrategyType is the multi-leg strategy a group represents.
type StrategyType string

const (
	StrategyCalendarSpread      StrategyType = "CALENDAR_SPREAD"
	StrategyRatioCalendarSpread StrategyType = "RATIO_CALENDAR_SPREAD"
	StrategyCustom              StrategyType = "CUSTOM"
)

// Valid reports whether t is a known trade type.
func (t TradeType) Valid() bool {
	return t == TradeTypeBuy || t == TradeTypeSell
}

// Valid reports whether o is a known option type.
func (o OptionType) Valid() bool {
	return o == OptionTypeCall || o == OptionTypePut
}

// Valid reports whether s is a known status.
func (s TradeStatus) Valid() bool {
	switch s {
	case TradeStatusOpen, TradeStatusClosingSoon, TradeStatusClosed:
		return true
	}
	return false
}

// Valid reports whether s is a known strategy type.
func (s StrategyType) Valid() bool {
	switch s {
	case StrategyCalendarSpread, StrategyRatioCalendarSpread, StrategyCustom:
		return true
	}
	return false
}
