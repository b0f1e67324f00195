package domain

import "strings"

type OrderType uint8

const (
	OrderTypeUnspecified OrderType = iota
	OrderTypeMarket
	OrderTypeLimit
	OrderTypeStopMarket
)

func (t OrderType) String() string {
	switch t {
	case OrderTypeMarket:
		return "MARKET"
	case OrderTypeLimit:
		return "LIMIT"
	case OrderTypeStopMarket:
		return "STOP_MARKET"
	default:
		return "UNSPECIFIED"
	}
}

// RequiresPrice reports whether orders of this type must carry a price:
// a limit price for LIMIT, a trigger price for STOP_MARKET.
func (t OrderType) RequiresPrice() bool {
	return t == OrderTypeLimit || t == OrderTypeStopMarket
}

func ParseOrderType(s string) (OrderType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MARKET":
		return OrderTypeMarket, nil
	case "LIMIT":
		return OrderTypeLimit, nil
	case "STOP_MARKET":
		return OrderTypeStopMarket, nil
	default:
		return OrderTypeUnspecified, ErrInvalidType
	}
}
