package domain

import (
	"github.com/shopspring/decimal"
)

// OrderRequest is the raw user intent as it arrives from the CLI.
// Nothing is trusted here; Validate turns it into a ValidatedOrder.
type OrderRequest struct {
	Symbol   string
	Side     string
	Type     string
	Quantity string
	Price    string
}

// ValidatedOrder is an order that passed validation. Quantity and Price
// are exact decimals carried unchanged to the wire format. Price is nil
// for MARKET orders.
type ValidatedOrder struct {
	Symbol   string
	Side     Side
	Type     OrderType
	Quantity decimal.Decimal
	Price    *decimal.Decimal
}

// OrderAck is the exchange's acknowledgement of a placed order, parsed
// defensively: fields the exchange omitted stay at their zero values.
type OrderAck struct {
	OrderID          int64
	ClientOrderID    string
	Symbol           string
	Side             string
	Type             string
	Status           string
	OrigQuantity     decimal.Decimal
	ExecutedQuantity decimal.Decimal
	AvgPrice         decimal.Decimal
}
