package binance

// OrderResponse mirrors the order endpoint's JSON body. Numeric amounts
// arrive as strings and are kept that way here; the exchange dictates
// the field set, so anything missing simply stays empty.
type OrderResponse struct {
	OrderID       int64  `json:"orderId"`
	ClientOrderID string `json:"clientOrderId"`
	Symbol        string `json:"symbol"`
	Side          string `json:"side"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	OrigQty       string `json:"origQty"`
	ExecutedQty   string `json:"executedQty"`
	AvgPrice      string `json:"avgPrice"`
	Price         string `json:"price"`
}

type serverTimeResponse struct {
	ServerTime int64 `json:"serverTime"`
}
