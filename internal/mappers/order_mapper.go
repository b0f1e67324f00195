package mappers

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/chilly266futon/futuresBot/internal/binance"
	"github.com/chilly266futon/futuresBot/internal/domain"
)

// OrderAckFromResponse translates the exchange's wire acknowledgement
// into the domain model. Amount fields are parsed tolerantly: anything
// the exchange omitted or mangled becomes zero rather than an error.
func OrderAckFromResponse(resp *binance.OrderResponse) *domain.OrderAck {
	avgPrice := parseDecimal(resp.AvgPrice)
	if avgPrice.IsZero() {
		avgPrice = parseDecimal(resp.Price)
	}

	return &domain.OrderAck{
		OrderID:          resp.OrderID,
		ClientOrderID:    resp.ClientOrderID,
		Symbol:           resp.Symbol,
		Side:             resp.Side,
		Type:             resp.Type,
		Status:           resp.Status,
		OrigQuantity:     parseDecimal(resp.OrigQty),
		ExecutedQuantity: parseDecimal(resp.ExecutedQty),
		AvgPrice:         avgPrice,
	}
}

// ResultFromError maps an execution error onto the matching
// ExecutionResult variant.
func ResultFromError(err error) domain.ExecutionResult {
	var apiErr *binance.APIError
	if errors.As(err, &apiErr) {
		return domain.APIFailure(apiErr.Code, apiErr.Msg, apiErr.Attempts)
	}

	var netErr *binance.NetworkError
	if errors.As(err, &netErr) {
		reason := "transport failure"
		if netErr.Err != nil {
			reason = netErr.Err.Error()
		}
		return domain.NetworkFailure(reason, netErr.Attempts)
	}

	return domain.NetworkFailure(err.Error(), 1)
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
