package mappers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chilly266futon/futuresBot/internal/binance"
	"github.com/chilly266futon/futuresBot/internal/domain"
)

func TestOrderAckFromResponse(t *testing.T) {
	ack := OrderAckFromResponse(&binance.OrderResponse{
		OrderID:       123,
		ClientOrderID: "abc",
		Symbol:        "BTCUSDT",
		Side:          "SELL",
		Type:          "LIMIT",
		Status:        "NEW",
		OrigQty:       "0.01",
		ExecutedQty:   "0",
		Price:         "65000",
	})

	assert.Equal(t, int64(123), ack.OrderID)
	assert.Equal(t, "abc", ack.ClientOrderID)
	assert.Equal(t, "NEW", ack.Status)
	assert.Equal(t, "0.01", ack.OrigQuantity.String())
	assert.True(t, ack.ExecutedQuantity.IsZero())
	// avgPrice absent: falls back to the set price.
	assert.Equal(t, "65000", ack.AvgPrice.String())
}

func TestOrderAckFromResponse_ToleratesMissingFields(t *testing.T) {
	ack := OrderAckFromResponse(&binance.OrderResponse{
		OrderID: 5,
		OrigQty: "not-a-number",
	})

	assert.Equal(t, int64(5), ack.OrderID)
	assert.True(t, ack.OrigQuantity.IsZero())
	assert.True(t, ack.ExecutedQuantity.IsZero())
	assert.True(t, ack.AvgPrice.IsZero())
}

func TestOrderAckFromResponse_PrefersAvgPrice(t *testing.T) {
	ack := OrderAckFromResponse(&binance.OrderResponse{
		AvgPrice: "64500.5",
		Price:    "65000",
	})

	assert.Equal(t, "64500.5", ack.AvgPrice.String())
}

func TestResultFromError(t *testing.T) {
	apiResult := ResultFromError(&binance.APIError{Code: -2011, Msg: "Unknown order sent.", Attempts: 3})
	assert.Equal(t, domain.ResultAPIFailure, apiResult.Kind)
	assert.Equal(t, -2011, apiResult.Code)
	assert.Equal(t, "Unknown order sent.", apiResult.Reason)
	assert.Equal(t, 3, apiResult.Attempts)

	netResult := ResultFromError(&binance.NetworkError{Attempts: 3, Err: errors.New("timeout")})
	assert.Equal(t, domain.ResultNetworkFailure, netResult.Kind)
	assert.Equal(t, "timeout", netResult.Reason)
	assert.Equal(t, 3, netResult.Attempts)

	otherResult := ResultFromError(errors.New("decode order response: unexpected EOF"))
	assert.Equal(t, domain.ResultNetworkFailure, otherResult.Kind)
	assert.Equal(t, 1, otherResult.Attempts)
}
