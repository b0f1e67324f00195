package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chilly266futon/futuresBot/internal/binance"
	"github.com/chilly266futon/futuresBot/internal/domain"
)

type fakeExchangeClient struct {
	resp      *binance.OrderResponse
	err       error
	pingErr   error
	gotParams *binance.Params
	calls     int
}

func (f *fakeExchangeClient) PlaceOrder(ctx context.Context, params *binance.Params) (*binance.OrderResponse, error) {
	f.calls++
	f.gotParams = params
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeExchangeClient) Ping(ctx context.Context) error {
	return f.pingErr
}

func newTestService(client *fakeExchangeClient) *OrderService {
	return NewOrderService(client, zap.NewNop())
}

func TestPlaceOrder_LimitSell(t *testing.T) {
	client := &fakeExchangeClient{
		resp: &binance.OrderResponse{OrderID: 123, Status: "NEW"},
	}
	svc := newTestService(client)

	result := svc.PlaceOrder(context.Background(), domain.OrderRequest{
		Symbol:   "BTCUSDT",
		Side:     "SELL",
		Type:     "LIMIT",
		Quantity: "0.01",
		Price:    "65000",
	})

	require.True(t, result.OK())
	require.NotNil(t, result.Order)
	assert.Equal(t, int64(123), result.Order.OrderID)
	assert.Equal(t, "NEW", result.Order.Status)
	assert.True(t, result.Order.ExecutedQuantity.IsZero())

	params := client.gotParams
	require.NotNil(t, params)
	assert.Equal(t, []string{"symbol", "side", "type", "quantity", "price", "timeInForce"}, params.Keys())
	assert.Equal(t, "BTCUSDT", params.Get("symbol"))
	assert.Equal(t, "SELL", params.Get("side"))
	assert.Equal(t, "LIMIT", params.Get("type"))
	assert.Equal(t, "0.01", params.Get("quantity"))
	assert.Equal(t, "65000", params.Get("price"))
	assert.Equal(t, "GTC", params.Get("timeInForce"))
}

func TestPlaceOrder_MarketDropsPrice(t *testing.T) {
	client := &fakeExchangeClient{
		resp: &binance.OrderResponse{OrderID: 7, Status: "FILLED", ExecutedQty: "0.5", AvgPrice: "64123.4"},
	}
	svc := newTestService(client)

	result := svc.PlaceOrder(context.Background(), domain.OrderRequest{
		Symbol:   "BTCUSDT",
		Side:     "BUY",
		Type:     "MARKET",
		Quantity: "0.5",
		Price:    "99999",
	})

	require.True(t, result.OK())
	assert.Equal(t, []string{"symbol", "side", "type", "quantity"}, client.gotParams.Keys())
	assert.Empty(t, client.gotParams.Get("price"))
	assert.Empty(t, client.gotParams.Get("timeInForce"))
	assert.Equal(t, "0.5", result.Order.ExecutedQuantity.String())
	assert.Equal(t, "64123.4", result.Order.AvgPrice.String())
}

func TestPlaceOrder_StopMarketMapsTriggerPrice(t *testing.T) {
	client := &fakeExchangeClient{
		resp: &binance.OrderResponse{OrderID: 9, Status: "NEW"},
	}
	svc := newTestService(client)

	result := svc.PlaceOrder(context.Background(), domain.OrderRequest{
		Symbol:   "BTCUSDT",
		Side:     "BUY",
		Type:     "STOP_MARKET",
		Quantity: "0.01",
		Price:    "30000",
	})

	require.True(t, result.OK())
	assert.Equal(t, []string{"symbol", "side", "type", "quantity", "stopPrice"}, client.gotParams.Keys())
	assert.Equal(t, "30000", client.gotParams.Get("stopPrice"))
	assert.Empty(t, client.gotParams.Get("price"))
	assert.Empty(t, client.gotParams.Get("timeInForce"))
}

func TestPlaceOrder_ValidationFailureSkipsExecutor(t *testing.T) {
	client := &fakeExchangeClient{}
	svc := newTestService(client)

	result := svc.PlaceOrder(context.Background(), domain.OrderRequest{
		Symbol:   "BTCUSDT",
		Side:     "BUY",
		Type:     "LIMIT",
		Quantity: "0.01",
	})

	assert.Equal(t, domain.ResultValidationFailure, result.Kind)
	assert.Contains(t, result.Reason, "price is required")
	assert.Zero(t, client.calls)
}

func TestPlaceOrder_APIFailure(t *testing.T) {
	client := &fakeExchangeClient{
		err: &binance.APIError{Code: -2019, Msg: "Margin is insufficient."},
	}
	svc := newTestService(client)

	result := svc.PlaceOrder(context.Background(), domain.OrderRequest{
		Symbol:   "BTCUSDT",
		Side:     "BUY",
		Type:     "MARKET",
		Quantity: "0.01",
	})

	assert.Equal(t, domain.ResultAPIFailure, result.Kind)
	assert.Equal(t, -2019, result.Code)
	assert.Equal(t, "Margin is insufficient.", result.Reason)
}

func TestPlaceOrder_NetworkFailure(t *testing.T) {
	client := &fakeExchangeClient{
		err: &binance.NetworkError{Attempts: 3, Err: errors.New("connection reset")},
	}
	svc := newTestService(client)

	result := svc.PlaceOrder(context.Background(), domain.OrderRequest{
		Symbol:   "BTCUSDT",
		Side:     "BUY",
		Type:     "MARKET",
		Quantity: "0.01",
	})

	assert.Equal(t, domain.ResultNetworkFailure, result.Kind)
	assert.Equal(t, 3, result.Attempts)
	assert.Equal(t, "connection reset", result.Reason)
}

func TestCheckConnectivity(t *testing.T) {
	healthy := &fakeExchangeClient{}
	require.NoError(t, newTestService(healthy).CheckConnectivity(context.Background()))

	down := &fakeExchangeClient{pingErr: errors.New("no route to host")}
	require.Error(t, newTestService(down).CheckConnectivity(context.Background()))
}
