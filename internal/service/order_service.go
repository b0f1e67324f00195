package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chilly266futon/futuresBot/internal/binance"
	"github.com/chilly266futon/futuresBot/internal/domain"
	"github.com/chilly266futon/futuresBot/internal/mappers"
	"github.com/chilly266futon/futuresBot/internal/validation"
)

// ExchangeClient is the executor surface the service needs.
type ExchangeClient interface {
	PlaceOrder(ctx context.Context, params *binance.Params) (*binance.OrderResponse, error)
	Ping(ctx context.Context) error
}

type OrderService struct {
	client ExchangeClient
	logger *zap.Logger
}

func NewOrderService(client ExchangeClient, logger *zap.Logger) *OrderService {
	return &OrderService{
		client: client,
		logger: logger,
	}
}

// PlaceOrder validates the request, builds the per-type parameter set,
// hands it to the executor and translates the outcome. It always returns
// a structured result; nothing is thrown past this boundary.
func (s *OrderService) PlaceOrder(ctx context.Context, req domain.OrderRequest) domain.ExecutionResult {
	traceID := uuid.NewString()

	order, err := validation.Validate(req)
	if err != nil {
		s.logger.Warn("order rejected by validation",
			zap.String("trace_id", traceID),
			zap.Error(err),
		)
		return domain.ValidationFailure(err)
	}

	params := buildOrderParams(order)

	s.logger.Info("placing order",
		zap.String("trace_id", traceID),
		zap.String("symbol", order.Symbol),
		zap.String("side", order.Side.String()),
		zap.String("type", order.Type.String()),
		zap.String("quantity", order.Quantity.String()),
	)

	resp, err := s.client.PlaceOrder(ctx, params)
	if err != nil {
		s.logger.Error("order placement failed",
			zap.String("trace_id", traceID),
			zap.Error(err),
		)
		return mappers.ResultFromError(err)
	}

	ack := mappers.OrderAckFromResponse(resp)

	s.logger.Info("order placed",
		zap.String("trace_id", traceID),
		zap.Int64("order_id", ack.OrderID),
		zap.String("status", ack.Status),
		zap.String("executed_qty", ack.ExecutedQuantity.String()),
	)

	return domain.Success(ack)
}

// CheckConnectivity pings the exchange before any order is placed. A
// failure here short-circuits the invocation without touching the order
// endpoint.
func (s *OrderService) CheckConnectivity(ctx context.Context) error {
	return s.client.Ping(ctx)
}

// buildOrderParams lays out the wire parameters for each order type.
// Decimals are rendered with String() so the exact input representation
// survives to the canonical query string.
func buildOrderParams(order domain.ValidatedOrder) *binance.Params {
	params := binance.NewParams()
	params.Set("symbol", order.Symbol)
	params.Set("side", order.Side.String())
	params.Set("type", order.Type.String())
	params.Set("quantity", order.Quantity.String())

	switch order.Type {
	case domain.OrderTypeLimit:
		params.Set("price", order.Price.String())
		params.Set("timeInForce", "GTC")
	case domain.OrderTypeStopMarket:
		// The single price argument is the trigger price; these are
		// stop-to-market orders, not stop-limit.
		params.Set("stopPrice", order.Price.String())
	}

	return params
}
