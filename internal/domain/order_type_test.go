package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderType(t *testing.T) {
	tests := []struct {
		input string
		want  OrderType
	}{
		{"MARKET", OrderTypeMarket},
		{"market", OrderTypeMarket},
		{" limit ", OrderTypeLimit},
		{"STOP_MARKET", OrderTypeStopMarket},
	}

	for _, tt := range tests {
		got, err := ParseOrderType(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseOrderType("STOP_LIMIT")
	require.ErrorIs(t, err, ErrInvalidType)
}

func TestOrderType_RoundTrip(t *testing.T) {
	for _, ot := range []OrderType{OrderTypeMarket, OrderTypeLimit, OrderTypeStopMarket} {
		parsed, err := ParseOrderType(ot.String())
		require.NoError(t, err)
		assert.Equal(t, ot, parsed)
	}
}

func TestOrderType_RequiresPrice(t *testing.T) {
	assert.False(t, OrderTypeMarket.RequiresPrice())
	assert.True(t, OrderTypeLimit.RequiresPrice())
	assert.True(t, OrderTypeStopMarket.RequiresPrice())
}

func TestParseSide(t *testing.T) {
	buy, err := ParseSide("buy")
	require.NoError(t, err)
	assert.Equal(t, SideBuy, buy)

	sell, err := ParseSide(" SELL ")
	require.NoError(t, err)
	assert.Equal(t, SideSell, sell)

	_, err = ParseSide("HOLD")
	require.ErrorIs(t, err, ErrInvalidSide)
}
