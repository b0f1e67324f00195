package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/chilly266futon/futuresBot/internal/domain"
)

var symbolPattern = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

// Validate checks a raw order request and returns its validated form.
// Rules are applied in order and the first failure wins. The function is
// pure: no I/O, identical input always yields identical output.
func Validate(req domain.OrderRequest) (domain.ValidatedOrder, error) {
	symbol, err := validateSymbol(req.Symbol)
	if err != nil {
		return domain.ValidatedOrder{}, err
	}

	side, err := domain.ParseSide(req.Side)
	if err != nil {
		return domain.ValidatedOrder{}, fmt.Errorf("%w: %q", err, req.Side)
	}

	orderType, err := domain.ParseOrderType(req.Type)
	if err != nil {
		return domain.ValidatedOrder{}, fmt.Errorf("%w: %q", err, req.Type)
	}

	quantity, err := validatePositiveDecimal(req.Quantity, domain.ErrInvalidQuantity)
	if err != nil {
		return domain.ValidatedOrder{}, err
	}

	price, err := validatePrice(req.Price, orderType)
	if err != nil {
		return domain.ValidatedOrder{}, err
	}

	return domain.ValidatedOrder{
		Symbol:   symbol,
		Side:     side,
		Type:     orderType,
		Quantity: quantity,
		Price:    price,
	}, nil
}

func validateSymbol(symbol string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s == "" {
		return "", domain.ErrEmptySymbol
	}
	if !symbolPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidSymbol, s)
	}
	return s, nil
}

// validatePrice enforces the per-type price contract: LIMIT and
// STOP_MARKET require a positive price, MARKET ignores any supplied
// price rather than rejecting it.
func validatePrice(price string, orderType domain.OrderType) (*decimal.Decimal, error) {
	if !orderType.RequiresPrice() {
		return nil, nil
	}
	if strings.TrimSpace(price) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingPrice, orderType)
	}
	p, err := validatePositiveDecimal(price, domain.ErrInvalidPrice)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func validatePositiveDecimal(value string, sentinel error) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", sentinel, value)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: got %s", sentinel, d)
	}
	return d, nil
}
