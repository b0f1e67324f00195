package domain

import "errors"

var (
	ErrEmptySymbol     = errors.New("symbol must not be empty")
	ErrInvalidSymbol   = errors.New("symbol must be 3-20 uppercase letters or digits")
	ErrInvalidSide     = errors.New("invalid side")
	ErrInvalidType     = errors.New("invalid order type")
	ErrInvalidQuantity = errors.New("quantity must be a positive number")
	ErrMissingPrice    = errors.New("price is required for this order type")
	ErrInvalidPrice    = errors.New("price must be a positive number")
)
