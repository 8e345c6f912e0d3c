package service

import "errors"

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrOfferUnavailable   = errors.New("offer is unavailable")
	ErrForbidden          = errors.New("forbidden")
	ErrNoFulfillment      = errors.New("at least one of pickup or delivery must be enabled")
	ErrInvalidPortionSize = errors.New("invalid portion size")
	ErrInvalidStatus      = errors.New("invalid offer status")
	ErrImportDisabled     = errors.New("sheet import is not configured")
)
