package service

import "errors"

var (
	ErrEmptyCart      = errors.New("cart is empty, nothing to checkout")
	ErrNotOwner       = errors.New("acting user does not own this resource")
	ErrInvalidListing = errors.New("listing is missing required fields")
	ErrInvalidPost    = errors.New("post is missing required fields")
)
