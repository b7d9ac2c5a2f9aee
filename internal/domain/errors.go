package domain

import "errors"

var (
	ErrNotFound      = errors.New("toy not found")
	ErrInvalidID     = errors.New("invalid toy id")
	ErrUnknownFilter = errors.New("unknown filter parameter")
)
