package service

import "errors"

// Domain errors surfaced to API clients. The messages are part of the
// public contract; clients match on them.
var (
	ErrBrandNotFound         = errors.New("cannot find brand with given ID")
	ErrProductNotFound       = errors.New("cannot find product with given ID")
	ErrDealerProductNotFound = errors.New("cannot find product with given ID associated with the current dealer")
	ErrDealerNotFound        = errors.New("cannot find the current dealer")
	ErrInvalidVariantInput   = errors.New("cannot create product with given information")
	ErrInvalidPrice          = errors.New("price must be a well-formed decimal value")
	ErrVariantDelete         = errors.New("cannot delete product with given ID")
)

// IsNotFound reports whether err belongs to the not-found error family
func IsNotFound(err error) bool {
	return errors.Is(err, ErrBrandNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrDealerProductNotFound) ||
		errors.Is(err, ErrDealerNotFound) ||
		errors.Is(err, ErrVariantDelete)
}

// IsInvalidArgument reports whether err belongs to the bad-input error family
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidVariantInput) || errors.Is(err, ErrInvalidPrice)
}
