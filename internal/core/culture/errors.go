package culture

import "errors"

var (
	ErrInvalidCulture     = errors.New("culture: invalid language tag")
	ErrUnsupportedCulture = errors.New("culture: unsupported culture")
	ErrNoSupportedCulture = errors.New("culture: no supported cultures configured")
)
