package provider

import "errors"

var (
	ErrUnknownStorage     = errors.New("provider.unknown_storage")
	ErrUnsupportedBackend = errors.New("provider.unsupported_backend")
	ErrInvalidAdapter     = errors.New("provider.invalid_adapter")
)
