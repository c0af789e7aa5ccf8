package admin

import "errors"

var (
	ErrInvalidPassword = errors.New("invalid admin password")
	ErrUnknownKind     = errors.New("unknown booking kind")
)
