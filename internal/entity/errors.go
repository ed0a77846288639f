package entity

import "errors"

// Error taxonomy shared by usecases and HTTP controllers. Access decisions
// (deny/blurred) are not errors; only constraint violations and missing
// targets are.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateReport    = errors.New("already reported")
	ErrDuplicateFavorite  = errors.New("already favorited")
)
