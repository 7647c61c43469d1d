package entity

import "errors"

// Domain errors.
var (
	// ErrInvalidColorScheme is returned for a scheme name other than light or dark.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
)
