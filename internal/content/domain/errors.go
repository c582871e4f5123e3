package domain

import "errors"

// Sentinel errors shared by the content repositories.
var (
	ErrNotFound = errors.New("record not found")
)
