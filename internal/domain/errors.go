package domain

import "errors"

var (
	ErrPartitionNotFound = errors.New("knowledge partition not found")
	ErrEmptyCompletion   = errors.New("provider returned no choices")
)
