package yacache

import "errors"

var (
	ErrKeyNotFound = errors.New("key not found")

	ErrFailedToSet          = errors.New("failed to set value")
	ErrFailedToGetValue     = errors.New("failed to get value")
	ErrFailedToGetDelValue  = errors.New("failed to get and delete value")
	ErrFailedToExists       = errors.New("failed to check existence")
	ErrFailedToDelValue     = errors.New("failed to delete value")
	ErrFailedPing           = errors.New("failed to ping")
	ErrFailedToCloseBackend = errors.New("failed to close backend")
)
