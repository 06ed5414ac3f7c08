package yatgtypes

import "errors"

var (
	ErrUnknownContentType = errors.New("unknown content type")
	ErrUnknownUpdateType  = errors.New("unknown update type")
)
