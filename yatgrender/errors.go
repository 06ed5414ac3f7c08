package yatgrender

import "errors"

var (
	ErrInvalidEntityRange = errors.New("entity range is outside the text or splits a surrogate pair")
	ErrMissingMentionUser = errors.New("text_mention entity has no user")
	ErrEntityOrder        = errors.New("entities are not ascending and non-overlapping")

	ErrUnknownMode   = errors.New("unknown render mode")
	ErrUnknownPreset = errors.New("unknown render preset")
)
