package yatgrender_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YaCodeDev/GoYaTgBotAPI/yatgrender"
	"github.com/YaCodeDev/GoYaTgBotAPI/yatgtypes"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		entities []yatgtypes.MessageEntity
		wantErr  error
	}{
		{
			name:     "ascending and adjacent",
			text:     "abcdef",
			entities: []yatgtypes.MessageEntity{entity(yatgtypes.EntityBold, 0, 2), entity(yatgtypes.EntityItalic, 2, 2)},
		},
		{
			name:     "empty list",
			text:     "abc",
			entities: nil,
		},
		{
			name:     "overlapping",
			text:     "abcdef",
			entities: []yatgtypes.MessageEntity{entity(yatgtypes.EntityBold, 0, 3), entity(yatgtypes.EntityItalic, 2, 2)},
			wantErr:  yatgrender.ErrEntityOrder,
		},
		{
			name:     "descending",
			text:     "abcdef",
			entities: []yatgtypes.MessageEntity{entity(yatgtypes.EntityBold, 4, 1), entity(yatgtypes.EntityItalic, 0, 1)},
			wantErr:  yatgrender.ErrEntityOrder,
		},
		{
			name:     "out of range",
			text:     "abc",
			entities: []yatgtypes.MessageEntity{entity(yatgtypes.EntityBold, 2, 2)},
			wantErr:  yatgrender.ErrInvalidEntityRange,
		},
		{
			name:     "offset at max int",
			text:     "hi",
			entities: []yatgtypes.MessageEntity{entity(yatgtypes.EntityBold, math.MaxInt, 1)},
			wantErr:  yatgrender.ErrInvalidEntityRange,
		},
		{
			name:     "surrogate split",
			text:     "a😀",
			entities: []yatgtypes.MessageEntity{entity(yatgtypes.EntityBold, 2, 1)},
			wantErr:  yatgrender.ErrInvalidEntityRange,
		},
	}

	for _, tt := range tests {
		t.Run("[Validate] - "+tt.name, func(t *testing.T) {
			t.Parallel()

			err := yatgrender.Validate(tt.text, tt.entities)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRender_WithValidation(t *testing.T) {
	t.Parallel()

	overlapping := []yatgtypes.MessageEntity{
		entity(yatgtypes.EntityBold, 0, 4),
		entity(yatgtypes.EntityItalic, 2, 2),
	}

	_, err := yatgrender.New().Render("abcd", overlapping)
	assert.NoError(t, err)

	_, err = yatgrender.New(yatgrender.WithValidation()).Render("abcd", overlapping)
	assert.ErrorIs(t, err, yatgrender.ErrEntityOrder)
}
