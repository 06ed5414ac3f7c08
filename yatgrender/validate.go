package yatgrender

import (
	"fmt"
	"net/http"

	"github.com/YaCodeDev/GoYaTgBotAPI/yaerrors"
	"github.com/YaCodeDev/GoYaTgBotAPI/yatgtypes"
)

// Validate checks that every entity fits text without splitting a
// surrogate pair, and that entities are ascending and do not overlap.
// Nested entities (bold inside italic) overlap and are rejected, since
// Render would emit their text twice.
func Validate(text string, entities []yatgtypes.MessageEntity) yaerrors.Error {
	return validate(toUTF16(text), entities)
}

func (r *Renderer) Validate(text string, entities []yatgtypes.MessageEntity) yaerrors.Error {
	return Validate(text, entities)
}

func validate(units utf16Text, entities []yatgtypes.MessageEntity) yaerrors.Error {
	end := 0

	for i := range entities {
		entity := &entities[i]

		if err := checkRange(units, i, entity); err != nil {
			return err
		}

		if entity.Offset < end {
			return yaerrors.FromError(
				http.StatusBadRequest,
				ErrEntityOrder,
				fmt.Sprintf(
					"[RENDER] entity %d (%s) starts at %d before the previous end %d",
					i, entity.Type, entity.Offset, end,
				),
			)
		}

		end = entity.End()
	}

	return nil
}
