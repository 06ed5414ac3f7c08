package yatgtypes

// UpdateType names which payload an Update carries.
type UpdateType uint8

const (
	UpdateTypeNone UpdateType = iota
	UpdateTypeMessage
	UpdateTypeEditedMessage
	UpdateTypeChannelPost
	UpdateTypeEditedChannelPost
	UpdateTypeInlineQuery
	UpdateTypeChosenInlineResult
	UpdateTypeCallbackQuery
	UpdateTypeShippingQuery
	UpdateTypePreCheckoutQuery
	UpdateTypePoll
	UpdateTypePollAnswer
)

var updateTypeNames = [...]string{
	UpdateTypeNone:               "",
	UpdateTypeMessage:            "message",
	UpdateTypeEditedMessage:      "edited_message",
	UpdateTypeChannelPost:        "channel_post",
	UpdateTypeEditedChannelPost:  "edited_channel_post",
	UpdateTypeInlineQuery:        "inline_query",
	UpdateTypeChosenInlineResult: "chosen_inline_result",
	UpdateTypeCallbackQuery:      "callback_query",
	UpdateTypeShippingQuery:      "shipping_query",
	UpdateTypePreCheckoutQuery:   "pre_checkout_query",
	UpdateTypePoll:               "poll",
	UpdateTypePollAnswer:         "poll_answer",
}

// UpdateTypes lists every payload type in wire order, which is also the
// order used for allowed_updates.
func UpdateTypes() []UpdateType {
	types := make([]UpdateType, 0, len(updateTypeNames)-1)
	for i := UpdateTypeMessage; int(i) < len(updateTypeNames); i++ {
		types = append(types, i)
	}

	return types
}

// String returns the wire field name of the payload.
func (u UpdateType) String() string {
	if int(u) < len(updateTypeNames) {
		return updateTypeNames[u]
	}

	return "unknown"
}

func ParseUpdateType(name string) (UpdateType, error) {
	for i, candidate := range updateTypeNames {
		if i != int(UpdateTypeNone) && candidate == name {
			return UpdateType(i), nil
		}
	}

	return UpdateTypeNone, ErrUnknownUpdateType
}

func (u UpdateType) MarshalText() ([]byte, error) {
	if u == UpdateTypeNone || int(u) >= len(updateTypeNames) {
		return nil, ErrUnknownUpdateType
	}

	return []byte(u.String()), nil
}

func (u *UpdateType) UnmarshalText(text []byte) error {
	parsed, err := ParseUpdateType(string(text))
	if err != nil {
		return err
	}

	*u = parsed

	return nil
}
