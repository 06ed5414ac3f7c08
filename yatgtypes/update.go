package yatgtypes

// Update is one incoming event. Payload holds exactly one variant, or nil
// when the update carried none of the known payload fields.
type Update struct {
	UpdateID int64
	Payload  UpdatePayload
}

// UpdatePayload is implemented only by the *Update variant types of this
// package. Variants built by yatgdecoder never hold a nil pointer.
type UpdatePayload interface {
	UpdateType() UpdateType
	isUpdatePayload()
}

type (
	MessageUpdate            struct{ Message *Message }
	EditedMessageUpdate      struct{ Message *Message }
	ChannelPostUpdate        struct{ Message *Message }
	EditedChannelPostUpdate  struct{ Message *Message }
	InlineQueryUpdate        struct{ InlineQuery *InlineQuery }
	ChosenInlineResultUpdate struct{ ChosenInlineResult *ChosenInlineResult }
	CallbackQueryUpdate      struct{ CallbackQuery *CallbackQuery }
	ShippingQueryUpdate      struct{ ShippingQuery *ShippingQuery }
	PreCheckoutQueryUpdate   struct{ PreCheckoutQuery *PreCheckoutQuery }
	PollUpdate               struct{ Poll *Poll }
	PollAnswerUpdate         struct{ PollAnswer *PollAnswer }
)

func (*MessageUpdate) UpdateType() UpdateType            { return UpdateTypeMessage }
func (*EditedMessageUpdate) UpdateType() UpdateType      { return UpdateTypeEditedMessage }
func (*ChannelPostUpdate) UpdateType() UpdateType        { return UpdateTypeChannelPost }
func (*EditedChannelPostUpdate) UpdateType() UpdateType  { return UpdateTypeEditedChannelPost }
func (*InlineQueryUpdate) UpdateType() UpdateType        { return UpdateTypeInlineQuery }
func (*ChosenInlineResultUpdate) UpdateType() UpdateType { return UpdateTypeChosenInlineResult }
func (*CallbackQueryUpdate) UpdateType() UpdateType      { return UpdateTypeCallbackQuery }
func (*ShippingQueryUpdate) UpdateType() UpdateType      { return UpdateTypeShippingQuery }
func (*PreCheckoutQueryUpdate) UpdateType() UpdateType   { return UpdateTypePreCheckoutQuery }
func (*PollUpdate) UpdateType() UpdateType               { return UpdateTypePoll }
func (*PollAnswerUpdate) UpdateType() UpdateType         { return UpdateTypePollAnswer }

func (*MessageUpdate) isUpdatePayload()            {}
func (*EditedMessageUpdate) isUpdatePayload()      {}
func (*ChannelPostUpdate) isUpdatePayload()        {}
func (*EditedChannelPostUpdate) isUpdatePayload()  {}
func (*InlineQueryUpdate) isUpdatePayload()        {}
func (*ChosenInlineResultUpdate) isUpdatePayload() {}
func (*CallbackQueryUpdate) isUpdatePayload()      {}
func (*ShippingQueryUpdate) isUpdatePayload()      {}
func (*PreCheckoutQueryUpdate) isUpdatePayload()   {}
func (*PollUpdate) isUpdatePayload()               {}
func (*PollAnswerUpdate) isUpdatePayload()         {}

// Type returns the payload type, UpdateTypeNone when there is no payload.
func (u *Update) Type() UpdateType {
	if u.Payload == nil {
		return UpdateTypeNone
	}

	return u.Payload.UpdateType()
}

func (u *Update) Message() *Message {
	if p, ok := u.Payload.(*MessageUpdate); ok && p != nil {
		return p.Message
	}

	return nil
}

func (u *Update) EditedMessage() *Message {
	if p, ok := u.Payload.(*EditedMessageUpdate); ok && p != nil {
		return p.Message
	}

	return nil
}

func (u *Update) ChannelPost() *Message {
	if p, ok := u.Payload.(*ChannelPostUpdate); ok && p != nil {
		return p.Message
	}

	return nil
}

func (u *Update) EditedChannelPost() *Message {
	if p, ok := u.Payload.(*EditedChannelPostUpdate); ok && p != nil {
		return p.Message
	}

	return nil
}

func (u *Update) InlineQuery() *InlineQuery {
	if p, ok := u.Payload.(*InlineQueryUpdate); ok && p != nil {
		return p.InlineQuery
	}

	return nil
}

func (u *Update) ChosenInlineResult() *ChosenInlineResult {
	if p, ok := u.Payload.(*ChosenInlineResultUpdate); ok && p != nil {
		return p.ChosenInlineResult
	}

	return nil
}

func (u *Update) CallbackQuery() *CallbackQuery {
	if p, ok := u.Payload.(*CallbackQueryUpdate); ok && p != nil {
		return p.CallbackQuery
	}

	return nil
}

func (u *Update) ShippingQuery() *ShippingQuery {
	if p, ok := u.Payload.(*ShippingQueryUpdate); ok && p != nil {
		return p.ShippingQuery
	}

	return nil
}

func (u *Update) PreCheckoutQuery() *PreCheckoutQuery {
	if p, ok := u.Payload.(*PreCheckoutQueryUpdate); ok && p != nil {
		return p.PreCheckoutQuery
	}

	return nil
}

func (u *Update) Poll() *Poll {
	if p, ok := u.Payload.(*PollUpdate); ok && p != nil {
		return p.Poll
	}

	return nil
}

func (u *Update) PollAnswer() *PollAnswer {
	if p, ok := u.Payload.(*PollAnswerUpdate); ok && p != nil {
		return p.PollAnswer
	}

	return nil
}

// AnyMessage returns the message of any of the four message-carrying
// variants, or the message attached to a callback query.
func (u *Update) AnyMessage() *Message {
	for _, message := range [...]*Message{
		u.Message(),
		u.EditedMessage(),
		u.ChannelPost(),
		u.EditedChannelPost(),
	} {
		if message != nil {
			return message
		}
	}

	if query := u.CallbackQuery(); query != nil {
		return query.Message
	}

	return nil
}

// Sender returns the user who caused the update, when the payload has one.
func (u *Update) Sender() *User {
	switch p := u.Payload.(type) {
	case *InlineQueryUpdate:
		if p != nil && p.InlineQuery != nil {
			return &p.InlineQuery.From
		}
	case *ChosenInlineResultUpdate:
		if p != nil && p.ChosenInlineResult != nil {
			return &p.ChosenInlineResult.From
		}
	case *CallbackQueryUpdate:
		if p != nil && p.CallbackQuery != nil {
			return &p.CallbackQuery.From
		}
	case *ShippingQueryUpdate:
		if p != nil && p.ShippingQuery != nil {
			return &p.ShippingQuery.From
		}
	case *PreCheckoutQueryUpdate:
		if p != nil && p.PreCheckoutQuery != nil {
			return &p.PreCheckoutQuery.From
		}
	case *PollAnswerUpdate:
		if p != nil && p.PollAnswer != nil {
			return &p.PollAnswer.User
		}
	}

	if message := u.AnyMessage(); message != nil {
		return message.From
	}

	return nil
}
