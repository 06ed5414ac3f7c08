package yatgtypes

type InlineQuery struct {
	ID       string
	From     User
	Location *Location
	Query    string
	Offset   string
}

type ChosenInlineResult struct {
	ResultID        string
	From            User
	Location        *Location
	InlineMessageID *string
	Query           string
}

// CallbackQuery comes from an inline keyboard button. Message is nil when
// the button was attached to an inline-mode message; InlineMessageID is set then.
type CallbackQuery struct {
	ID              string
	From            User
	Message         *Message
	InlineMessageID *string
	ChatInstance    string
	Data            *string
	GameShortName   *string
}

type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton
}

type InlineKeyboardButton struct {
	Text                         string
	URL                          *string
	LoginURL                     *LoginURL
	CallbackData                 *string
	SwitchInlineQuery            *string
	SwitchInlineQueryCurrentChat *string
	Pay                          *bool
}

type LoginURL struct {
	URL                string
	ForwardText        *string
	BotUsername        *string
	RequestWriteAccess *bool
}
