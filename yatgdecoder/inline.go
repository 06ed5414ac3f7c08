package yatgdecoder

import "github.com/YaCodeDev/GoYaTgBotAPI/yatgtypes"

func (d *Decoder) inlineQuery(o object) (yatgtypes.InlineQuery, error) {
	r := read(o)

	query := yatgtypes.InlineQuery{
		ID:       req(r, "id", toString),
		From:     req(r, "from", nested(d.user)),
		Location: opt(r, "location", nested(d.location)),
		Query:    req(r, "query", toString),
		Offset:   req(r, "offset", toString),
	}

	return query, r.err
}

func (d *Decoder) chosenInlineResult(o object) (yatgtypes.ChosenInlineResult, error) {
	r := read(o)

	result := yatgtypes.ChosenInlineResult{
		ResultID:        req(r, "result_id", toString),
		From:            req(r, "from", nested(d.user)),
		Location:        opt(r, "location", nested(d.location)),
		InlineMessageID: opt(r, "inline_message_id", toString),
		Query:           req(r, "query", toString),
	}

	return result, r.err
}

func (d *Decoder) callbackQuery(o object) (yatgtypes.CallbackQuery, error) {
	r := read(o)

	query := yatgtypes.CallbackQuery{
		ID:              req(r, "id", toString),
		From:            req(r, "from", nested(d.user)),
		Message:         opt(r, "message", nested(d.message)),
		InlineMessageID: opt(r, "inline_message_id", toString),
		ChatInstance:    req(r, "chat_instance", toString),
		Data:            opt(r, "data", toString),
		GameShortName:   opt(r, "game_short_name", toString),
	}

	return query, r.err
}

func (d *Decoder) inlineKeyboardMarkup(o object) (yatgtypes.InlineKeyboardMarkup, error) {
	r := read(o)

	markup := yatgtypes.InlineKeyboardMarkup{
		InlineKeyboard: req(r, "inline_keyboard", listOf(listOf(nested(d.inlineKeyboardButton)))),
	}

	return markup, r.err
}

func (d *Decoder) inlineKeyboardButton(o object) (yatgtypes.InlineKeyboardButton, error) {
	r := read(o)

	button := yatgtypes.InlineKeyboardButton{
		Text:                         req(r, "text", toString),
		URL:                          opt(r, "url", toString),
		LoginURL:                     opt(r, "login_url", nested(d.loginURL)),
		CallbackData:                 opt(r, "callback_data", toString),
		SwitchInlineQuery:            opt(r, "switch_inline_query", toString),
		SwitchInlineQueryCurrentChat: opt(r, "switch_inline_query_current_chat", toString),
		Pay:                          opt(r, "pay", toBool),
	}

	return button, r.err
}

func (d *Decoder) loginURL(o object) (yatgtypes.LoginURL, error) {
	r := read(o)

	login := yatgtypes.LoginURL{
		URL:                req(r, "url", toString),
		ForwardText:        opt(r, "forward_text", toString),
		BotUsername:        opt(r, "bot_username", toString),
		RequestWriteAccess: opt(r, "request_write_access", toBool),
	}

	return login, r.err
}
