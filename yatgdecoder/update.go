package yatgdecoder

import (
	"strings"

	"github.com/YaCodeDev/GoYaTgBotAPI/yalogger"
	"github.com/YaCodeDev/GoYaTgBotAPI/yatgtypes"
)

// updatePayloads lists payload fields in wire order. The Bot API never
// sends two in one update. If a payload does, every present one is still
// decoded so a malformed one fails the update. The first present field
// wins and a warning is logged.
var updatePayloads = [...]struct {
	field  string
	decode func(d *Decoder, r *reader, field string) yatgtypes.UpdatePayload
}{
	{"message", func(d *Decoder, r *reader, f string) yatgtypes.UpdatePayload {
		return &yatgtypes.MessageUpdate{Message: opt(r, f, nested(d.message))}
	}},
	{"edited_message", func(d *Decoder, r *reader, f string) yatgtypes.UpdatePayload {
		return &yatgtypes.EditedMessageUpdate{Message: opt(r, f, nested(d.message))}
	}},
	{"channel_post", func(d *Decoder, r *reader, f string) yatgtypes.UpdatePayload {
		return &yatgtypes.ChannelPostUpdate{Message: opt(r, f, nested(d.message))}
	}},
	{"edited_channel_post", func(d *Decoder, r *reader, f string) yatgtypes.UpdatePayload {
		return &yatgtypes.EditedChannelPostUpdate{Message: opt(r, f, nested(d.message))}
	}},
	{"inline_query", func(d *Decoder, r *reader, f string) yatgtypes.UpdatePayload {
		return &yatgtypes.InlineQueryUpdate{InlineQuery: opt(r, f, nested(d.inlineQuery))}
	}},
	{"chosen_inline_result", func(d *Decoder, r *reader, f string) yatgtypes.UpdatePayload {
		return &yatgtypes.ChosenInlineResultUpdate{
			ChosenInlineResult: opt(r, f, nested(d.chosenInlineResult)),
		}
	}},
	{"callback_query", func(d *Decoder, r *reader, f string) yatgtypes.UpdatePayload {
		return &yatgtypes.CallbackQueryUpdate{CallbackQuery: opt(r, f, nested(d.callbackQuery))}
	}},
	{"shipping_query", func(d *Decoder, r *reader, f string) yatgtypes.UpdatePayload {
		return &yatgtypes.ShippingQueryUpdate{ShippingQuery: opt(r, f, nested(d.shippingQuery))}
	}},
	{"pre_checkout_query", func(d *Decoder, r *reader, f string) yatgtypes.UpdatePayload {
		return &yatgtypes.PreCheckoutQueryUpdate{
			PreCheckoutQuery: opt(r, f, nested(d.preCheckoutQuery)),
		}
	}},
	{"poll", func(d *Decoder, r *reader, f string) yatgtypes.UpdatePayload {
		return &yatgtypes.PollUpdate{Poll: opt(r, f, nested(d.poll))}
	}},
	{"poll_answer", func(d *Decoder, r *reader, f string) yatgtypes.UpdatePayload {
		return &yatgtypes.PollAnswerUpdate{PollAnswer: opt(r, f, nested(d.pollAnswer))}
	}},
}

func (d *Decoder) update(o object) (yatgtypes.Update, error) {
	r := read(o)

	update := yatgtypes.Update{
		UpdateID: req(r, "update_id", toInt64),
	}

	if r.err != nil {
		return yatgtypes.Update{}, r.err
	}

	var present []string

	for _, payload := range updatePayloads {
		if !o.has(payload.field) {
			continue
		}

		decoded := payload.decode(d, r, payload.field)
		if len(present) == 0 {
			update.Payload = decoded
		}

		present = append(present, payload.field)
	}

	if r.err != nil {
		return yatgtypes.Update{}, r.err
	}

	log := d.log.WithFields(map[string]any{
		yalogger.KeyUpdateID:   update.UpdateID,
		yalogger.KeyUpdateType: update.Type().String(),
	})

	if len(present) > 1 {
		log.Warnf(
			"Update carries %d payloads (%s), keeping `%s`",
			len(present),
			strings.Join(present, ", "),
			present[0],
		)
	}

	log.Debug("Update decoded")

	return update, nil
}

func (d *Decoder) response(o object) (yatgtypes.Response, error) {
	r := read(o)

	response := yatgtypes.Response{
		OK:          req(r, "ok", toBool),
		ErrorCode:   opt(r, "error_code", toInt),
		Description: opt(r, "description", toString),
		Parameters:  opt(r, "parameters", nested(d.responseParameters)),
	}

	if result, ok := o.lookup("result"); ok {
		response.Result = result
	}

	return response, r.err
}
