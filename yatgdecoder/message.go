package yatgdecoder

import "github.com/YaCodeDev/GoYaTgBotAPI/yatgtypes"

func (d *Decoder) message(o object) (yatgtypes.Message, error) {
	r := read(o)

	message := yatgtypes.Message{
		MessageID: req(r, "message_id", toInt64),
		From:      opt(r, "from", nested(d.user)),
		Date:      req(r, "date", toInt64),
		Chat:      req(r, "chat", nested(d.chat)),

		ForwardFrom:          opt(r, "forward_from", nested(d.user)),
		ForwardFromChat:      opt(r, "forward_from_chat", nested(d.chat)),
		ForwardFromMessageID: opt(r, "forward_from_message_id", toInt64),
		ForwardSignature:     opt(r, "forward_signature", toString),
		ForwardSenderName:    opt(r, "forward_sender_name", toString),
		ForwardDate:          opt(r, "forward_date", toInt64),
		ReplyToMessage:       opt(r, "reply_to_message", nested(d.message)),
		EditDate:             opt(r, "edit_date", toInt64),
		MediaGroupID:         opt(r, "media_group_id", toString),
		AuthorSignature:      opt(r, "author_signature", toString),

		Text:            opt(r, "text", toString),
		Entities:        optList(r, "entities", nested(d.messageEntity)),
		Caption:         opt(r, "caption", toString),
		CaptionEntities: optList(r, "caption_entities", nested(d.messageEntity)),

		Audio:     opt(r, "audio", nested(d.audio)),
		Document:  opt(r, "document", nested(d.document)),
		Animation: opt(r, "animation", nested(d.animation)),
		Game:      opt(r, "game", nested(d.game)),
		Photo:     optList(r, "photo", nested(d.photoSize)),
		Sticker:   opt(r, "sticker", nested(d.sticker)),
		Video:     opt(r, "video", nested(d.video)),
		Voice:     opt(r, "voice", nested(d.voice)),
		VideoNote: opt(r, "video_note", nested(d.videoNote)),
		Contact:   opt(r, "contact", nested(d.contact)),
		Location:  opt(r, "location", nested(d.location)),
		Venue:     opt(r, "venue", nested(d.venue)),
		Poll:      opt(r, "poll", nested(d.poll)),

		NewChatMembers:        optList(r, "new_chat_members", nested(d.user)),
		LeftChatMember:        opt(r, "left_chat_member", nested(d.user)),
		NewChatTitle:          opt(r, "new_chat_title", toString),
		NewChatPhoto:          optList(r, "new_chat_photo", nested(d.photoSize)),
		DeleteChatPhoto:       opt(r, "delete_chat_photo", toBool),
		GroupChatCreated:      opt(r, "group_chat_created", toBool),
		SupergroupChatCreated: opt(r, "supergroup_chat_created", toBool),
		ChannelChatCreated:    opt(r, "channel_chat_created", toBool),
		MigrateToChatID:       opt(r, "migrate_to_chat_id", toInt64),
		MigrateFromChatID:     opt(r, "migrate_from_chat_id", toInt64),
		PinnedMessage:         opt(r, "pinned_message", nested(d.message)),

		Invoice:           opt(r, "invoice", nested(d.invoice)),
		SuccessfulPayment: opt(r, "successful_payment", nested(d.successfulPayment)),
		ConnectedWebsite:  opt(r, "connected_website", toString),
		PassportData:      optObject(r, "passport_data"),

		ReplyMarkup: opt(r, "reply_markup", nested(d.inlineKeyboardMarkup)),
	}

	if r.err != nil {
		return yatgtypes.Message{}, r.err
	}

	var matched int

	message.ContentType, matched = classify(o)

	if matched > 1 {
		d.log.WithField("message_id", message.MessageID).Debugf(
			"Message matches %d content fields, classified as `%s`",
			matched,
			message.ContentType,
		)
	}

	return message, nil
}

func (d *Decoder) messageEntity(o object) (yatgtypes.MessageEntity, error) {
	r := read(o)

	entity := yatgtypes.MessageEntity{
		Type:     req(r, "type", toNamedString[yatgtypes.EntityType]),
		Offset:   req(r, "offset", toInt),
		Length:   req(r, "length", toInt),
		URL:      opt(r, "url", toString),
		User:     opt(r, "user", nested(d.user)),
		Language: opt(r, "language", toString),
	}

	return entity, r.err
}

