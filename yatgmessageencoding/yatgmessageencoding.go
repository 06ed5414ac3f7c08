// Package yatgmessageencoding converts Bot API message entities to and from
// the MTProto entity classes of gotd, so text decoded from an update can be
// sent through a gotd client with its formatting intact.
//
// Offsets and lengths are UTF-16 code units on both sides and are copied
// unchanged.
//
// Example usage:
//
//	_, err := api.MessagesSendMessage(ctx, &tg.MessagesSendMessageRequest{
//		Peer:     peer,
//		Message:  *message.Text,
//		Entities: yatgmessageencoding.ToTG(message.Entities),
//		RandomID: randomID,
//	})
package yatgmessageencoding

import (
	"github.com/gotd/td/tg"

	"github.com/YaCodeDev/GoYaTgBotAPI/yatgtypes"
)

// ToTG converts entities in order. Types without an MTProto counterpart,
// and text_mention entities without a user, become MessageEntityUnknown.
func ToTG(entities []yatgtypes.MessageEntity) []tg.MessageEntityClass {
	if entities == nil {
		return nil
	}

	out := make([]tg.MessageEntityClass, 0, len(entities))

	for i := range entities {
		out = append(out, ToTGEntity(&entities[i]))
	}

	return out
}

func ToTGEntity(entity *yatgtypes.MessageEntity) tg.MessageEntityClass {
	offset, length := entity.Offset, entity.Length

	switch entity.Type {
	case yatgtypes.EntityBold:
		return &tg.MessageEntityBold{Offset: offset, Length: length}
	case yatgtypes.EntityItalic:
		return &tg.MessageEntityItalic{Offset: offset, Length: length}
	case yatgtypes.EntityUnderline:
		return &tg.MessageEntityUnderline{Offset: offset, Length: length}
	case yatgtypes.EntityStrikethrough:
		return &tg.MessageEntityStrike{Offset: offset, Length: length}
	case yatgtypes.EntityCode:
		return &tg.MessageEntityCode{Offset: offset, Length: length}
	case yatgtypes.EntityPre:
		return &tg.MessageEntityPre{Offset: offset, Length: length, Language: deref(entity.Language)}
	case yatgtypes.EntityTextLink:
		return &tg.MessageEntityTextURL{Offset: offset, Length: length, URL: deref(entity.URL)}
	case yatgtypes.EntityURL:
		return &tg.MessageEntityURL{Offset: offset, Length: length}
	case yatgtypes.EntityMention:
		return &tg.MessageEntityMention{Offset: offset, Length: length}
	case yatgtypes.EntityHashtag:
		return &tg.MessageEntityHashtag{Offset: offset, Length: length}
	case yatgtypes.EntityCashtag:
		return &tg.MessageEntityCashtag{Offset: offset, Length: length}
	case yatgtypes.EntityBotCommand:
		return &tg.MessageEntityBotCommand{Offset: offset, Length: length}
	case yatgtypes.EntityEmail:
		return &tg.MessageEntityEmail{Offset: offset, Length: length}
	case yatgtypes.EntityPhoneNumber:
		return &tg.MessageEntityPhone{Offset: offset, Length: length}
	case yatgtypes.EntityTextMention:
		if entity.User != nil {
			return &tg.MessageEntityMentionName{Offset: offset, Length: length, UserID: entity.User.ID}
		}
	}

	return &tg.MessageEntityUnknown{Offset: offset, Length: length}
}

// FromTG converts gotd entities in order. MessageEntityMentionName becomes
// a text_mention whose User carries only the ID. Classes the Bot API
// model has no type for become entities with an empty Type, which every
// renderer passes through as plain text.
func FromTG(entities []tg.MessageEntityClass) []yatgtypes.MessageEntity {
	if entities == nil {
		return nil
	}

	out := make([]yatgtypes.MessageEntity, 0, len(entities))

	for _, entity := range entities {
		if entity == nil {
			continue
		}

		out = append(out, FromTGEntity(entity))
	}

	return out
}

func FromTGEntity(entity tg.MessageEntityClass) yatgtypes.MessageEntity {
	out := yatgtypes.MessageEntity{
		Offset: entity.GetOffset(),
		Length: entity.GetLength(),
	}

	switch e := entity.(type) {
	case *tg.MessageEntityBold:
		out.Type = yatgtypes.EntityBold
	case *tg.MessageEntityItalic:
		out.Type = yatgtypes.EntityItalic
	case *tg.MessageEntityUnderline:
		out.Type = yatgtypes.EntityUnderline
	case *tg.MessageEntityStrike:
		out.Type = yatgtypes.EntityStrikethrough
	case *tg.MessageEntityCode:
		out.Type = yatgtypes.EntityCode
	case *tg.MessageEntityPre:
		out.Type = yatgtypes.EntityPre
		out.Language = nonEmpty(e.Language)
	case *tg.MessageEntityTextURL:
		out.Type = yatgtypes.EntityTextLink
		out.URL = nonEmpty(e.URL)
	case *tg.MessageEntityURL:
		out.Type = yatgtypes.EntityURL
	case *tg.MessageEntityMention:
		out.Type = yatgtypes.EntityMention
	case *tg.MessageEntityHashtag:
		out.Type = yatgtypes.EntityHashtag
	case *tg.MessageEntityCashtag:
		out.Type = yatgtypes.EntityCashtag
	case *tg.MessageEntityBotCommand:
		out.Type = yatgtypes.EntityBotCommand
	case *tg.MessageEntityEmail:
		out.Type = yatgtypes.EntityEmail
	case *tg.MessageEntityPhone:
		out.Type = yatgtypes.EntityPhoneNumber
	case *tg.MessageEntityMentionName:
		out.Type = yatgtypes.EntityTextMention
		out.User = &yatgtypes.User{ID: e.UserID}
	}

	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
