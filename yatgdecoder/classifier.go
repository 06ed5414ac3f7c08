package yatgdecoder

import "github.com/YaCodeDev/GoYaTgBotAPI/yatgtypes"

// contentPrecedence is the classifier table. Every entry whose field is
// present overwrites the result, so when a message carries several content
// fields the one listed LAST wins. A captioned photo is therefore "photo",
// not "text", and any message with a reply_markup is "reply_markup".
//
// The order is part of the public contract; do not reorder.
var contentPrecedence = [...]struct {
	field       string
	contentType yatgtypes.ContentType
}{
	{"text", yatgtypes.ContentTypeText},
	{"audio", yatgtypes.ContentTypeAudio},
	{"document", yatgtypes.ContentTypeDocument},
	{"animation", yatgtypes.ContentTypeAnimation},
	{"game", yatgtypes.ContentTypeGame},
	{"photo", yatgtypes.ContentTypePhoto},
	{"sticker", yatgtypes.ContentTypeSticker},
	{"video", yatgtypes.ContentTypeVideo},
	{"voice", yatgtypes.ContentTypeVoice},
	{"video_note", yatgtypes.ContentTypeVideoNote},
	{"contact", yatgtypes.ContentTypeContact},
	{"location", yatgtypes.ContentTypeLocation},
	{"venue", yatgtypes.ContentTypeVenue},
	{"poll", yatgtypes.ContentTypePoll},
	{"new_chat_members", yatgtypes.ContentTypeNewChatMembers},
	{"left_chat_member", yatgtypes.ContentTypeLeftChatMember},
	{"new_chat_title", yatgtypes.ContentTypeNewChatTitle},
	{"new_chat_photo", yatgtypes.ContentTypeNewChatPhoto},
	{"delete_chat_photo", yatgtypes.ContentTypeDeleteChatPhoto},
	{"group_chat_created", yatgtypes.ContentTypeGroupChatCreated},
	{"supergroup_chat_created", yatgtypes.ContentTypeSupergroupChatCreated},
	{"channel_chat_created", yatgtypes.ContentTypeChannelChatCreated},
	{"migrate_to_chat_id", yatgtypes.ContentTypeMigrateToChatID},
	{"migrate_from_chat_id", yatgtypes.ContentTypeMigrateFromChatID},
	{"pinned_message", yatgtypes.ContentTypePinnedMessage},
	{"invoice", yatgtypes.ContentTypeInvoice},
	{"successful_payment", yatgtypes.ContentTypeSuccessfulPayment},
	{"connected_website", yatgtypes.ContentTypeConnectedWebsite},
	{"passport_data", yatgtypes.ContentTypePassportData},
	{"reply_markup", yatgtypes.ContentTypeReplyMarkup},
}

// Classify returns the content type of a raw message object: the last
// entry of the precedence table whose field is present and not null, or
// ContentTypeNone when none is.
//
// Example usage:
//
//	yatgdecoder.Classify(map[string]any{"text": "hi", "photo": []any{}})
//	// yatgtypes.ContentTypePhoto
func Classify(fields map[string]any) yatgtypes.ContentType {
	contentType, _ := classify(object{fields: fields})

	return contentType
}

// Matches lists every content type whose field is present, in table order.
// The last element, if any, is what Classify returns.
func Matches(fields map[string]any) []yatgtypes.ContentType {
	o := object{fields: fields}

	var matches []yatgtypes.ContentType

	for _, entry := range contentPrecedence {
		if o.has(entry.field) {
			matches = append(matches, entry.contentType)
		}
	}

	return matches
}

func classify(o object) (yatgtypes.ContentType, int) {
	contentType := yatgtypes.ContentTypeNone
	matched := 0

	for _, entry := range contentPrecedence {
		if o.has(entry.field) {
			contentType = entry.contentType
			matched++
		}
	}

	return contentType, matched
}
