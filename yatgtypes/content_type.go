package yatgtypes

// ContentType tags what kind of message a Message is. The zero value
// ContentTypeNone means no known content field was present.
type ContentType uint8

const (
	ContentTypeNone ContentType = iota
	ContentTypeText
	ContentTypeAudio
	ContentTypeDocument
	ContentTypeAnimation
	ContentTypeGame
	ContentTypePhoto
	ContentTypeSticker
	ContentTypeVideo
	ContentTypeVoice
	ContentTypeVideoNote
	ContentTypeContact
	ContentTypeLocation
	ContentTypeVenue
	ContentTypePoll
	ContentTypeNewChatMembers
	ContentTypeLeftChatMember
	ContentTypeNewChatTitle
	ContentTypeNewChatPhoto
	ContentTypeDeleteChatPhoto
	ContentTypeGroupChatCreated
	ContentTypeSupergroupChatCreated
	ContentTypeChannelChatCreated
	ContentTypeMigrateToChatID
	ContentTypeMigrateFromChatID
	ContentTypePinnedMessage
	ContentTypeInvoice
	ContentTypeSuccessfulPayment
	ContentTypeConnectedWebsite
	ContentTypePassportData
	ContentTypeReplyMarkup
)

var contentTypeNames = [...]string{
	ContentTypeNone:                  "",
	ContentTypeText:                  "text",
	ContentTypeAudio:                 "audio",
	ContentTypeDocument:              "document",
	ContentTypeAnimation:             "animation",
	ContentTypeGame:                  "game",
	ContentTypePhoto:                 "photo",
	ContentTypeSticker:               "sticker",
	ContentTypeVideo:                 "video",
	ContentTypeVoice:                 "voice",
	ContentTypeVideoNote:             "video_note",
	ContentTypeContact:               "contact",
	ContentTypeLocation:              "location",
	ContentTypeVenue:                 "venue",
	ContentTypePoll:                  "poll",
	ContentTypeNewChatMembers:        "new_chat_members",
	ContentTypeLeftChatMember:        "left_chat_member",
	ContentTypeNewChatTitle:          "new_chat_title",
	ContentTypeNewChatPhoto:          "new_chat_photo",
	ContentTypeDeleteChatPhoto:       "delete_chat_photo",
	ContentTypeGroupChatCreated:      "group_chat_created",
	ContentTypeSupergroupChatCreated: "supergroup_chat_created",
	ContentTypeChannelChatCreated:    "channel_chat_created",
	ContentTypeMigrateToChatID:       "migrate_to_chat_id",
	ContentTypeMigrateFromChatID:     "migrate_from_chat_id",
	ContentTypePinnedMessage:         "pinned_message",
	ContentTypeInvoice:               "invoice",
	ContentTypeSuccessfulPayment:     "successful_payment",
	ContentTypeConnectedWebsite:      "connected_website",
	ContentTypePassportData:          "passport_data",
	ContentTypeReplyMarkup:           "reply_markup",
}

// String returns the wire field name the content type is derived from,
// "" for ContentTypeNone and "unknown" for out-of-range values.
func (c ContentType) String() string {
	if int(c) < len(contentTypeNames) {
		return contentTypeNames[c]
	}

	return "unknown"
}

// ParseContentType is the inverse of String.
func ParseContentType(name string) (ContentType, error) {
	for i, candidate := range contentTypeNames {
		if candidate == name {
			return ContentType(i), nil
		}
	}

	return ContentTypeNone, ErrUnknownContentType
}

func (c ContentType) MarshalText() ([]byte, error) {
	if int(c) >= len(contentTypeNames) {
		return nil, ErrUnknownContentType
	}

	return []byte(c.String()), nil
}

func (c *ContentType) UnmarshalText(text []byte) error {
	parsed, err := ParseContentType(string(text))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

// IsService reports whether the content type is a chat service event
// (members joining, title changes, pins and so on) rather than user content.
func (c ContentType) IsService() bool {
	return c >= ContentTypeNewChatMembers && c <= ContentTypePinnedMessage
}
