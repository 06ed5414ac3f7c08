package yatgtypes

import "math"

// EntityType is the wire "type" of a MessageEntity. Values outside the
// constants below are kept verbatim so newer Bot API types survive decoding.
type EntityType string

const (
	EntityMention       EntityType = "mention"
	EntityHashtag       EntityType = "hashtag"
	EntityCashtag       EntityType = "cashtag"
	EntityBotCommand    EntityType = "bot_command"
	EntityURL           EntityType = "url"
	EntityEmail         EntityType = "email"
	EntityPhoneNumber   EntityType = "phone_number"
	EntityBold          EntityType = "bold"
	EntityItalic        EntityType = "italic"
	EntityUnderline     EntityType = "underline"
	EntityStrikethrough EntityType = "strikethrough"
	EntityCode          EntityType = "code"
	EntityPre           EntityType = "pre"
	EntityTextLink      EntityType = "text_link"
	EntityTextMention   EntityType = "text_mention"
)

// MessageEntity marks a run of message text. Offset and Length count
// UTF-16 code units, not bytes or runes.
type MessageEntity struct {
	Type     EntityType
	Offset   int
	Length   int
	URL      *string
	User     *User
	Language *string
}

// End is the exclusive UTF-16 end offset. It saturates at the int bounds
// instead of wrapping, so a huge Offset never yields a small End.
func (e *MessageEntity) End() int {
	switch {
	case e.Length > 0 && e.Offset > math.MaxInt-e.Length:
		return math.MaxInt
	case e.Length < 0 && e.Offset < math.MinInt-e.Length:
		return math.MinInt
	default:
		return e.Offset + e.Length
	}
}
