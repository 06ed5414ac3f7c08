package yatgtypes

// Message is a chat message or a channel post.
//
// ContentType is fixed by the decoder from the content fields present on the
// wire; when several are present the later one in the classifier table wins.
type Message struct {
	MessageID   int64
	From        *User
	Date        int64
	Chat        Chat
	ContentType ContentType

	ForwardFrom          *User
	ForwardFromChat      *Chat
	ForwardFromMessageID *int64
	ForwardSignature     *string
	ForwardSenderName    *string
	ForwardDate          *int64
	ReplyToMessage       *Message
	EditDate             *int64
	MediaGroupID         *string
	AuthorSignature      *string

	Text            *string
	Entities        []MessageEntity
	Caption         *string
	CaptionEntities []MessageEntity

	Audio     *Audio
	Document  *Document
	Animation *Animation
	Game      *Game
	Photo     []PhotoSize
	Sticker   *Sticker
	Video     *Video
	Voice     *Voice
	VideoNote *VideoNote
	Contact   *Contact
	Location  *Location
	Venue     *Venue
	Poll      *Poll

	NewChatMembers        []User
	LeftChatMember        *User
	NewChatTitle          *string
	NewChatPhoto          []PhotoSize
	DeleteChatPhoto       *bool
	GroupChatCreated      *bool
	SupergroupChatCreated *bool
	ChannelChatCreated    *bool
	MigrateToChatID       *int64
	MigrateFromChatID     *int64
	PinnedMessage         *Message

	Invoice           *Invoice
	SuccessfulPayment *SuccessfulPayment
	ConnectedWebsite  *string

	// PassportData is kept as the raw decoded tree; its contents are encrypted
	// and only meaningful to the bot owner's decryption key.
	PassportData map[string]any

	ReplyMarkup *InlineKeyboardMarkup
}

func (m *Message) HasContentType() bool {
	return m.ContentType != ContentTypeNone
}

// IsCommand reports whether the text starts with a bot_command entity.
func (m *Message) IsCommand() bool {
	if m.Text == nil || len(m.Entities) == 0 {
		return false
	}

	first := m.Entities[0]

	return first.Offset == 0 && first.Type == EntityBotCommand
}

// IsForwarded reports whether any forward_* origin field is present.
func (m *Message) IsForwarded() bool {
	return m.ForwardFrom != nil ||
		m.ForwardFromChat != nil ||
		m.ForwardSenderName != nil ||
		m.ForwardDate != nil
}

// LargestPhoto returns the biggest size of Photo by area, or nil.
func (m *Message) LargestPhoto() *PhotoSize {
	var largest *PhotoSize

	for i := range m.Photo {
		size := &m.Photo[i]
		if largest == nil || size.Width*size.Height > largest.Width*largest.Height {
			largest = size
		}
	}

	return largest
}
