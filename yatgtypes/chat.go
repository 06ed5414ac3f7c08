package yatgtypes

type ChatType string

const (
	ChatTypePrivate    ChatType = "private"
	ChatTypeGroup      ChatType = "group"
	ChatTypeSupergroup ChatType = "supergroup"
	ChatTypeChannel    ChatType = "channel"
)

type Chat struct {
	ID               int64
	Type             ChatType
	Title            *string
	Username         *string
	FirstName        *string
	LastName         *string
	Photo            *ChatPhoto
	Description      *string
	InviteLink       *string
	PinnedMessage    *Message
	Permissions      *ChatPermissions
	SlowModeDelay    *int
	StickerSetName   *string
	CanSetStickerSet *bool
}

func (c *Chat) IsPrivate() bool {
	return c.Type == ChatTypePrivate
}

// IsGroup reports true for both basic groups and supergroups.
func (c *Chat) IsGroup() bool {
	return c.Type == ChatTypeGroup || c.Type == ChatTypeSupergroup
}

func (c *Chat) IsChannel() bool {
	return c.Type == ChatTypeChannel
}

type ChatPhoto struct {
	SmallFileID       string
	SmallFileUniqueID string
	BigFileID         string
	BigFileUniqueID   string
}

type ChatPermissions struct {
	CanSendMessages       *bool
	CanSendMediaMessages  *bool
	CanSendPolls          *bool
	CanSendOtherMessages  *bool
	CanAddWebPagePreviews *bool
	CanChangeInfo         *bool
	CanInviteUsers        *bool
	CanPinMessages        *bool
}

type ChatMemberStatus string

const (
	ChatMemberCreator       ChatMemberStatus = "creator"
	ChatMemberAdministrator ChatMemberStatus = "administrator"
	ChatMemberMember        ChatMemberStatus = "member"
	ChatMemberRestricted    ChatMemberStatus = "restricted"
	ChatMemberLeft          ChatMemberStatus = "left"
	ChatMemberKicked        ChatMemberStatus = "kicked"
)

type ChatMember struct {
	User                  User
	Status                ChatMemberStatus
	CustomTitle           *string
	UntilDate             *int64
	CanBeEdited           *bool
	CanPostMessages       *bool
	CanEditMessages       *bool
	CanDeleteMessages     *bool
	CanRestrictMembers    *bool
	CanPromoteMembers     *bool
	CanChangeInfo         *bool
	CanInviteUsers        *bool
	CanPinMessages        *bool
	IsMember              *bool
	CanSendMessages       *bool
	CanSendMediaMessages  *bool
	CanSendPolls          *bool
	CanSendOtherMessages  *bool
	CanAddWebPagePreviews *bool
}

// IsAdmin reports whether the member is the creator or an administrator.
func (m *ChatMember) IsAdmin() bool {
	return m.Status == ChatMemberCreator || m.Status == ChatMemberAdministrator
}
