package yatgdecoder

import "github.com/YaCodeDev/GoYaTgBotAPI/yatgtypes"

func (d *Decoder) user(o object) (yatgtypes.User, error) {
	r := read(o)

	user := yatgtypes.User{
		ID:                      req(r, "id", toInt64),
		IsBot:                   req(r, "is_bot", toBool),
		FirstName:               req(r, "first_name", toString),
		LastName:                opt(r, "last_name", toString),
		Username:                opt(r, "username", toString),
		LanguageCode:            opt(r, "language_code", toString),
		CanJoinGroups:           opt(r, "can_join_groups", toBool),
		CanReadAllGroupMessages: opt(r, "can_read_all_group_messages", toBool),
		SupportsInlineQueries:   opt(r, "supports_inline_queries", toBool),
	}

	return user, r.err
}

func (d *Decoder) chat(o object) (yatgtypes.Chat, error) {
	r := read(o)

	chat := yatgtypes.Chat{
		ID:               req(r, "id", toInt64),
		Type:             req(r, "type", toNamedString[yatgtypes.ChatType]),
		Title:            opt(r, "title", toString),
		Username:         opt(r, "username", toString),
		FirstName:        opt(r, "first_name", toString),
		LastName:         opt(r, "last_name", toString),
		Photo:            opt(r, "photo", nested(d.chatPhoto)),
		Description:      opt(r, "description", toString),
		InviteLink:       opt(r, "invite_link", toString),
		PinnedMessage:    opt(r, "pinned_message", nested(d.message)),
		Permissions:      opt(r, "permissions", nested(d.chatPermissions)),
		SlowModeDelay:    opt(r, "slow_mode_delay", toInt),
		StickerSetName:   opt(r, "sticker_set_name", toString),
		CanSetStickerSet: opt(r, "can_set_sticker_set", toBool),
	}

	return chat, r.err
}

func (d *Decoder) chatPhoto(o object) (yatgtypes.ChatPhoto, error) {
	r := read(o)

	photo := yatgtypes.ChatPhoto{
		SmallFileID:       req(r, "small_file_id", toString),
		SmallFileUniqueID: req(r, "small_file_unique_id", toString),
		BigFileID:         req(r, "big_file_id", toString),
		BigFileUniqueID:   req(r, "big_file_unique_id", toString),
	}

	return photo, r.err
}

func (d *Decoder) chatPermissions(o object) (yatgtypes.ChatPermissions, error) {
	r := read(o)

	permissions := yatgtypes.ChatPermissions{
		CanSendMessages:       opt(r, "can_send_messages", toBool),
		CanSendMediaMessages:  opt(r, "can_send_media_messages", toBool),
		CanSendPolls:          opt(r, "can_send_polls", toBool),
		CanSendOtherMessages:  opt(r, "can_send_other_messages", toBool),
		CanAddWebPagePreviews: opt(r, "can_add_web_page_previews", toBool),
		CanChangeInfo:         opt(r, "can_change_info", toBool),
		CanInviteUsers:        opt(r, "can_invite_users", toBool),
		CanPinMessages:        opt(r, "can_pin_messages", toBool),
	}

	return permissions, r.err
}

func (d *Decoder) chatMember(o object) (yatgtypes.ChatMember, error) {
	r := read(o)

	member := yatgtypes.ChatMember{
		User:                  req(r, "user", nested(d.user)),
		Status:                req(r, "status", toNamedString[yatgtypes.ChatMemberStatus]),
		CustomTitle:           opt(r, "custom_title", toString),
		UntilDate:             opt(r, "until_date", toInt64),
		CanBeEdited:           opt(r, "can_be_edited", toBool),
		CanPostMessages:       opt(r, "can_post_messages", toBool),
		CanEditMessages:       opt(r, "can_edit_messages", toBool),
		CanDeleteMessages:     opt(r, "can_delete_messages", toBool),
		CanRestrictMembers:    opt(r, "can_restrict_members", toBool),
		CanPromoteMembers:     opt(r, "can_promote_members", toBool),
		CanChangeInfo:         opt(r, "can_change_info", toBool),
		CanInviteUsers:        opt(r, "can_invite_users", toBool),
		CanPinMessages:        opt(r, "can_pin_messages", toBool),
		IsMember:              opt(r, "is_member", toBool),
		CanSendMessages:       opt(r, "can_send_messages", toBool),
		CanSendMediaMessages:  opt(r, "can_send_media_messages", toBool),
		CanSendPolls:          opt(r, "can_send_polls", toBool),
		CanSendOtherMessages:  opt(r, "can_send_other_messages", toBool),
		CanAddWebPagePreviews: opt(r, "can_add_web_page_previews", toBool),
	}

	return member, r.err
}
