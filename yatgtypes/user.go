package yatgtypes

import "strconv"

type User struct {
	ID                      int64
	IsBot                   bool
	FirstName               string
	LastName                *string
	Username                *string
	LanguageCode            *string
	CanJoinGroups           *bool
	CanReadAllGroupMessages *bool
	SupportsInlineQueries   *bool
}

// FullName joins first and last name with a space.
func (u *User) FullName() string {
	if u.LastName == nil || *u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + *u.LastName
}

// Link returns the t.me profile link when the user has a username and the
// tg://user deep link otherwise.
func (u *User) Link() string {
	if u.Username != nil && *u.Username != "" {
		return ProfileURLPrefix + *u.Username
	}

	return UserDeepLinkPrefix + strconv.FormatInt(u.ID, 10)
}

const (
	ProfileURLPrefix   = "https://t.me/"
	UserDeepLinkPrefix = "tg://user?id="
)
