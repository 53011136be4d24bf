package entity

import "github.com/simplesurance/ghactivity/internal/maputils"

// User represents a user or bot account.
type User struct {
	ID        int64
	Login     string
	Type      string
	AvatarURL string
	HTMLURL   string
	SiteAdmin bool
}

func NewUser(data map[string]any) *User {
	if len(data) == 0 {
		return nil
	}

	return &User{
		ID:        maputils.IntVal(data, "id"),
		Login:     maputils.StrVal(data, "login"),
		Type:      maputils.StrVal(data, "type"),
		AvatarURL: maputils.StrVal(data, "avatar_url"),
		HTMLURL:   maputils.StrVal(data, "html_url"),
		SiteAdmin: maputils.BoolVal(data, "site_admin"),
	}
}
