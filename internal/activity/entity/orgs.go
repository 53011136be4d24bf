package entity

import "github.com/simplesurance/ghactivity/internal/maputils"

// Organization represents an organization account.
type Organization struct {
	ID          int64
	Login       string
	URL         string
	AvatarURL   string
	Description string
}

func NewOrganization(data map[string]any) *Organization {
	if len(data) == 0 {
		return nil
	}

	return &Organization{
		ID:          maputils.IntVal(data, "id"),
		Login:       maputils.StrVal(data, "login"),
		URL:         maputils.StrVal(data, "url"),
		AvatarURL:   maputils.StrVal(data, "avatar_url"),
		Description: maputils.StrVal(data, "description"),
	}
}

// Team represents a team of an organization.
type Team struct {
	ID         int64
	Name       string
	Slug       string
	Permission string
}

func NewTeam(data map[string]any) *Team {
	if len(data) == 0 {
		return nil
	}

	return &Team{
		ID:         maputils.IntVal(data, "id"),
		Name:       maputils.StrVal(data, "name"),
		Slug:       maputils.StrVal(data, "slug"),
		Permission: maputils.StrVal(data, "permission"),
	}
}
