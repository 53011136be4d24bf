package entity

import (
	"time"

	"github.com/simplesurance/ghactivity/internal/maputils"
)

// Repository represents a repository, e.g. the forkee of a ForkEvent.
type Repository struct {
	ID          int64
	Name        string
	FullName    string
	Owner       *User
	Description string
	HTMLURL     string
	Language    string
	Fork        bool
	Private     bool
	CreatedAt   *time.Time
}

func NewRepository(data map[string]any) *Repository {
	if len(data) == 0 {
		return nil
	}

	return &Repository{
		ID:          maputils.IntVal(data, "id"),
		Name:        maputils.StrVal(data, "name"),
		FullName:    maputils.StrVal(data, "full_name"),
		Owner:       NewUser(maputils.MapVal(data, "owner")),
		Description: maputils.StrVal(data, "description"),
		HTMLURL:     maputils.StrVal(data, "html_url"),
		Language:    maputils.StrVal(data, "language"),
		Fork:        maputils.BoolVal(data, "fork"),
		Private:     maputils.BoolVal(data, "private"),
		CreatedAt:   maputils.TimeVal(data, "created_at"),
	}
}

// RepoComment represents a comment on a commit of a repository.
type RepoComment struct {
	ID        int64
	Body      string
	CommitID  string
	Path      string
	Position  int64
	User      *User
	HTMLURL   string
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

func NewRepoComment(data map[string]any) *RepoComment {
	if len(data) == 0 {
		return nil
	}

	return &RepoComment{
		ID:        maputils.IntVal(data, "id"),
		Body:      maputils.StrVal(data, "body"),
		CommitID:  maputils.StrVal(data, "commit_id"),
		Path:      maputils.StrVal(data, "path"),
		Position:  maputils.IntVal(data, "position"),
		User:      NewUser(maputils.MapVal(data, "user")),
		HTMLURL:   maputils.StrVal(data, "html_url"),
		CreatedAt: maputils.TimeVal(data, "created_at"),
		UpdatedAt: maputils.TimeVal(data, "updated_at"),
	}
}

// Release represents a published release of a repository.
type Release struct {
	ID          int64
	TagName     string
	Name        string
	Body        string
	Draft       bool
	Prerelease  bool
	Author      *User
	HTMLURL     string
	CreatedAt   *time.Time
	PublishedAt *time.Time
}

func NewRelease(data map[string]any) *Release {
	if len(data) == 0 {
		return nil
	}

	return &Release{
		ID:          maputils.IntVal(data, "id"),
		TagName:     maputils.StrVal(data, "tag_name"),
		Name:        maputils.StrVal(data, "name"),
		Body:        maputils.StrVal(data, "body"),
		Draft:       maputils.BoolVal(data, "draft"),
		Prerelease:  maputils.BoolVal(data, "prerelease"),
		Author:      NewUser(maputils.MapVal(data, "author")),
		HTMLURL:     maputils.StrVal(data, "html_url"),
		CreatedAt:   maputils.TimeVal(data, "created_at"),
		PublishedAt: maputils.TimeVal(data, "published_at"),
	}
}
