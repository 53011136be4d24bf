package entity

import (
	"time"

	"github.com/simplesurance/ghactivity/internal/maputils"
)

// Issue represents an issue of a repository.
type Issue struct {
	ID        int64
	Number    int64
	Title     string
	State     string
	Body      string
	User      *User
	HTMLURL   string
	CreatedAt *time.Time
	ClosedAt  *time.Time
}

func NewIssue(data map[string]any) *Issue {
	if len(data) == 0 {
		return nil
	}

	return &Issue{
		ID:        maputils.IntVal(data, "id"),
		Number:    maputils.IntVal(data, "number"),
		Title:     maputils.StrVal(data, "title"),
		State:     maputils.StrVal(data, "state"),
		Body:      maputils.StrVal(data, "body"),
		User:      NewUser(maputils.MapVal(data, "user")),
		HTMLURL:   maputils.StrVal(data, "html_url"),
		CreatedAt: maputils.TimeVal(data, "created_at"),
		ClosedAt:  maputils.TimeVal(data, "closed_at"),
	}
}

// IssueComment represents a comment on an issue.
type IssueComment struct {
	ID        int64
	Body      string
	User      *User
	HTMLURL   string
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

func NewIssueComment(data map[string]any) *IssueComment {
	if len(data) == 0 {
		return nil
	}

	return &IssueComment{
		ID:        maputils.IntVal(data, "id"),
		Body:      maputils.StrVal(data, "body"),
		User:      NewUser(maputils.MapVal(data, "user")),
		HTMLURL:   maputils.StrVal(data, "html_url"),
		CreatedAt: maputils.TimeVal(data, "created_at"),
		UpdatedAt: maputils.TimeVal(data, "updated_at"),
	}
}
