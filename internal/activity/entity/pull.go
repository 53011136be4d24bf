package entity

import (
	"time"

	"github.com/simplesurance/ghactivity/internal/maputils"
)

// Branch identifies one side of a pull request.
type Branch struct {
	Label string
	Ref   string
	SHA   string
}

func newBranch(data map[string]any) *Branch {
	if len(data) == 0 {
		return nil
	}

	return &Branch{
		Label: maputils.StrVal(data, "label"),
		Ref:   maputils.StrVal(data, "ref"),
		SHA:   maputils.StrVal(data, "sha"),
	}
}

// PullRequest represents a pull request of a repository.
type PullRequest struct {
	ID        int64
	Number    int64
	Title     string
	State     string
	Body      string
	User      *User
	Head      *Branch
	Base      *Branch
	Merged    bool
	HTMLURL   string
	CreatedAt *time.Time
}

func NewPullRequest(data map[string]any) *PullRequest {
	if len(data) == 0 {
		return nil
	}

	return &PullRequest{
		ID:        maputils.IntVal(data, "id"),
		Number:    maputils.IntVal(data, "number"),
		Title:     maputils.StrVal(data, "title"),
		State:     maputils.StrVal(data, "state"),
		Body:      maputils.StrVal(data, "body"),
		User:      NewUser(maputils.MapVal(data, "user")),
		Head:      newBranch(maputils.MapVal(data, "head")),
		Base:      newBranch(maputils.MapVal(data, "base")),
		Merged:    maputils.BoolVal(data, "merged"),
		HTMLURL:   maputils.StrVal(data, "html_url"),
		CreatedAt: maputils.TimeVal(data, "created_at"),
	}
}

// ReviewComment represents a comment on a portion of the unified diff
// of a pull request.
type ReviewComment struct {
	ID        int64
	Body      string
	DiffHunk  string
	Path      string
	Position  int64
	CommitID  string
	User      *User
	HTMLURL   string
	CreatedAt *time.Time
}

func NewReviewComment(data map[string]any) *ReviewComment {
	if len(data) == 0 {
		return nil
	}

	return &ReviewComment{
		ID:        maputils.IntVal(data, "id"),
		Body:      maputils.StrVal(data, "body"),
		DiffHunk:  maputils.StrVal(data, "diff_hunk"),
		Path:      maputils.StrVal(data, "path"),
		Position:  maputils.IntVal(data, "position"),
		CommitID:  maputils.StrVal(data, "commit_id"),
		User:      NewUser(maputils.MapVal(data, "user")),
		HTMLURL:   maputils.StrVal(data, "html_url"),
		CreatedAt: maputils.TimeVal(data, "created_at"),
	}
}
