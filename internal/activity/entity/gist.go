package entity

import (
	"time"

	"github.com/simplesurance/ghactivity/internal/maputils"
)

// Gist represents a gist.
// Gist IDs are hexadecimal strings, not numbers like the IDs of the
// other entities.
type Gist struct {
	ID          string
	Description string
	Public      bool
	Owner       *User
	HTMLURL     string
	CreatedAt   *time.Time
}

func NewGist(data map[string]any) *Gist {
	if len(data) == 0 {
		return nil
	}

	return &Gist{
		ID:          maputils.ScalarStrVal(data, "id"),
		Description: maputils.StrVal(data, "description"),
		Public:      maputils.BoolVal(data, "public"),
		Owner:       NewUser(maputils.MapVal(data, "owner")),
		HTMLURL:     maputils.StrVal(data, "html_url"),
		CreatedAt:   maputils.TimeVal(data, "created_at"),
	}
}
