// Package activity decodes the loosely-typed event mappings of the
// GitHub activity feed into typed Event values.
//
// Decoding is pure and total: missing or malformed optional fields
// degrade to absent values, the payload of unknown event types is
// passed through verbatim.
package activity

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/simplesurance/ghactivity/internal/activity/entity"
	"github.com/simplesurance/ghactivity/internal/logfields"
	"github.com/simplesurance/ghactivity/internal/maputils"
)

// RepoRef identifies the repository an event happened in.
type RepoRef struct {
	Owner string
	Name  string
}

// Event is one item of the activity feed.
// The shape of Payload depends on Type: the payload handlers replace
// selected keys with entities from the entity package, all other keys
// keep their raw decoded value. For PublicEvents Payload is the empty
// string.
//
// An Event is fully populated by Decode and not mutated afterwards.
type Event struct {
	// Actor is the user that triggered the event, nil when unset.
	Actor *entity.User
	// CreatedAt is nil when the timestamp is missing or unparseable.
	CreatedAt *time.Time
	// ID is the opaque unique id of the event.
	ID string
	// Org is only set for events that happened in an organization.
	Org     *entity.Organization
	Type    string
	Payload any
	// Repo is nil when the event carries no repository reference.
	Repo   *RepoRef
	Public bool
}

// Decode converts one raw event mapping, as unmarshalled from the
// activity-feed JSON, into an Event.
// Decode never fails, absent or malformed optional fields result in
// absent Event fields.
func Decode(raw map[string]any) *Event {
	payload := maputils.MapVal(raw, "payload")
	if payload == nil {
		payload = map[string]any{}
	}

	eventType := maputils.StrVal(raw, "type")

	return &Event{
		Actor:     entity.NewUser(maputils.MapVal(raw, "actor")),
		CreatedAt: maputils.TimeVal(raw, "created_at"),
		ID:        maputils.ScalarStrVal(raw, "id"),
		Org:       entity.NewOrganization(maputils.MapVal(raw, "org")),
		Type:      eventType,
		Payload:   Transform(eventType, payload),
		Repo:      repoRef(maputils.MapVal(raw, "repo")),
		Public:    maputils.BoolVal(raw, "public"),
	}
}

// repoRef splits the "owner/name" repository name on the first slash.
// Names without a slash are treated as malformed and yield no
// reference.
func repoRef(repo map[string]any) *RepoRef {
	if repo == nil {
		return nil
	}

	owner, name, found := strings.Cut(maputils.StrVal(repo, "name"), "/")
	if !found {
		return nil
	}

	return &RepoRef{Owner: owner, Name: name}
}

// Equal reports whether both events represent the same feed item.
// Identity is determined by the ID field alone, not by structural
// equality.
func (e *Event) Equal(other *Event) bool {
	if other == nil {
		return false
	}

	return e.ID == other.ID
}

// String returns a short tag for the event, the event type with its
// trailing "Event" suffix stripped, e.g. "Push" for a PushEvent.
func (e *Event) String() string {
	return strings.TrimSuffix(e.Type, "Event")
}

// LogFields returns structured log fields describing the event.
func (e *Event) LogFields() []zap.Field {
	result := []zap.Field{
		logfields.EventType(e.Type),
		logfields.EventID(e.ID),
	}

	if e.Repo != nil {
		result = append(result,
			logfields.RepositoryOwner(e.Repo.Owner),
			logfields.Repository(e.Repo.Name),
		)
	}

	if e.Actor != nil {
		result = append(result, zap.String("github.actor", e.Actor.Login))
	}

	return result
}
