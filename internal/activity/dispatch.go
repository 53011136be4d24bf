package activity

import (
	"sort"

	"github.com/simplesurance/ghactivity/internal/activity/entity"
	"github.com/simplesurance/ghactivity/internal/maputils"
)

// payloadHandler reshapes the raw payload of one event type.
// Handlers replace well-known keys holding non-empty nested mappings
// with their decoded entities and leave all other keys untouched.
// They never fail, missing or empty keys are skipped.
type payloadHandler func(payload map[string]any) any

// payloadHandlers maps the event type to its payload handler.
// It is built once at package initialization and must not be mutated
// afterwards, concurrent Transform calls read it without locking.
var payloadHandlers = map[string]payloadHandler{
	"CommitCommentEvent":            commitCommentPayload,
	"CreateEvent":                   identity,
	"DeleteEvent":                   identity,
	"FollowEvent":                   followPayload,
	"ForkEvent":                     forkPayload,
	"ForkApplyEvent":                identity,
	"GistEvent":                     gistPayload,
	"GollumEvent":                   identity,
	"IssueCommentEvent":             issueCommentPayload,
	"IssuesEvent":                   issuesPayload,
	"MemberEvent":                   memberPayload,
	"PublicEvent":                   publicPayload,
	"PullRequestEvent":              pullRequestPayload,
	"PullRequestReviewCommentEvent": pullRequestReviewCommentPayload,
	"PushEvent":                     identity,
	"ReleaseEvent":                  releasePayload,
	"StatusEvent":                   identity,
	"TeamAddEvent":                  teamAddPayload,
	"WatchEvent":                    identity,
}

// Transform reshapes payload according to eventType.
// Unknown event types are a normal case, the payload is then returned
// unchanged. Transform never fails.
func Transform(eventType string, payload map[string]any) any {
	handler, ok := payloadHandlers[eventType]
	if !ok {
		return payload
	}

	return handler(payload)
}

// ListTypes returns the sorted names of all event types that have a
// registered payload handler.
func ListTypes() []string {
	result := make([]string, 0, len(payloadHandlers))

	for name := range payloadHandlers {
		result = append(result, name)
	}

	sort.Strings(result)

	return result
}

func identity(payload map[string]any) any {
	return payload
}

func commitCommentPayload(payload map[string]any) any {
	if comment := maputils.MapVal(payload, "comment"); len(comment) > 0 {
		payload["comment"] = entity.NewRepoComment(comment)
	}

	return payload
}

func followPayload(payload map[string]any) any {
	if target := maputils.MapVal(payload, "target"); len(target) > 0 {
		payload["target"] = entity.NewUser(target)
	}

	return payload
}

func forkPayload(payload map[string]any) any {
	if forkee := maputils.MapVal(payload, "forkee"); len(forkee) > 0 {
		payload["forkee"] = entity.NewRepository(forkee)
	}

	return payload
}

func gistPayload(payload map[string]any) any {
	if gist := maputils.MapVal(payload, "gist"); len(gist) > 0 {
		payload["gist"] = entity.NewGist(gist)
	}

	return payload
}

func issueCommentPayload(payload map[string]any) any {
	if issue := maputils.MapVal(payload, "issue"); len(issue) > 0 {
		payload["issue"] = entity.NewIssue(issue)
	}

	if comment := maputils.MapVal(payload, "comment"); len(comment) > 0 {
		payload["comment"] = entity.NewIssueComment(comment)
	}

	return payload
}

func issuesPayload(payload map[string]any) any {
	if issue := maputils.MapVal(payload, "issue"); len(issue) > 0 {
		payload["issue"] = entity.NewIssue(issue)
	}

	return payload
}

func memberPayload(payload map[string]any) any {
	if member := maputils.MapVal(payload, "member"); len(member) > 0 {
		payload["member"] = entity.NewUser(member)
	}

	return payload
}

// publicPayload discards the payload, PublicEvents carry no meaningful
// one.
func publicPayload(map[string]any) any {
	return ""
}

func pullRequestPayload(payload map[string]any) any {
	if pr := maputils.MapVal(payload, "pull_request"); len(pr) > 0 {
		payload["pull_request"] = entity.NewPullRequest(pr)
	}

	return payload
}

func pullRequestReviewCommentPayload(payload map[string]any) any {
	if pr := maputils.MapVal(payload, "pull_request"); len(pr) > 0 {
		payload["pull_request"] = entity.NewPullRequest(pr)
	}

	if comment := maputils.MapVal(payload, "comment"); len(comment) > 0 {
		payload["comment"] = entity.NewReviewComment(comment)
	}

	return payload
}

func releasePayload(payload map[string]any) any {
	if release := maputils.MapVal(payload, "release"); len(release) > 0 {
		payload["release"] = entity.NewRelease(release)
	}

	return payload
}

func teamAddPayload(payload map[string]any) any {
	if team := maputils.MapVal(payload, "team"); len(team) > 0 {
		payload["team"] = entity.NewTeam(team)
	}

	if repo := maputils.MapVal(payload, "repo"); len(repo) > 0 {
		payload["repo"] = entity.NewRepository(repo)
	}

	if user := maputils.MapVal(payload, "user"); len(user) > 0 {
		payload["user"] = entity.NewUser(user)
	}

	return payload
}
