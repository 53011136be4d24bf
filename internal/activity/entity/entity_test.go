package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsReturnNilForAbsentInput(t *testing.T) {
	assert.Nil(t, NewUser(nil))
	assert.Nil(t, NewUser(map[string]any{}))
	assert.Nil(t, NewOrganization(nil))
	assert.Nil(t, NewTeam(nil))
	assert.Nil(t, NewRepository(nil))
	assert.Nil(t, NewRepoComment(nil))
	assert.Nil(t, NewIssue(nil))
	assert.Nil(t, NewIssueComment(nil))
	assert.Nil(t, NewPullRequest(nil))
	assert.Nil(t, NewReviewComment(nil))
	assert.Nil(t, NewGist(nil))
	assert.Nil(t, NewRelease(nil))
}

func TestNewUser(t *testing.T) {
	user := NewUser(map[string]any{
		"id":         float64(583231),
		"login":      "octocat",
		"type":       "User",
		"avatar_url": "https://avatars.githubusercontent.com/u/583231",
		"site_admin": false,
	})

	require.NotNil(t, user)
	assert.Equal(t, int64(583231), user.ID)
	assert.Equal(t, "octocat", user.Login)
	assert.Equal(t, "User", user.Type)
	assert.False(t, user.SiteAdmin)
}

func TestNewUserIgnoresWronglyTypedFields(t *testing.T) {
	user := NewUser(map[string]any{
		"id":    "not-a-number",
		"login": float64(42),
	})

	require.NotNil(t, user)
	assert.Zero(t, user.ID)
	assert.Empty(t, user.Login)
}

func TestNewRepositoryDecodesNestedOwner(t *testing.T) {
	repo := NewRepository(map[string]any{
		"id":        float64(1296269),
		"name":      "Hello-World",
		"full_name": "octocat/Hello-World",
		"fork":      true,
		"owner": map[string]any{
			"login": "octocat",
		},
		"created_at": "2011-01-26T19:01:12Z",
	})

	require.NotNil(t, repo)
	assert.Equal(t, "Hello-World", repo.Name)
	assert.True(t, repo.Fork)

	require.NotNil(t, repo.Owner)
	assert.Equal(t, "octocat", repo.Owner.Login)

	require.NotNil(t, repo.CreatedAt)
	assert.Equal(t, time.Date(2011, 1, 26, 19, 1, 12, 0, time.UTC), repo.CreatedAt.UTC())
}

func TestNewPullRequestDecodesBranches(t *testing.T) {
	pr := NewPullRequest(map[string]any{
		"id":     float64(1),
		"number": float64(1347),
		"state":  "open",
		"title":  "new-feature",
		"head": map[string]any{
			"label": "octocat:new-topic",
			"ref":   "new-topic",
			"sha":   "6dcb09b5b57875f334f61aebed695e2e4193db5e",
		},
		"base": map[string]any{
			"ref": "master",
		},
	})

	require.NotNil(t, pr)
	assert.Equal(t, int64(1347), pr.Number)

	require.NotNil(t, pr.Head)
	assert.Equal(t, "new-topic", pr.Head.Ref)
	assert.Equal(t, "6dcb09b5b57875f334f61aebed695e2e4193db5e", pr.Head.SHA)

	require.NotNil(t, pr.Base)
	assert.Equal(t, "master", pr.Base.Ref)
}

func TestNewGistKeepsStringID(t *testing.T) {
	gist := NewGist(map[string]any{
		"id":          "aa5a315d61ae9438b18d",
		"description": "Hello World Examples",
		"public":      true,
	})

	require.NotNil(t, gist)
	assert.Equal(t, "aa5a315d61ae9438b18d", gist.ID)
	assert.True(t, gist.Public)
}

func TestNewReleaseDecodesTimestamps(t *testing.T) {
	release := NewRelease(map[string]any{
		"id":           float64(1),
		"tag_name":     "v1.0.0",
		"prerelease":   false,
		"published_at": "2013-02-27T19:35:32Z",
		"author": map[string]any{
			"login": "octocat",
		},
	})

	require.NotNil(t, release)
	assert.Equal(t, "v1.0.0", release.TagName)
	require.NotNil(t, release.PublishedAt)
	require.NotNil(t, release.Author)
	assert.Equal(t, "octocat", release.Author.Login)
}
