package projectfeatures

import (
	"github.com/sourceplane/litedsl/internal/compound"
	"github.com/sourceplane/litedsl/internal/model"
	"github.com/sourceplane/litedsl/internal/params"
	"github.com/sourceplane/litedsl/internal/validate"
)

// IssueTrackerType is the feature type of issue tracker integrations
const IssueTrackerType = "IssueTracker"

// TrackerAuth selects how the issue tracker authenticates.
type TrackerAuth interface {
	compound.Variant
}

var (
	trackerAccessToken = params.NewString("accessToken", "secure:accessToken", params.Mandatory())
	trackerUserName    = params.NewString("userName", "username", params.Mandatory())
	trackerPassword    = params.NewString("password", "secure:password", params.Mandatory())
)

// AnonymousAuth accesses public repositories without credentials.
type AnonymousAuth struct{ compound.Base }

func NewAnonymousAuth() *AnonymousAuth { return &AnonymousAuth{Base: compound.NewBase("anonymous")} }

func (a *AnonymousAuth) Fields() []params.Field { return nil }

// AccessTokenAuth authenticates with an access token.
type AccessTokenAuth struct{ compound.Base }

func NewAccessTokenAuth() *AccessTokenAuth {
	return &AccessTokenAuth{Base: compound.NewBase("accesstoken")}
}

func (a *AccessTokenAuth) Fields() []params.Field      { return []params.Field{trackerAccessToken} }
func (a *AccessTokenAuth) AccessToken() (string, bool) { return trackerAccessToken.Get(a.Params()) }
func (a *AccessTokenAuth) SetAccessToken(v string)     { trackerAccessToken.Set(a.Params(), v) }

// UsernameAndPasswordAuth authenticates with a username and password.
type UsernameAndPasswordAuth struct{ compound.Base }

func NewUsernameAndPasswordAuth() *UsernameAndPasswordAuth {
	return &UsernameAndPasswordAuth{Base: compound.NewBase("loginpassword")}
}

func (a *UsernameAndPasswordAuth) Fields() []params.Field {
	return []params.Field{trackerUserName, trackerPassword}
}

func (a *UsernameAndPasswordAuth) UserName() (string, bool) { return trackerUserName.Get(a.Params()) }
func (a *UsernameAndPasswordAuth) SetUserName(v string)     { trackerUserName.Set(a.Params(), v) }
func (a *UsernameAndPasswordAuth) Password() (string, bool) { return trackerPassword.Get(a.Params()) }
func (a *UsernameAndPasswordAuth) SetPassword(v string)     { trackerPassword.Set(a.Params(), v) }

var (
	trackerDisplayName   = params.NewString("displayName", "name", params.Mandatory())
	trackerRepositoryURL = params.NewString("repositoryURL", "repository", params.Mandatory())
	trackerIssuesPattern = params.NewString("issuesPattern", "pattern",
		params.Doc("Regular expression matching issue ids in commit messages"))
	trackerAuthType = compound.NewField("authType", "",
		compound.NewRegistry(
			compound.Option[TrackerAuth]{Name: "anonymous", Doc: "Anonymous access",
				New: func() TrackerAuth { return NewAnonymousAuth() }},
			compound.Option[TrackerAuth]{Name: "accessToken", Doc: "Authentication using access token",
				New: func() TrackerAuth { return NewAccessTokenAuth() }},
			compound.Option[TrackerAuth]{Name: "usernameAndPassword", Doc: "Username and password authentication",
				New: func() TrackerAuth { return NewUsernameAndPasswordAuth() }},
		))
)

// GitHubIssueTracker links builds to GitHub issues. New trackers start with
// blank credential keys so only the selected auth type has to fill them.
type GitHubIssueTracker struct {
	model.Entity
}

func NewGitHubIssueTracker() *GitHubIssueTracker {
	t := &GitHubIssueTracker{Entity: model.NewEntity(model.KindProjectFeature, IssueTrackerType)}
	t.Param("type", "GithubIssues")
	t.Param("secure:accessToken", "")
	t.Param("username", "")
	t.Param("secure:password", "")
	return t
}

func (t *GitHubIssueTracker) Fields() []params.Field {
	return []params.Field{trackerDisplayName, trackerRepositoryURL, trackerAuthType, trackerIssuesPattern}
}

func (t *GitHubIssueTracker) Validate(c validate.ErrorConsumer) {
	t.ValidateFields(c, t.Fields())
}

func (t *GitHubIssueTracker) DisplayName() (string, bool)   { return trackerDisplayName.Get(t.Params()) }
func (t *GitHubIssueTracker) SetDisplayName(v string)       { trackerDisplayName.Set(t.Params(), v) }
func (t *GitHubIssueTracker) RepositoryURL() (string, bool) { return trackerRepositoryURL.Get(t.Params()) }
func (t *GitHubIssueTracker) SetRepositoryURL(v string)     { trackerRepositoryURL.Set(t.Params(), v) }
func (t *GitHubIssueTracker) IssuesPattern() (string, bool) { return trackerIssuesPattern.Get(t.Params()) }
func (t *GitHubIssueTracker) SetIssuesPattern(v string)     { trackerIssuesPattern.Set(t.Params(), v) }

func (t *GitHubIssueTracker) AuthType() (TrackerAuth, bool, error) { return trackerAuthType.Get(t.Params()) }
func (t *GitHubIssueTracker) SetAuthType(v TrackerAuth)            { trackerAuthType.Set(t.Params(), v) }
