package buildfeatures

import (
	"github.com/sourceplane/litedsl/internal/compound"
	"github.com/sourceplane/litedsl/internal/model"
	"github.com/sourceplane/litedsl/internal/params"
	"github.com/sourceplane/litedsl/internal/validate"
)

// CommitStatusPublisherType is the feature type of CommitStatusPublisher
const CommitStatusPublisherType = "commit-status-publisher"

// Publisher is the service build statuses are published to.
type Publisher interface {
	compound.Variant
}

// accessor gives variants short string field accessors
type accessor struct {
	compound.Base
}

func (a *accessor) get(f *params.String) (string, bool) { return f.Get(a.Params()) }
func (a *accessor) set(f *params.String, v string)     { f.Set(a.Params(), v) }

var (
	bbcUserName = params.NewString("userName", "bitbucketUsername", params.Mandatory())
	bbcPassword = params.NewString("password", "secure:bitbucketPassword", params.Mandatory())
)

// BitbucketCloudPublisher publishes to Bitbucket Cloud.
type BitbucketCloudPublisher struct{ accessor }

func NewBitbucketCloudPublisher() *BitbucketCloudPublisher {
	return &BitbucketCloudPublisher{accessor{compound.NewBase("bitbucketCloudPublisher")}}
}

func (p *BitbucketCloudPublisher) Fields() []params.Field   { return []params.Field{bbcUserName, bbcPassword} }
func (p *BitbucketCloudPublisher) UserName() (string, bool) { return p.get(bbcUserName) }
func (p *BitbucketCloudPublisher) SetUserName(v string)     { p.set(bbcUserName, v) }
func (p *BitbucketCloudPublisher) Password() (string, bool) { return p.get(bbcPassword) }
func (p *BitbucketCloudPublisher) SetPassword(v string)     { p.set(bbcPassword, v) }

var (
	stashURL      = params.NewString("url", "stashBaseUrl", params.Mandatory())
	stashUserName = params.NewString("userName", "stashUsername", params.Mandatory())
	stashPassword = params.NewString("password", "secure:stashPassword", params.Mandatory())
)

// BitbucketServerPublisher publishes to Bitbucket Server.
type BitbucketServerPublisher struct{ accessor }

func NewBitbucketServerPublisher() *BitbucketServerPublisher {
	return &BitbucketServerPublisher{accessor{compound.NewBase("atlassianStashPublisher")}}
}

func (p *BitbucketServerPublisher) Fields() []params.Field {
	return []params.Field{stashURL, stashUserName, stashPassword}
}

func (p *BitbucketServerPublisher) URL() (string, bool)      { return p.get(stashURL) }
func (p *BitbucketServerPublisher) SetURL(v string)          { p.set(stashURL, v) }
func (p *BitbucketServerPublisher) UserName() (string, bool) { return p.get(stashUserName) }
func (p *BitbucketServerPublisher) SetUserName(v string)     { p.set(stashUserName, v) }
func (p *BitbucketServerPublisher) Password() (string, bool) { return p.get(stashPassword) }
func (p *BitbucketServerPublisher) SetPassword(v string)     { p.set(stashPassword, v) }

var (
	gerritServer      = params.NewString("server", "gerritServer", params.Mandatory())
	gerritProject     = params.NewString("gerritProject", "", params.Mandatory())
	gerritLabel       = params.NewString("label", "")
	gerritFailureVote = params.NewString("failureVote", "", params.Mandatory())
	gerritSuccessVote = params.NewString("successVote", "", params.Mandatory())
	gerritUserName    = params.NewString("userName", "gerritUsername", params.Mandatory())
	gerritUploadedKey = params.NewString("uploadedKey", "teamcitySshKey", params.Doc("Name of an uploaded SSH key"))
)

// GerritPublisher publishes votes to Gerrit.
type GerritPublisher struct{ accessor }

func NewGerritPublisher() *GerritPublisher {
	return &GerritPublisher{accessor{compound.NewBase("gerritStatusPublisher")}}
}

func (p *GerritPublisher) Fields() []params.Field {
	return []params.Field{gerritServer, gerritProject, gerritLabel, gerritFailureVote,
		gerritSuccessVote, gerritUserName, gerritUploadedKey}
}

func (p *GerritPublisher) Server() (string, bool)      { return p.get(gerritServer) }
func (p *GerritPublisher) SetServer(v string)          { p.set(gerritServer, v) }
func (p *GerritPublisher) Project() (string, bool)     { return p.get(gerritProject) }
func (p *GerritPublisher) SetProject(v string)         { p.set(gerritProject, v) }
func (p *GerritPublisher) Label() (string, bool)       { return p.get(gerritLabel) }
func (p *GerritPublisher) SetLabel(v string)           { p.set(gerritLabel, v) }
func (p *GerritPublisher) FailureVote() (string, bool) { return p.get(gerritFailureVote) }
func (p *GerritPublisher) SetFailureVote(v string)     { p.set(gerritFailureVote, v) }
func (p *GerritPublisher) SuccessVote() (string, bool) { return p.get(gerritSuccessVote) }
func (p *GerritPublisher) SetSuccessVote(v string)     { p.set(gerritSuccessVote, v) }
func (p *GerritPublisher) UserName() (string, bool)    { return p.get(gerritUserName) }
func (p *GerritPublisher) SetUserName(v string)        { p.set(gerritUserName, v) }
func (p *GerritPublisher) UploadedKey() (string, bool) { return p.get(gerritUploadedKey) }
func (p *GerritPublisher) SetUploadedKey(v string)     { p.set(gerritUploadedKey, v) }

// GitHubAuth selects how the GitHub publisher authenticates.
type GitHubAuth interface {
	compound.Variant
}

var (
	githubToken    = params.NewString("token", "secure:github_access_token", params.Mandatory())
	githubUserName = params.NewString("userName", "github_username", params.Mandatory())
	githubPassword = params.NewString("password", "secure:github_password", params.Mandatory())
)

// GitHubPersonalToken authenticates with a personal access token.
type GitHubPersonalToken struct{ accessor }

func NewGitHubPersonalToken() *GitHubPersonalToken {
	return &GitHubPersonalToken{accessor{compound.NewBase("token")}}
}

func (a *GitHubPersonalToken) Fields() []params.Field { return []params.Field{githubToken} }
func (a *GitHubPersonalToken) Token() (string, bool)  { return a.get(githubToken) }
func (a *GitHubPersonalToken) SetToken(v string)      { a.set(githubToken, v) }

// GitHubPassword authenticates with a username and password.
type GitHubPassword struct{ accessor }

func NewGitHubPassword() *GitHubPassword {
	return &GitHubPassword{accessor{compound.NewBase("password")}}
}

func (a *GitHubPassword) Fields() []params.Field   { return []params.Field{githubUserName, githubPassword} }
func (a *GitHubPassword) UserName() (string, bool) { return a.get(githubUserName) }
func (a *GitHubPassword) SetUserName(v string)     { a.set(githubUserName, v) }
func (a *GitHubPassword) Password() (string, bool) { return a.get(githubPassword) }
func (a *GitHubPassword) SetPassword(v string)     { a.set(githubPassword, v) }

var (
	githubURL      = params.NewString("githubUrl", "github_host", params.Mandatory(), params.Doc("GitHub API URL"))
	githubAuthType = compound.NewField("authType", "github_authentication_type",
		compound.NewRegistry(
			compound.Option[GitHubAuth]{Name: "personalToken", Doc: "Authentication using personal token",
				New: func() GitHubAuth { return NewGitHubPersonalToken() }},
			compound.Option[GitHubAuth]{Name: "password", Doc: "Username and password authentication",
				New: func() GitHubAuth { return NewGitHubPassword() }},
		),
		params.Doc("Authentication type"))
)

// GitHubPublisher publishes commit statuses to GitHub.
type GitHubPublisher struct{ accessor }

func NewGitHubPublisher() *GitHubPublisher {
	return &GitHubPublisher{accessor{compound.NewBase("githubStatusPublisher")}}
}

func (p *GitHubPublisher) Fields() []params.Field    { return []params.Field{githubURL, githubAuthType} }
func (p *GitHubPublisher) GitHubURL() (string, bool) { return p.get(githubURL) }
func (p *GitHubPublisher) SetGitHubURL(v string)     { p.set(githubURL, v) }

func (p *GitHubPublisher) AuthType() (GitHubAuth, bool, error) { return githubAuthType.Get(p.Params()) }
func (p *GitHubPublisher) SetAuthType(v GitHubAuth)            { githubAuthType.Set(p.Params(), v) }

var (
	gitlabAPIURL      = params.NewString("gitlabApiUrl", "", params.Mandatory())
	gitlabAccessToken = params.NewString("accessToken", "secure:gitlabAccessToken", params.Mandatory())
)

// GitLabPublisher publishes commit statuses to GitLab.
type GitLabPublisher struct{ accessor }

func NewGitLabPublisher() *GitLabPublisher {
	return &GitLabPublisher{accessor{compound.NewBase("gitlabStatusPublisher")}}
}

func (p *GitLabPublisher) Fields() []params.Field { return []params.Field{gitlabAPIURL, gitlabAccessToken} }
func (p *GitLabPublisher) APIURL() (string, bool) { return p.get(gitlabAPIURL) }
func (p *GitLabPublisher) SetAPIURL(v string)     { p.set(gitlabAPIURL, v) }

func (p *GitLabPublisher) AccessToken() (string, bool) { return p.get(gitlabAccessToken) }
func (p *GitLabPublisher) SetAccessToken(v string)     { p.set(gitlabAccessToken, v) }

var (
	upsourceServerURL = params.NewString("serverUrl", "upsourceServerUrl", params.Mandatory())
	upsourceProjectID = params.NewString("projectId", "upsourceProjectId", params.Mandatory())
	upsourceUserName  = params.NewString("userName", "upsourceUsername", params.Mandatory())
	upsourcePassword  = params.NewString("password", "secure:upsourcePassword", params.Mandatory())
)

// UpsourcePublisher publishes to Upsource.
type UpsourcePublisher struct{ accessor }

func NewUpsourcePublisher() *UpsourcePublisher {
	return &UpsourcePublisher{accessor{compound.NewBase("upsourcePublisher")}}
}

func (p *UpsourcePublisher) Fields() []params.Field {
	return []params.Field{upsourceServerURL, upsourceProjectID, upsourceUserName, upsourcePassword}
}

func (p *UpsourcePublisher) ServerURL() (string, bool) { return p.get(upsourceServerURL) }
func (p *UpsourcePublisher) SetServerURL(v string)     { p.set(upsourceServerURL, v) }
func (p *UpsourcePublisher) ProjectID() (string, bool) { return p.get(upsourceProjectID) }
func (p *UpsourcePublisher) SetProjectID(v string)     { p.set(upsourceProjectID, v) }
func (p *UpsourcePublisher) UserName() (string, bool)  { return p.get(upsourceUserName) }
func (p *UpsourcePublisher) SetUserName(v string)      { p.set(upsourceUserName, v) }
func (p *UpsourcePublisher) Password() (string, bool)  { return p.get(upsourcePassword) }
func (p *UpsourcePublisher) SetPassword(v string)      { p.set(upsourcePassword, v) }

var (
	tfsServerURL           = params.NewString("serverUrl", "tfsServerUrl")
	tfsAuthType            = params.NewString("authType", "tfsAuthType", params.Mandatory())
	tfsAccessToken         = params.NewString("accessToken", "secure:accessToken", params.Mandatory())
	tfsPublishPullRequests = params.NewBoolEncoded("publishPullRequests", "publish.pull.requests", "true", "",
		params.Doc("Publish statuses of pull request builds"))
)

// TfsPublisher publishes to Azure DevOps.
type TfsPublisher struct{ accessor }

func NewTfsPublisher() *TfsPublisher {
	return &TfsPublisher{accessor{compound.NewBase("tfs")}}
}

func (p *TfsPublisher) Fields() []params.Field {
	return []params.Field{tfsServerURL, tfsAuthType, tfsAccessToken, tfsPublishPullRequests}
}

func (p *TfsPublisher) ServerURL() (string, bool)   { return p.get(tfsServerURL) }
func (p *TfsPublisher) SetServerURL(v string)       { p.set(tfsServerURL, v) }
func (p *TfsPublisher) AuthType() (string, bool)    { return p.get(tfsAuthType) }
func (p *TfsPublisher) SetAuthType(v string)        { p.set(tfsAuthType, v) }
func (p *TfsPublisher) AccessToken() (string, bool) { return p.get(tfsAccessToken) }
func (p *TfsPublisher) SetAccessToken(v string)     { p.set(tfsAccessToken, v) }

func (p *TfsPublisher) PublishPullRequests() (bool, bool) { return tfsPublishPullRequests.Get(p.Params()) }
func (p *TfsPublisher) SetPublishPullRequests(v bool)     { tfsPublishPullRequests.Set(p.Params(), v) }

var (
	spacePublisherAuth = authField("spaceCredentialsType", connectionOption)
	spaceProjectKey    = params.NewString("projectKey", "spaceProjectKey")
	spaceDisplayName   = params.NewString("displayName", "spaceCommitStatusPublisherDisplayName")
)

// SpacePublisher publishes to JetBrains Space.
type SpacePublisher struct{ accessor }

func NewSpacePublisher() *SpacePublisher {
	return &SpacePublisher{accessor{compound.NewBase("spaceStatusPublisher")}}
}

func (p *SpacePublisher) Fields() []params.Field {
	return []params.Field{spacePublisherAuth, spaceProjectKey, spaceDisplayName}
}

func (p *SpacePublisher) AuthType() (Auth, bool, error) { return spacePublisherAuth.Get(p.Params()) }
func (p *SpacePublisher) SetAuthType(v Auth)            { spacePublisherAuth.Set(p.Params(), v) }
func (p *SpacePublisher) ProjectKey() (string, bool)    { return p.get(spaceProjectKey) }
func (p *SpacePublisher) SetProjectKey(v string)        { p.set(spaceProjectKey, v) }
func (p *SpacePublisher) DisplayName() (string, bool)   { return p.get(spaceDisplayName) }
func (p *SpacePublisher) SetDisplayName(v string)       { p.set(spaceDisplayName, v) }

var (
	swarmServerURL       = params.NewString("serverUrl", "swarmUrl", params.Mandatory())
	swarmUsername        = params.NewString("username", "swarmUser", params.Mandatory())
	swarmToken           = params.NewString("token", "secure:swarmPassword", params.Mandatory())
	swarmCreateSwarmTest = params.NewBoolEncoded("createSwarmTest", "", "true", "",
		params.Doc("Create a Swarm test for each build"))
)

// SwarmPublisher publishes to Perforce Helix Swarm.
type SwarmPublisher struct{ accessor }

func NewSwarmPublisher() *SwarmPublisher {
	return &SwarmPublisher{accessor{compound.NewBase("perforceSwarmPublisher")}}
}

func (p *SwarmPublisher) Fields() []params.Field {
	return []params.Field{swarmServerURL, swarmUsername, swarmToken, swarmCreateSwarmTest}
}

func (p *SwarmPublisher) ServerURL() (string, bool) { return p.get(swarmServerURL) }
func (p *SwarmPublisher) SetServerURL(v string)     { p.set(swarmServerURL, v) }
func (p *SwarmPublisher) Username() (string, bool)  { return p.get(swarmUsername) }
func (p *SwarmPublisher) SetUsername(v string)      { p.set(swarmUsername, v) }
func (p *SwarmPublisher) Token() (string, bool)     { return p.get(swarmToken) }
func (p *SwarmPublisher) SetToken(v string)         { p.set(swarmToken, v) }

func (p *SwarmPublisher) CreateSwarmTest() (bool, bool) { return swarmCreateSwarmTest.Get(p.Params()) }
func (p *SwarmPublisher) SetCreateSwarmTest(v bool)     { swarmCreateSwarmTest.Set(p.Params(), v) }

var (
	cspVcsRootExtID = params.NewString("vcsRootExtId", "vcsRootId", params.Doc("VCS root id to publish statuses for"))
	cspPublisher    = compound.NewField("publisher", "publisherId",
		compound.NewRegistry(
			compound.Option[Publisher]{Name: "bitbucketCloud", Doc: "Bitbucket Cloud",
				New: func() Publisher { return NewBitbucketCloudPublisher() }},
			compound.Option[Publisher]{Name: "bitbucketServer", Doc: "Bitbucket Server",
				New: func() Publisher { return NewBitbucketServerPublisher() }},
			compound.Option[Publisher]{Name: "gerrit", Doc: "Gerrit",
				New: func() Publisher { return NewGerritPublisher() }},
			compound.Option[Publisher]{Name: "github", Doc: "GitHub",
				New: func() Publisher { return NewGitHubPublisher() }},
			compound.Option[Publisher]{Name: "gitlab", Doc: "GitLab",
				New: func() Publisher { return NewGitLabPublisher() }},
			compound.Option[Publisher]{Name: "upsource", Doc: "JetBrains Upsource",
				New: func() Publisher { return NewUpsourcePublisher() }},
			compound.Option[Publisher]{Name: "tfs", Doc: "Azure DevOps",
				New: func() Publisher { return NewTfsPublisher() }},
			compound.Option[Publisher]{Name: "space", Doc: "JetBrains Space",
				New: func() Publisher { return NewSpacePublisher() }},
			compound.Option[Publisher]{Name: "swarm", Doc: "Perforce Helix Swarm",
				New: func() Publisher { return NewSwarmPublisher() }},
		),
		params.Mandatory(), params.Doc("Commit status publisher"))
)

// CommitStatusPublisher publishes build statuses to a code review or hosting service.
type CommitStatusPublisher struct {
	model.Entity
}

func NewCommitStatusPublisher() *CommitStatusPublisher {
	return &CommitStatusPublisher{Entity: model.NewEntity(model.KindBuildFeature, CommitStatusPublisherType)}
}

func (f *CommitStatusPublisher) Fields() []params.Field {
	return []params.Field{cspVcsRootExtID, cspPublisher}
}

func (f *CommitStatusPublisher) Validate(c validate.ErrorConsumer) {
	f.ValidateFields(c, f.Fields())
}

func (f *CommitStatusPublisher) VcsRootExtID() (string, bool) { return cspVcsRootExtID.Get(f.Params()) }
func (f *CommitStatusPublisher) SetVcsRootExtID(v string)     { cspVcsRootExtID.Set(f.Params(), v) }

func (f *CommitStatusPublisher) Publisher() (Publisher, bool, error) { return cspPublisher.Get(f.Params()) }
func (f *CommitStatusPublisher) SetPublisher(v Publisher)            { cspPublisher.Set(f.Params(), v) }
