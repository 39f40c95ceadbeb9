package buildfeatures

import (
	"github.com/sourceplane/litedsl/internal/compound"
	"github.com/sourceplane/litedsl/internal/model"
	"github.com/sourceplane/litedsl/internal/params"
	"github.com/sourceplane/litedsl/internal/validate"
)

// PullRequestsType is the feature type of PullRequests
const PullRequestsType = "pullRequests"

// GitHubRoleFilter filters pull requests by the role of their author.
type GitHubRoleFilter string

const (
	RoleMember               GitHubRoleFilter = "MEMBER"
	RoleMemberOrCollaborator GitHubRoleFilter = "MEMBER_OR_COLLABORATOR"
	RoleEverybody            GitHubRoleFilter = "EVERYBODY"
)

// Provider is the VCS hosting service pull requests are loaded from.
type Provider interface {
	compound.Variant
}

var (
	prServerURL          = params.NewString("serverUrl", "", params.Doc("Server URL"))
	prProjectURL         = params.NewString("projectUrl", "", params.Doc("Project URL"))
	prFilterSourceBranch = params.NewString("filterSourceBranch", "", params.Doc("Filter by source branch"))
	prFilterTargetBranch = params.NewString("filterTargetBranch", "", params.Doc("Filter by target branch"))
	prFilterAuthorRole   = params.NewEnum("filterAuthorRole", "",
		[]GitHubRoleFilter{RoleMember, RoleMemberOrCollaborator, RoleEverybody}, nil,
		params.Doc("Filter by the role of pull request contributors"))

	githubAuth          = authField("authenticationType", vcsRootOption, tokenOption)
	gitlabAuth          = authField("authenticationType", tokenOption)
	bitbucketServerAuth = authField("authenticationType", vcsRootOption, passwordOption, tokenOption)
	bitbucketCloudAuth  = authField("authenticationType", vcsRootOption, passwordOption)
	azureDevOpsAuth     = authField("authenticationType", tokenOption)
	spaceAuth           = authField("spaceCredentialsType", connectionOption)
)

// providerBase carries the accessors shared by every provider.
type providerBase struct {
	compound.Base
	auth *compound.Field[Auth]
}

func (p *providerBase) Auth() (Auth, bool, error) { return p.auth.Get(p.Params()) }
func (p *providerBase) SetAuth(v Auth)            { p.auth.Set(p.Params(), v) }

func (p *providerBase) FilterTargetBranch() (string, bool) { return prFilterTargetBranch.Get(p.Params()) }
func (p *providerBase) SetFilterTargetBranch(v string)     { prFilterTargetBranch.Set(p.Params(), v) }

// GitHubProvider loads pull requests from GitHub or GitHub Enterprise.
type GitHubProvider struct{ providerBase }

func NewGitHubProvider() *GitHubProvider {
	return &GitHubProvider{providerBase{Base: compound.NewBase("github"), auth: githubAuth}}
}

func (p *GitHubProvider) Fields() []params.Field {
	return []params.Field{prServerURL, githubAuth, prFilterSourceBranch, prFilterTargetBranch, prFilterAuthorRole}
}

func (p *GitHubProvider) ServerURL() (string, bool) { return prServerURL.Get(p.Params()) }
func (p *GitHubProvider) SetServerURL(v string)     { prServerURL.Set(p.Params(), v) }

func (p *GitHubProvider) FilterSourceBranch() (string, bool) { return prFilterSourceBranch.Get(p.Params()) }
func (p *GitHubProvider) SetFilterSourceBranch(v string)     { prFilterSourceBranch.Set(p.Params(), v) }

func (p *GitHubProvider) FilterAuthorRole() (GitHubRoleFilter, bool) {
	return prFilterAuthorRole.Get(p.Params())
}

func (p *GitHubProvider) SetFilterAuthorRole(v GitHubRoleFilter) {
	prFilterAuthorRole.Set(p.Params(), v)
}

// GitLabProvider loads merge requests from GitLab.com or GitLab CE/EE.
type GitLabProvider struct{ providerBase }

func NewGitLabProvider() *GitLabProvider {
	return &GitLabProvider{providerBase{Base: compound.NewBase("gitlab"), auth: gitlabAuth}}
}

func (p *GitLabProvider) Fields() []params.Field {
	return []params.Field{prServerURL, gitlabAuth, prFilterSourceBranch, prFilterTargetBranch}
}

func (p *GitLabProvider) ServerURL() (string, bool) { return prServerURL.Get(p.Params()) }
func (p *GitLabProvider) SetServerURL(v string)     { prServerURL.Set(p.Params(), v) }

// BitbucketServerProvider loads pull requests from Bitbucket Server.
type BitbucketServerProvider struct{ providerBase }

func NewBitbucketServerProvider() *BitbucketServerProvider {
	return &BitbucketServerProvider{providerBase{Base: compound.NewBase("bitbucketServer"), auth: bitbucketServerAuth}}
}

func (p *BitbucketServerProvider) Fields() []params.Field {
	return []params.Field{prServerURL, bitbucketServerAuth, prFilterSourceBranch, prFilterTargetBranch}
}

func (p *BitbucketServerProvider) ServerURL() (string, bool) { return prServerURL.Get(p.Params()) }
func (p *BitbucketServerProvider) SetServerURL(v string)     { prServerURL.Set(p.Params(), v) }

// BitbucketCloudProvider loads pull requests from Bitbucket Cloud.
type BitbucketCloudProvider struct{ providerBase }

func NewBitbucketCloudProvider() *BitbucketCloudProvider {
	return &BitbucketCloudProvider{providerBase{Base: compound.NewBase("bitbucketCloud"), auth: bitbucketCloudAuth}}
}

func (p *BitbucketCloudProvider) Fields() []params.Field {
	return []params.Field{bitbucketCloudAuth, prFilterTargetBranch}
}

// AzureDevOpsProvider loads pull requests from Azure DevOps Services or Server.
type AzureDevOpsProvider struct{ providerBase }

func NewAzureDevOpsProvider() *AzureDevOpsProvider {
	return &AzureDevOpsProvider{providerBase{Base: compound.NewBase("azureDevOps"), auth: azureDevOpsAuth}}
}

func (p *AzureDevOpsProvider) Fields() []params.Field {
	return []params.Field{prProjectURL, azureDevOpsAuth, prFilterSourceBranch, prFilterTargetBranch}
}

func (p *AzureDevOpsProvider) ProjectURL() (string, bool) { return prProjectURL.Get(p.Params()) }
func (p *AzureDevOpsProvider) SetProjectURL(v string)     { prProjectURL.Set(p.Params(), v) }

// SpaceProvider loads merge requests from JetBrains Space.
type SpaceProvider struct{ providerBase }

func NewSpaceProvider() *SpaceProvider {
	return &SpaceProvider{providerBase{Base: compound.NewBase("jetbrainsSpace"), auth: spaceAuth}}
}

func (p *SpaceProvider) Fields() []params.Field {
	return []params.Field{prFilterTargetBranch, spaceAuth}
}

var (
	prVcsRootExtID = params.NewString("vcsRootExtId", "vcsRootId", params.Doc("VCS root id to load pull requests for"))
	prProvider     = compound.NewField("provider", "providerType",
		compound.NewRegistry(
			compound.Option[Provider]{Name: "github", Doc: "GitHub or GitHub Enterprise",
				New: func() Provider { return NewGitHubProvider() }},
			compound.Option[Provider]{Name: "gitlab", Doc: "GitLab.com or GitLab CE/EE",
				New: func() Provider { return NewGitLabProvider() }},
			compound.Option[Provider]{Name: "bitbucketServer", Doc: "Bitbucket Server",
				New: func() Provider { return NewBitbucketServerProvider() }},
			compound.Option[Provider]{Name: "bitbucketCloud", Doc: "Bitbucket Cloud",
				New: func() Provider { return NewBitbucketCloudProvider() }},
			compound.Option[Provider]{Name: "azureDevOps", Doc: "Azure DevOps Services/Server",
				New: func() Provider { return NewAzureDevOpsProvider() }},
			compound.Option[Provider]{Name: "jetbrainsSpace", Doc: "JetBrains Space",
				New: func() Provider { return NewSpaceProvider() }},
		),
		params.Mandatory(), params.Doc("VCS hosting provider"))
)

// PullRequests loads pull request information into builds.
type PullRequests struct {
	model.Entity
}

func NewPullRequests() *PullRequests {
	return &PullRequests{Entity: model.NewEntity(model.KindBuildFeature, PullRequestsType)}
}

func (f *PullRequests) Fields() []params.Field {
	return []params.Field{prVcsRootExtID, prProvider}
}

func (f *PullRequests) Validate(c validate.ErrorConsumer) {
	f.ValidateFields(c, f.Fields())
}

func (f *PullRequests) VcsRootExtID() (string, bool) { return prVcsRootExtID.Get(f.Params()) }
func (f *PullRequests) SetVcsRootExtID(v string)     { prVcsRootExtID.Set(f.Params(), v) }

func (f *PullRequests) Provider() (Provider, bool, error) { return prProvider.Get(f.Params()) }
func (f *PullRequests) SetProvider(v Provider)            { prProvider.Set(f.Params(), v) }
