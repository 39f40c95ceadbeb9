package catalog

import (
	"github.com/sourceplane/litedsl/internal/catalog/buildfeatures"
	"github.com/sourceplane/litedsl/internal/catalog/buildsteps"
	"github.com/sourceplane/litedsl/internal/catalog/failureconditions"
	"github.com/sourceplane/litedsl/internal/catalog/projectfeatures"
	"github.com/sourceplane/litedsl/internal/catalog/triggers"
	"github.com/sourceplane/litedsl/internal/catalog/vcs"
	"github.com/sourceplane/litedsl/internal/model"
)

// Default returns the built-in descriptor types
func Default() *Catalog {
	return New(
		Entry{Kind: model.KindBuildStep, Type: buildsteps.ScriptType, Name: "script",
			Doc: "Runs a script with the platform shell",
			New: func() model.Descriptor { return buildsteps.NewScript() }},
		Entry{Kind: model.KindBuildStep, Type: buildsteps.NodeJSType, Name: "nodeJS",
			Doc: "Runs a script in a Node.js environment",
			New: func() model.Descriptor { return buildsteps.NewNodeJS() }},
		Entry{Kind: model.KindBuildStep, Type: buildsteps.DockerType, Name: "dockerBuild",
			Doc: "Builds a docker image",
			New: func() model.Descriptor { return buildsteps.NewDocker() }},

		Entry{Kind: model.KindBuildFeature, Type: buildfeatures.PullRequestsType, Name: "pullRequests",
			Doc: "Loads pull request information into builds",
			New: func() model.Descriptor { return buildfeatures.NewPullRequests() }},
		Entry{Kind: model.KindBuildFeature, Type: buildfeatures.CommitStatusPublisherType, Name: "commitStatusPublisher",
			Doc: "Publishes build statuses to a code review or hosting service",
			New: func() model.Descriptor { return buildfeatures.NewCommitStatusPublisher() }},

		Entry{Kind: model.KindTrigger, Type: triggers.RetryBuildType, Name: "retryBuild",
			Doc: "Retries failed builds",
			New: func() model.Descriptor { return triggers.NewRetryBuild() }},
		Entry{Kind: model.KindTrigger, Type: triggers.FinishBuildType, Name: "finishBuildTrigger",
			Doc: "Starts a build when a build of another configuration finishes",
			New: func() model.Descriptor { return triggers.NewFinishBuild() }},

		Entry{Kind: model.KindVcsRoot, Type: vcs.TfsType, Name: "tfs",
			Doc: "Team Foundation Server VCS root",
			New: func() model.Descriptor { return vcs.NewTfs() }},

		Entry{Kind: model.KindProjectFeature, Type: projectfeatures.S3StorageType, Name: "s3Storage",
			Doc: "Stores build artifacts in Amazon S3",
			New: func() model.Descriptor { return projectfeatures.NewS3Storage() }},
		Entry{Kind: model.KindProjectFeature, Type: projectfeatures.OAuthProviderType, Name: "slackConnection",
			Doc: "Slack connection for notifications",
			New: func() model.Descriptor { return projectfeatures.NewSlackConnection() }},
		Entry{Kind: model.KindProjectFeature, Type: projectfeatures.IssueTrackerType, Name: "githubIssues",
			Doc: "GitHub issue tracker integration",
			New: func() model.Descriptor { return projectfeatures.NewGitHubIssueTracker() }},

		Entry{Kind: model.KindFailureCondition, Type: failureconditions.OnTextType, Name: "failOnText",
			Doc: "Fails a build when a pattern shows up in its log",
			New: func() model.Descriptor { return failureconditions.NewOnText() }},
	)
}
