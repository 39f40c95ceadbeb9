// Package triggers provides build trigger descriptors.
package triggers

import (
	"github.com/sourceplane/litedsl/internal/model"
	"github.com/sourceplane/litedsl/internal/params"
	"github.com/sourceplane/litedsl/internal/validate"
)

const (
	RetryBuildType  = "retryBuildTrigger"
	FinishBuildType = "buildDependencyTrigger"
)

var (
	delaySeconds = params.NewInt("delaySeconds", "enqueueTimeout",
		params.Doc("Seconds to wait before adding a retried build to the queue"))
	attempts          = params.NewInt("attempts", "retryAttempts", params.Doc("Maximum number of retries"))
	moveToTheQueueTop = params.NewBool("moveToTheQueueTop", "", params.Doc("Put retried builds at the top of the queue"))
	sameRevisions     = params.NewBoolEncoded("retryWithTheSameRevisions", "reRunBuildWithTheSameRevisions", "true", "",
		params.Doc("Retry on the revisions of the failed build"))
	branchFilter = params.NewString("branchFilter", "", params.Doc("Branches the trigger applies to"))
)

// RetryBuildTrigger re-queues failed builds.
type RetryBuildTrigger struct {
	model.Entity
}

func NewRetryBuild() *RetryBuildTrigger {
	return &RetryBuildTrigger{Entity: model.NewEntity(model.KindTrigger, RetryBuildType)}
}

func (t *RetryBuildTrigger) Fields() []params.Field {
	return []params.Field{delaySeconds, attempts, moveToTheQueueTop, sameRevisions, branchFilter}
}

func (t *RetryBuildTrigger) Validate(c validate.ErrorConsumer) {
	t.ValidateFields(c, t.Fields())
}

func (t *RetryBuildTrigger) DelaySeconds() (int, bool) { return delaySeconds.Get(t.Params()) }
func (t *RetryBuildTrigger) SetDelaySeconds(v int)     { delaySeconds.Set(t.Params(), v) }
func (t *RetryBuildTrigger) Attempts() (int, bool)     { return attempts.Get(t.Params()) }
func (t *RetryBuildTrigger) SetAttempts(v int)         { attempts.Set(t.Params(), v) }

func (t *RetryBuildTrigger) MoveToTheQueueTop() (bool, bool) { return moveToTheQueueTop.Get(t.Params()) }
func (t *RetryBuildTrigger) SetMoveToTheQueueTop(v bool)     { moveToTheQueueTop.Set(t.Params(), v) }

func (t *RetryBuildTrigger) RetryWithTheSameRevisions() (bool, bool) { return sameRevisions.Get(t.Params()) }
func (t *RetryBuildTrigger) SetRetryWithTheSameRevisions(v bool)     { sameRevisions.Set(t.Params(), v) }

func (t *RetryBuildTrigger) BranchFilter() (string, bool) { return branchFilter.Get(t.Params()) }
func (t *RetryBuildTrigger) SetBranchFilter(v string)     { branchFilter.Set(t.Params(), v) }

var (
	dependsOn = params.NewString("buildType", "dependsOn", params.Mandatory(),
		params.Doc("Id of the build configuration to watch"))
	successfulOnly = params.NewBoolEncoded("successfulOnly", "afterSuccessfulBuildOnly", "true", "",
		params.Doc("Trigger only after a successful build"))
)

// FinishBuildTrigger starts a build when a build of another configuration finishes.
type FinishBuildTrigger struct {
	model.Entity
}

func NewFinishBuild() *FinishBuildTrigger {
	return &FinishBuildTrigger{Entity: model.NewEntity(model.KindTrigger, FinishBuildType)}
}

func (t *FinishBuildTrigger) Fields() []params.Field {
	return []params.Field{dependsOn, successfulOnly, branchFilter}
}

func (t *FinishBuildTrigger) Validate(c validate.ErrorConsumer) {
	t.ValidateFields(c, t.Fields())
}

func (t *FinishBuildTrigger) BuildType() (string, bool) { return dependsOn.Get(t.Params()) }
func (t *FinishBuildTrigger) SetBuildType(v string)     { dependsOn.Set(t.Params(), v) }

func (t *FinishBuildTrigger) SuccessfulOnly() (bool, bool) { return successfulOnly.Get(t.Params()) }
func (t *FinishBuildTrigger) SetSuccessfulOnly(v bool)     { successfulOnly.Set(t.Params(), v) }

func (t *FinishBuildTrigger) BranchFilter() (string, bool) { return branchFilter.Get(t.Params()) }
func (t *FinishBuildTrigger) SetBranchFilter(v string)     { branchFilter.Set(t.Params(), v) }
