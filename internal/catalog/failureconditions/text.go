// Package failureconditions provides build failure condition descriptors.
package failureconditions

import (
	"github.com/sourceplane/litedsl/internal/model"
	"github.com/sourceplane/litedsl/internal/params"
	"github.com/sourceplane/litedsl/internal/validate"
)

// OnTextType is the failure condition type of BuildFailureOnText
const OnTextType = "BuildFailureOnMessage"

// ConditionType defines how the pattern is matched against the build log.
type ConditionType string

const (
	// Contains treats the pattern as a plain string
	Contains ConditionType = "CONTAINS"
	// Regexp treats the pattern as a regular expression
	Regexp ConditionType = "REGEXP"
)

var (
	conditionType = params.NewEnum("conditionType", "buildFailureOnMessage.conditionType",
		[]ConditionType{Contains, Regexp},
		map[ConditionType]string{Contains: "contains", Regexp: "matchesRegex"},
		params.Mandatory(), params.Doc("How to treat the pattern"))
	pattern = params.NewString("pattern", "buildFailureOnMessage.messagePattern", params.Mandatory(),
		params.Doc("Pattern to look for in the build log"))
	failureMessage = params.NewString("failureMessage", "buildFailureOnMessage.outputText",
		params.Doc("Message shown when the build fails"))
	reverse = params.NewBool("reverse", "buildFailureOnMessage.reverse",
		params.Doc("Fail when the pattern is not found"))
	stopBuildOnFailure = params.NewBoolEncoded("stopBuildOnFailure", "buildFailureOnMessage.stopBuildOnFailure", "true", "",
		params.Doc("Stop the build as soon as the condition fails it"))
	reportOnlyFirstMatch = params.NewBoolEncoded("reportOnlyFirstMatch", "buildFailureOnMessage.reportOnlyFirstMatch", "", "false",
		params.Doc("Report only the first match"))
)

// BuildFailureOnText fails a build when a pattern shows up in its log.
type BuildFailureOnText struct {
	model.Entity
}

func NewOnText() *BuildFailureOnText {
	return &BuildFailureOnText{Entity: model.NewEntity(model.KindFailureCondition, OnTextType)}
}

func (f *BuildFailureOnText) Fields() []params.Field {
	return []params.Field{conditionType, pattern, failureMessage, reverse, stopBuildOnFailure, reportOnlyFirstMatch}
}

func (f *BuildFailureOnText) Validate(c validate.ErrorConsumer) {
	f.ValidateFields(c, f.Fields())
}

func (f *BuildFailureOnText) ConditionType() (ConditionType, bool) { return conditionType.Get(f.Params()) }
func (f *BuildFailureOnText) SetConditionType(v ConditionType)     { conditionType.Set(f.Params(), v) }

func (f *BuildFailureOnText) Pattern() (string, bool) { return pattern.Get(f.Params()) }
func (f *BuildFailureOnText) SetPattern(v string)     { pattern.Set(f.Params(), v) }

func (f *BuildFailureOnText) FailureMessage() (string, bool) { return failureMessage.Get(f.Params()) }
func (f *BuildFailureOnText) SetFailureMessage(v string)     { failureMessage.Set(f.Params(), v) }

func (f *BuildFailureOnText) Reverse() (bool, bool) { return reverse.Get(f.Params()) }
func (f *BuildFailureOnText) SetReverse(v bool)     { reverse.Set(f.Params(), v) }

func (f *BuildFailureOnText) StopBuildOnFailure() (bool, bool) { return stopBuildOnFailure.Get(f.Params()) }
func (f *BuildFailureOnText) SetStopBuildOnFailure(v bool)     { stopBuildOnFailure.Set(f.Params(), v) }

func (f *BuildFailureOnText) ReportOnlyFirstMatch() (bool, bool) { return reportOnlyFirstMatch.Get(f.Params()) }
func (f *BuildFailureOnText) SetReportOnlyFirstMatch(v bool)     { reportOnlyFirstMatch.Set(f.Params(), v) }
