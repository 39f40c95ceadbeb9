package buildsteps

import (
	"github.com/sourceplane/litedsl/internal/model"
	"github.com/sourceplane/litedsl/internal/params"
	"github.com/sourceplane/litedsl/internal/validate"
)

// ScriptType is the runner type of ScriptBuildStep
const ScriptType = "simpleRunner"

var (
	scriptContent = params.NewString("scriptContent", "script.content", params.Mandatory(),
		params.Doc("Content of the script to run"))
	formatStderrAsError = params.NewBoolEncoded("formatStderrAsError", "log.stderr.as.errors", "true", "",
		params.Doc("Log stderr output as errors"))
)

// ScriptBuildStep runs a shell script, optionally inside a docker container.
type ScriptBuildStep struct {
	containerized
}

// NewScript creates a script step
func NewScript() *ScriptBuildStep {
	s := &ScriptBuildStep{containerized{Entity: model.NewEntity(model.KindBuildStep, ScriptType)}}
	s.Param("use.custom.script", "true")
	return s
}

func (s *ScriptBuildStep) Fields() []params.Field {
	return append([]params.Field{workingDir, scriptContent, formatStderrAsError}, containerFields()...)
}

func (s *ScriptBuildStep) Validate(c validate.ErrorConsumer) {
	s.ValidateFields(c, s.Fields())
}

func (s *ScriptBuildStep) ScriptContent() (string, bool) { return scriptContent.Get(s.Params()) }
func (s *ScriptBuildStep) SetScriptContent(v string)     { scriptContent.Set(s.Params(), v) }

func (s *ScriptBuildStep) FormatStderrAsError() (bool, bool) {
	return formatStderrAsError.Get(s.Params())
}

func (s *ScriptBuildStep) SetFormatStderrAsError(v bool) {
	formatStderrAsError.Set(s.Params(), v)
}
