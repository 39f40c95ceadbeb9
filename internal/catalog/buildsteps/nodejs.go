package buildsteps

import (
	"github.com/sourceplane/litedsl/internal/model"
	"github.com/sourceplane/litedsl/internal/params"
	"github.com/sourceplane/litedsl/internal/validate"
)

// NodeJSType is the runner type of NodeJSBuildStep
const NodeJSType = "nodejs-runner"

var shellScript = params.NewString("shellScript", "",
	params.Doc("Commands executed with node on the PATH"))

// NodeJSBuildStep runs a script in a Node.js environment.
type NodeJSBuildStep struct {
	containerized
}

func NewNodeJS() *NodeJSBuildStep {
	return &NodeJSBuildStep{containerized{Entity: model.NewEntity(model.KindBuildStep, NodeJSType)}}
}

func (s *NodeJSBuildStep) Fields() []params.Field {
	return append([]params.Field{workingDir, shellScript}, containerFields()...)
}

func (s *NodeJSBuildStep) Validate(c validate.ErrorConsumer) {
	s.ValidateFields(c, s.Fields())
}

func (s *NodeJSBuildStep) ShellScript() (string, bool) { return shellScript.Get(s.Params()) }
func (s *NodeJSBuildStep) SetShellScript(v string)     { shellScript.Set(s.Params(), v) }
