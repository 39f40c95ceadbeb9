package buildsteps

import (
	"github.com/sourceplane/litedsl/internal/compound"
	"github.com/sourceplane/litedsl/internal/model"
	"github.com/sourceplane/litedsl/internal/params"
	"github.com/sourceplane/litedsl/internal/validate"
)

// DockerType is the runner type of DockerBuildStep
const DockerType = "DockerBuild"

// Source is where the Dockerfile comes from.
type Source interface {
	compound.Variant
}

var (
	sourcePath    = params.NewString("path", "dockerfile.path", params.Mandatory())
	sourceURL     = params.NewString("url", "dockerfile.url", params.Mandatory())
	sourceContent = params.NewString("content", "dockerfile.content", params.Mandatory())
)

// PathSource reads the Dockerfile from the checkout directory.
type PathSource struct{ compound.Base }

func NewPathSource() *PathSource { return &PathSource{Base: compound.NewBase("PATH")} }

func (s *PathSource) Fields() []params.Field { return []params.Field{sourcePath} }
func (s *PathSource) Path() (string, bool)   { return sourcePath.Get(s.Params()) }
func (s *PathSource) SetPath(v string)       { sourcePath.Set(s.Params(), v) }

// URLSource downloads the Dockerfile.
type URLSource struct{ compound.Base }

func NewURLSource() *URLSource { return &URLSource{Base: compound.NewBase("URL")} }

func (s *URLSource) Fields() []params.Field { return []params.Field{sourceURL} }
func (s *URLSource) URL() (string, bool)    { return sourceURL.Get(s.Params()) }
func (s *URLSource) SetURL(v string)        { sourceURL.Set(s.Params(), v) }

// ContentSource embeds the Dockerfile.
type ContentSource struct{ compound.Base }

func NewContentSource() *ContentSource { return &ContentSource{Base: compound.NewBase("CONTENT")} }

func (s *ContentSource) Fields() []params.Field  { return []params.Field{sourceContent} }
func (s *ContentSource) Content() (string, bool) { return sourceContent.Get(s.Params()) }
func (s *ContentSource) SetContent(v string)     { sourceContent.Set(s.Params(), v) }

var (
	dockerfileSource = compound.NewField("source", "dockerfile.source",
		compound.NewRegistry(
			compound.Option[Source]{Name: "path", Doc: "Dockerfile in the checkout directory", New: func() Source { return NewPathSource() }},
			compound.Option[Source]{Name: "url", Doc: "Dockerfile downloaded from a URL", New: func() Source { return NewURLSource() }},
			compound.Option[Source]{Name: "content", Doc: "Dockerfile content", New: func() Source { return NewContentSource() }},
		),
		params.Doc("Dockerfile source"))
	contextDir   = params.NewString("contextDir", "dockerfile.contextDir", params.Doc("Docker build context"))
	namesAndTags = params.NewString("namesAndTags", "docker.image.namesAndTags",
		params.Doc("Newline separated image names and tags"))
	commandArgs = params.NewString("commandArgs", "command.args", params.Doc("Additional docker build arguments"))
)

// DockerBuildStep builds a docker image.
type DockerBuildStep struct {
	model.Entity
}

func NewDocker() *DockerBuildStep {
	return &DockerBuildStep{Entity: model.NewEntity(model.KindBuildStep, DockerType)}
}

func (s *DockerBuildStep) Fields() []params.Field {
	return []params.Field{dockerfileSource, contextDir, namesAndTags, commandArgs}
}

func (s *DockerBuildStep) Validate(c validate.ErrorConsumer) {
	s.ValidateFields(c, s.Fields())
}

// Source returns the Dockerfile source bound to the step's parameters.
func (s *DockerBuildStep) Source() (Source, bool, error) { return dockerfileSource.Get(s.Params()) }
func (s *DockerBuildStep) SetSource(v Source)            { dockerfileSource.Set(s.Params(), v) }

func (s *DockerBuildStep) ContextDir() (string, bool) { return contextDir.Get(s.Params()) }
func (s *DockerBuildStep) SetContextDir(v string)     { contextDir.Set(s.Params(), v) }

func (s *DockerBuildStep) NamesAndTags() (string, bool) { return namesAndTags.Get(s.Params()) }
func (s *DockerBuildStep) SetNamesAndTags(v string)     { namesAndTags.Set(s.Params(), v) }

func (s *DockerBuildStep) CommandArgs() (string, bool) { return commandArgs.Get(s.Params()) }
func (s *DockerBuildStep) SetCommandArgs(v string)     { commandArgs.Set(s.Params(), v) }
