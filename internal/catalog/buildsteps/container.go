// Package buildsteps provides build runner descriptors.
package buildsteps

import (
	"github.com/sourceplane/litedsl/internal/model"
	"github.com/sourceplane/litedsl/internal/params"
)

// ImagePlatform selects the container platform a step runs on.
type ImagePlatform string

const (
	ImagePlatformAny     ImagePlatform = "Any"
	ImagePlatformLinux   ImagePlatform = "Linux"
	ImagePlatformWindows ImagePlatform = "Windows"
)

var imagePlatformMapping = map[ImagePlatform]string{
	ImagePlatformAny:     "",
	ImagePlatformLinux:   "linux",
	ImagePlatformWindows: "windows",
}

var (
	workingDir = params.NewString("workingDir", "teamcity.build.workingDir",
		params.Doc("Build working directory, relative to the checkout directory"))
	dockerImagePlatform = params.NewEnum("dockerImagePlatform", "plugin.docker.imagePlatform",
		[]ImagePlatform{ImagePlatformAny, ImagePlatformLinux, ImagePlatformWindows}, imagePlatformMapping,
		params.Doc("Platform of the docker image"))
	dockerPull = params.NewBoolEncoded("dockerPull", "plugin.docker.pull.enabled", "true", "",
		params.Doc("Pull the image before running the step"))
	dockerImage = params.NewString("dockerImage", "plugin.docker.imageId",
		params.Doc("Docker image the step runs in"))
	dockerRunParameters = params.NewString("dockerRunParameters", "plugin.docker.run.parameters",
		params.Doc("Additional docker run arguments"))
)

func containerFields() []params.Field {
	return []params.Field{dockerImagePlatform, dockerPull, dockerImage, dockerRunParameters}
}

// containerized carries the working directory and docker wrapper settings
// shared by script-like runners.
type containerized struct {
	model.Entity
}

func (s *containerized) WorkingDir() (string, bool) { return workingDir.Get(s.Params()) }
func (s *containerized) SetWorkingDir(v string)     { workingDir.Set(s.Params(), v) }

func (s *containerized) DockerImagePlatform() (ImagePlatform, bool) {
	return dockerImagePlatform.Get(s.Params())
}

func (s *containerized) SetDockerImagePlatform(v ImagePlatform) {
	dockerImagePlatform.Set(s.Params(), v)
}

func (s *containerized) DockerPull() (bool, bool) { return dockerPull.Get(s.Params()) }
func (s *containerized) SetDockerPull(v bool)     { dockerPull.Set(s.Params(), v) }

func (s *containerized) DockerImage() (string, bool) { return dockerImage.Get(s.Params()) }
func (s *containerized) SetDockerImage(v string)     { dockerImage.Set(s.Params(), v) }

func (s *containerized) DockerRunParameters() (string, bool) {
	return dockerRunParameters.Get(s.Params())
}

func (s *containerized) SetDockerRunParameters(v string) {
	dockerRunParameters.Set(s.Params(), v)
}
