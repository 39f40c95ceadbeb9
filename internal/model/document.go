package model

import (
	"github.com/sourceplane/litedsl/internal/params"
)

// APIVersion is the only document version understood by litedsl
const APIVersion = "litedsl.sourceplane.io/v1"

// Document kinds
const (
	DocumentBuildConfiguration = "BuildConfiguration"
	DocumentProject            = "Project"
)

// Document is the on-disk form of a configuration
type Document struct {
	APIVersion string   `yaml:"apiVersion" json:"apiVersion"`
	Kind       string   `yaml:"kind" json:"kind"`
	Metadata   Metadata `yaml:"metadata" json:"metadata"`
	Spec       Spec     `yaml:"spec" json:"spec"`
}

// Metadata holds standard object metadata
type Metadata struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Namespace   string `yaml:"namespace,omitempty" json:"namespace,omitempty"`
}

// Spec groups descriptor entries by kind
type Spec struct {
	VcsRoots          []Entry `yaml:"vcsRoots,omitempty" json:"vcsRoots,omitempty"`
	Steps             []Entry `yaml:"steps,omitempty" json:"steps,omitempty"`
	Features          []Entry `yaml:"features,omitempty" json:"features,omitempty"`
	Triggers          []Entry `yaml:"triggers,omitempty" json:"triggers,omitempty"`
	FailureConditions []Entry `yaml:"failureConditions,omitempty" json:"failureConditions,omitempty"`
	ProjectFeatures   []Entry `yaml:"projectFeatures,omitempty" json:"projectFeatures,omitempty"`
}

// Entry is one serialized descriptor
type Entry struct {
	ID     string      `yaml:"id,omitempty" json:"id,omitempty"`
	Type   string      `yaml:"type" json:"type"`
	Params *params.Bag `yaml:"params,omitempty" json:"params,omitempty"`
}

// Entries returns the entries of one kind
func (s *Spec) Entries(k Kind) []Entry {
	if p := s.section(k); p != nil {
		return *p
	}
	return nil
}

// SetEntries replaces the entries of one kind
func (s *Spec) SetEntries(k Kind, entries []Entry) {
	if p := s.section(k); p != nil {
		*p = entries
	}
}

// Len counts entries across all kinds
func (s *Spec) Len() int {
	n := 0
	for _, k := range Kinds() {
		n += len(s.Entries(k))
	}
	return n
}

func (s *Spec) section(k Kind) *[]Entry {
	switch k {
	case KindVcsRoot:
		return &s.VcsRoots
	case KindBuildStep:
		return &s.Steps
	case KindBuildFeature:
		return &s.Features
	case KindTrigger:
		return &s.Triggers
	case KindFailureCondition:
		return &s.FailureConditions
	case KindProjectFeature:
		return &s.ProjectFeatures
	}
	return nil
}

// EntryOf serializes a descriptor
func EntryOf(d Descriptor) Entry {
	return Entry{ID: d.ID(), Type: d.Type(), Params: d.Params().Clone()}
}
