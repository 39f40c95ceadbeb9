package model

import (
	"github.com/sourceplane/litedsl/internal/validate"
)

// Severity of a finding
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is a property error attributed to a descriptor
type Finding struct {
	Source   string   `json:"source,omitempty" yaml:"source,omitempty"`
	Kind     Kind     `json:"kind" yaml:"kind"`
	ID       string   `json:"id" yaml:"id"`
	Type     string   `json:"type" yaml:"type"`
	Path     string   `json:"path" yaml:"path"`
	Message  string   `json:"message" yaml:"message"`
	Severity Severity `json:"severity" yaml:"severity"`
}

// Configuration is a decoded document: metadata plus descriptors in
// document order.
type Configuration struct {
	Source      string
	APIVersion  string
	Kind        string
	Metadata    Metadata
	Descriptors []Descriptor
}

// ByKind returns the descriptors of one kind
func (c *Configuration) ByKind(k Kind) []Descriptor {
	var out []Descriptor
	for _, d := range c.Descriptors {
		if d.Kind() == k {
			out = append(out, d)
		}
	}
	return out
}

// Find returns the descriptor with the given kind and id
func (c *Configuration) Find(k Kind, id string) (Descriptor, bool) {
	for _, d := range c.Descriptors {
		if d.Kind() == k && d.ID() == id {
			return d, true
		}
	}
	return nil, false
}

// Document converts the configuration back to its wire form
func (c *Configuration) Document() *Document {
	doc := &Document{APIVersion: c.APIVersion, Kind: c.Kind, Metadata: c.Metadata}
	for _, k := range Kinds() {
		var entries []Entry
		for _, d := range c.ByKind(k) {
			entries = append(entries, EntryOf(d))
		}
		doc.Spec.SetEntries(k, entries)
	}
	return doc
}

// Check validates every descriptor. With lint set, undecodable values are
// reported as warnings after the errors of each descriptor.
func (c *Configuration) Check(lint bool) []Finding {
	var findings []Finding
	for _, d := range c.Descriptors {
		d := d
		sink := func(severity Severity) validate.ConsumerFunc {
			return func(path, message string) {
				findings = append(findings, Finding{
					Source:   c.Source,
					Kind:     d.Kind(),
					ID:       d.ID(),
					Type:     d.Type(),
					Path:     path,
					Message:  message,
					Severity: severity,
				})
			}
		}
		d.Validate(sink(SeverityError))
		if lint {
			Lint(d, sink(SeverityWarning))
		}
	}
	return findings
}

// HasErrors reports whether any finding is an error
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
