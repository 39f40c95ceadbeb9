// Package validate checks descriptor fields and collects property errors.
//
// Validation is read only. Findings go to a caller-supplied ErrorConsumer and
// are never returned early, so one pass reports everything.
package validate

import (
	"fmt"

	dslerrors "github.com/sourceplane/litedsl/internal/errors"
	"github.com/sourceplane/litedsl/internal/params"
)

// ErrorConsumer receives property errors.
type ErrorConsumer interface {
	ConsumePropertyError(path, message string)
}

// ConsumerFunc adapts a function to ErrorConsumer.
type ConsumerFunc func(path, message string)

func (f ConsumerFunc) ConsumePropertyError(path, message string) { f(path, message) }

// MissingMessage is the message reported for an unset mandatory property.
func MissingMessage(path string) string {
	return fmt.Sprintf("mandatory '%s' property is not specified", path)
}

// Join builds a dotted path.
func Join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

// Mandatory reports f when neither its typed value nor its raw key is present.
func Mandatory(c ErrorConsumer, b *params.Bag, prefix string, f params.Field) {
	if f.IsSet(b) || b.Has(f.Key()) {
		return
	}
	path := Join(prefix, f.Name())
	c.ConsumePropertyError(path, MissingMessage(path))
}

// Fields checks every mandatory field and recurses into the active variant of
// every compound field.
func Fields(c ErrorConsumer, b *params.Bag, prefix string, fields []params.Field) {
	for _, f := range fields {
		if f.Mandatory() {
			Mandatory(c, b, prefix, f)
		}
		if n, ok := f.(params.Nested); ok {
			if sub, ok := n.Active(b); ok {
				Fields(c, b, Join(prefix, f.Name()), sub)
			}
		}
	}
}

// Lint reports present values that cannot be decoded into their field's type,
// such as unknown enum encodings or compound tags.
func Lint(c ErrorConsumer, b *params.Bag, prefix string, fields []params.Field) {
	for _, f := range fields {
		path := Join(prefix, f.Name())
		if err := f.Check(b); err != nil {
			raw, _ := b.Get(f.Key())
			c.ConsumePropertyError(path, fmt.Sprintf("invalid value '%s' of '%s' property: %s", raw, path, err))
			continue
		}
		if n, ok := f.(params.Nested); ok {
			if sub, ok := n.Active(b); ok {
				Lint(c, b, path, sub)
			}
		}
	}
}

// PropertyError is one finding.
type PropertyError struct {
	Path    string
	Message string
}

func (e PropertyError) Error() string { return e.Message }

// Unwrap classifies the finding: ErrMissingProperty for an unset mandatory
// property, ErrInvalidValue otherwise.
func (e PropertyError) Unwrap() error {
	if e.Message == MissingMessage(e.Path) {
		return dslerrors.ErrMissingProperty
	}
	return dslerrors.ErrInvalidValue
}

// Collector accumulates findings in report order.
type Collector struct {
	errs []PropertyError
}

func (c *Collector) ConsumePropertyError(path, message string) {
	c.errs = append(c.errs, PropertyError{Path: path, Message: message})
}

// Errors returns the collected findings.
func (c *Collector) Errors() []PropertyError {
	return append([]PropertyError(nil), c.errs...)
}

// Len returns the number of findings.
func (c *Collector) Len() int { return len(c.errs) }

// Paths returns the path of every finding.
func (c *Collector) Paths() []string {
	out := make([]string, 0, len(c.errs))
	for _, e := range c.errs {
		out = append(out, e.Path)
	}
	return out
}

// Err joins every finding under ErrValidationFailed, or returns nil.
func (c *Collector) Err() error {
	if len(c.errs) == 0 {
		return nil
	}
	errs := make([]error, 0, len(c.errs)+1)
	errs = append(errs, dslerrors.ErrValidationFailed)
	for _, e := range c.errs {
		errs = append(errs, e)
	}
	return dslerrors.Join(errs...)
}
