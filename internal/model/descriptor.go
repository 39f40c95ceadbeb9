package model

import (
	"fmt"

	dslerrors "github.com/sourceplane/litedsl/internal/errors"
	"github.com/sourceplane/litedsl/internal/params"
	"github.com/sourceplane/litedsl/internal/validate"
)

// Kind is the family a descriptor belongs to
type Kind string

const (
	KindBuildStep        Kind = "buildStep"
	KindBuildFeature     Kind = "buildFeature"
	KindVcsRoot          Kind = "vcsRoot"
	KindTrigger          Kind = "trigger"
	KindProjectFeature   Kind = "projectFeature"
	KindFailureCondition Kind = "failureCondition"
)

// Kinds lists every descriptor kind in document order
func Kinds() []Kind {
	return []Kind{
		KindVcsRoot,
		KindBuildStep,
		KindBuildFeature,
		KindTrigger,
		KindFailureCondition,
		KindProjectFeature,
	}
}

// ParseKind accepts a kind name or its document section name
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s || k.Section() == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("kind %q: %w", s, dslerrors.ErrUnknownType)
}

// Section is the document `spec` key that holds descriptors of this kind
func (k Kind) Section() string {
	switch k {
	case KindBuildStep:
		return "steps"
	case KindBuildFeature:
		return "features"
	case KindVcsRoot:
		return "vcsRoots"
	case KindTrigger:
		return "triggers"
	case KindProjectFeature:
		return "projectFeatures"
	case KindFailureCondition:
		return "failureConditions"
	}
	return ""
}

// IDPrefix is the prefix used for generated descriptor ids.
// Failure conditions share the build feature numbering.
func (k Kind) IDPrefix() string {
	switch k {
	case KindBuildStep:
		return "RUNNER_"
	case KindBuildFeature, KindFailureCondition:
		return "BUILD_EXT_"
	case KindVcsRoot:
		return "VCS_ROOT_"
	case KindTrigger:
		return "TRIGGER_"
	case KindProjectFeature:
		return "PROJECT_EXT_"
	}
	return ""
}

// Descriptor is a typed view over a parameter bag
type Descriptor interface {
	Kind() Kind
	Type() string
	ID() string
	SetID(id string)
	Params() *params.Bag
	// Fields lists the typed fields declared by the descriptor type
	Fields() []params.Field
	// Validate reports every missing mandatory property to c
	Validate(c validate.ErrorConsumer)
}

// Entity holds the state shared by every descriptor. It is embedded by
// concrete descriptors and used directly for types the catalog does not know.
type Entity struct {
	kind Kind
	typ  string
	id   string
	bag  *params.Bag
}

// NewEntity creates an entity with an empty parameter bag
func NewEntity(kind Kind, typ string) Entity {
	return Entity{kind: kind, typ: typ, bag: params.NewBag()}
}

// NewGeneric creates an untyped descriptor
func NewGeneric(kind Kind, typ string) *Entity {
	e := NewEntity(kind, typ)
	return &e
}

func (e *Entity) Kind() Kind      { return e.kind }
func (e *Entity) Type() string    { return e.typ }
func (e *Entity) ID() string      { return e.id }
func (e *Entity) SetID(id string) { e.id = id }

func (e *Entity) Params() *params.Bag {
	if e.bag == nil {
		e.bag = params.NewBag()
	}
	return e.bag
}

// Param writes a raw parameter, bypassing typed fields
func (e *Entity) Param(key, value string) {
	e.Params().Set(key, value)
}

// HasParam reports whether key is present
func (e *Entity) HasParam(key string) bool {
	return e.Params().Has(key)
}

func (e *Entity) Fields() []params.Field { return nil }

func (e *Entity) Validate(c validate.ErrorConsumer) {
	e.ValidateFields(c, nil)
}

// ValidateFields runs the base checks followed by mandatory checks on fields
func (e *Entity) ValidateFields(c validate.ErrorConsumer, fields []params.Field) {
	if e.typ == "" {
		c.ConsumePropertyError("type", validate.MissingMessage("type"))
	}
	validate.Fields(c, e.Params(), "", fields)
}

// Lint reports present values of d that its fields cannot decode
func Lint(d Descriptor, c validate.ErrorConsumer) {
	validate.Lint(c, d.Params(), "", d.Fields())
}
