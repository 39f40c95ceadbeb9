package params

import (
	"fmt"
	"strconv"

	dslerrors "github.com/sourceplane/litedsl/internal/errors"
)

// Field is a named accessor bound to one bag key.
type Field interface {
	// Name is the DSL property name used in validation paths.
	Name() string
	// Key is the bag key the value is stored under.
	Key() string
	Type() string
	Doc() string
	Mandatory() bool
	// IsSet reports whether the typed value is present and decodable.
	IsSet(b *Bag) bool
	// Check returns an error for a present value that cannot be decoded.
	Check(b *Bag) error
}

// Nested is a field whose value selects a group of further fields.
type Nested interface {
	Field
	// Active returns the fields of the currently selected variant.
	Active(b *Bag) ([]Field, bool)
	Variants() []VariantInfo
}

// VariantInfo describes one option of a Nested field.
type VariantInfo struct {
	Name   string
	Tag    string
	Doc    string
	Fields []Field
}

// Enumerated is a field restricted to a closed set of values.
type Enumerated interface {
	Field
	Values() []EnumValue
}

// EnumValue pairs an enum constant with its encoded form.
type EnumValue struct {
	Name    string
	Encoded string
}

// Option customizes a field.
type Option func(*Spec)

// Mandatory marks the field as required by validation.
func Mandatory() Option {
	return func(s *Spec) { s.mandatory = true }
}

// Doc attaches a human-readable description.
func Doc(text string) Option {
	return func(s *Spec) { s.doc = text }
}

// Spec holds the metadata every field shares.
type Spec struct {
	name      string
	key       string
	doc       string
	mandatory bool
}

// NewSpec builds field metadata. An empty key defaults to the name.
func NewSpec(name, key string, opts ...Option) Spec {
	if key == "" {
		key = name
	}
	s := Spec{name: name, key: key}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s Spec) Name() string    { return s.name }
func (s Spec) Key() string     { return s.key }
func (s Spec) Doc() string     { return s.doc }
func (s Spec) Mandatory() bool { return s.mandatory }

// String is a plain string field.
type String struct {
	Spec
}

// NewString creates a string field.
func NewString(name, key string, opts ...Option) *String {
	return &String{Spec: NewSpec(name, key, opts...)}
}

func (f *String) Type() string { return "string" }

// Get returns the value, absent when the key is not set.
func (f *String) Get(b *Bag) (string, bool) {
	return b.Get(f.key)
}

// Set stores v.
func (f *String) Set(b *Bag, v string) {
	b.Set(f.key, v)
}

func (f *String) IsSet(b *Bag) bool {
	return b.Has(f.key)
}

func (f *String) Check(*Bag) error {
	return nil
}

// Bool is a boolean field with explicit true/false encodings.
type Bool struct {
	Spec
	trueValue  string
	falseValue string
}

// NewBool creates a boolean field encoded as "true"/"false".
func NewBool(name, key string, opts ...Option) *Bool {
	return NewBoolEncoded(name, key, "true", "false", opts...)
}

// NewBoolEncoded creates a boolean field with custom encodings. Either may be empty.
func NewBoolEncoded(name, key, trueValue, falseValue string, opts ...Option) *Bool {
	return &Bool{Spec: NewSpec(name, key, opts...), trueValue: trueValue, falseValue: falseValue}
}

func (f *Bool) Type() string { return "bool" }

// Encodings returns the true and false encodings.
func (f *Bool) Encodings() (string, string) {
	return f.trueValue, f.falseValue
}

// Get decodes the stored value. Values matching neither encoding are absent.
func (f *Bool) Get(b *Bag) (bool, bool) {
	raw, ok := b.Get(f.key)
	if !ok {
		return false, false
	}
	switch raw {
	case f.trueValue:
		return true, true
	case f.falseValue:
		return false, true
	default:
		return false, false
	}
}

// Set stores the encoding of v.
func (f *Bool) Set(b *Bag, v bool) {
	if v {
		b.Set(f.key, f.trueValue)
		return
	}
	b.Set(f.key, f.falseValue)
}

func (f *Bool) IsSet(b *Bag) bool {
	_, ok := f.Get(b)
	return ok
}

func (f *Bool) Check(b *Bag) error {
	raw, ok := b.Get(f.key)
	if !ok || raw == f.trueValue || raw == f.falseValue {
		return nil
	}
	return fmt.Errorf("expected %q or %q: %w", f.trueValue, f.falseValue, dslerrors.ErrInvalidValue)
}

// Int is a decimal integer field.
type Int struct {
	Spec
}

// NewInt creates an integer field.
func NewInt(name, key string, opts ...Option) *Int {
	return &Int{Spec: NewSpec(name, key, opts...)}
}

func (f *Int) Type() string { return "int" }

// Get decodes the stored value. Non-integer values are absent.
func (f *Int) Get(b *Bag) (int, bool) {
	raw, ok := b.Get(f.key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Set stores v in decimal form.
func (f *Int) Set(b *Bag, v int) {
	b.Set(f.key, strconv.Itoa(v))
}

func (f *Int) IsSet(b *Bag) bool {
	_, ok := f.Get(b)
	return ok
}

func (f *Int) Check(b *Bag) error {
	raw, ok := b.Get(f.key)
	if !ok {
		return nil
	}
	if _, err := strconv.Atoi(raw); err != nil {
		return fmt.Errorf("expected an integer: %w", dslerrors.ErrInvalidValue)
	}
	return nil
}
