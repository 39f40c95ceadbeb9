package params

import (
	"fmt"

	dslerrors "github.com/sourceplane/litedsl/internal/errors"
)

// Enum is a field restricted to the values of T. Each value has an encoded
// form; without a mapping table the value's own name is the encoding.
type Enum[T ~string] struct {
	Spec
	values []T
	encode map[T]string
	decode map[string]T
}

// NewEnum creates an enum field. mapping may be nil or partial; unmapped
// values encode as their name.
func NewEnum[T ~string](name, key string, values []T, mapping map[T]string, opts ...Option) *Enum[T] {
	f := &Enum[T]{
		Spec:   NewSpec(name, key, opts...),
		values: append([]T(nil), values...),
		encode: make(map[T]string, len(values)),
		decode: make(map[string]T, len(values)),
	}
	for _, v := range values {
		enc, ok := mapping[v]
		if !ok {
			enc = string(v)
		}
		if _, dup := f.decode[enc]; dup {
			panic(fmt.Sprintf("params: enum %s maps two values to %q", name, enc))
		}
		f.encode[v] = enc
		f.decode[enc] = v
	}
	return f
}

func (f *Enum[T]) Type() string { return "enum" }

// Encode returns the wire form of v.
func (f *Enum[T]) Encode(v T) (string, bool) {
	enc, ok := f.encode[v]
	return enc, ok
}

// Decode maps a wire value back to its enum constant.
func (f *Enum[T]) Decode(raw string) (T, error) {
	v, ok := f.decode[raw]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%q: %w", raw, dslerrors.ErrUnknownEnumValue)
	}
	return v, nil
}

// Get decodes the stored value. Unknown encodings are absent.
func (f *Enum[T]) Get(b *Bag) (T, bool) {
	raw, ok := b.Get(f.key)
	if !ok {
		var zero T
		return zero, false
	}
	v, err := f.Decode(raw)
	return v, err == nil
}

// Set stores the encoding of v. Values outside the table are stored by name.
func (f *Enum[T]) Set(b *Bag, v T) {
	enc, ok := f.encode[v]
	if !ok {
		enc = string(v)
	}
	b.Set(f.key, enc)
}

func (f *Enum[T]) IsSet(b *Bag) bool {
	_, ok := f.Get(b)
	return ok
}

func (f *Enum[T]) Check(b *Bag) error {
	raw, ok := b.Get(f.key)
	if !ok {
		return nil
	}
	_, err := f.Decode(raw)
	return err
}

// Values lists the enum constants in declaration order.
func (f *Enum[T]) Values() []EnumValue {
	out := make([]EnumValue, 0, len(f.values))
	for _, v := range f.values {
		out = append(out, EnumValue{Name: string(v), Encoded: f.encode[v]})
	}
	return out
}
