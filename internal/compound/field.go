package compound

import (
	dslerrors "github.com/sourceplane/litedsl/internal/errors"
	"github.com/sourceplane/litedsl/internal/params"
)

// Field is a compound parameter bound to one bag key.
type Field[V Variant] struct {
	params.Spec
	registry *Registry[V]
}

// NewField creates a compound field. An empty key defaults to the name.
func NewField[V Variant](name, key string, registry *Registry[V], opts ...params.Option) *Field[V] {
	return &Field[V]{Spec: params.NewSpec(name, key, opts...), registry: registry}
}

func (f *Field[V]) Type() string { return "compound" }

// Registry returns the variants the field accepts.
func (f *Field[V]) Registry() *Registry[V] { return f.registry }

// Set writes v's tag under the field key, copies the variant's own parameters
// into b and rebinds v to b. Keys of a previously selected variant stay in place.
func (f *Field[V]) Set(b *params.Bag, v V) {
	b.Set(f.Key(), v.Tag())
	b.Merge(v.Params())
	v.Bind(b)
}

// Get decodes the active variant, bound to b. ok is false when the key is unset.
func (f *Field[V]) Get(b *params.Bag) (V, bool, error) {
	var zero V
	tag, ok := b.Get(f.Key())
	if !ok {
		return zero, false, nil
	}
	v, err := f.registry.Decode(tag)
	if err != nil {
		return zero, false, dslerrors.Wrapf(err, "decode %s", f.Name())
	}
	v.Bind(b)
	return v, true, nil
}

// Reset removes the tag and every key owned by any variant.
func (f *Field[V]) Reset(b *params.Bag) {
	b.Delete(f.Key())
	for _, info := range f.registry.Variants() {
		resetFields(b, info.Fields)
	}
}

func resetFields(b *params.Bag, fields []params.Field) {
	for _, field := range fields {
		if n, ok := field.(params.Nested); ok {
			b.Delete(n.Key())
			for _, info := range n.Variants() {
				resetFields(b, info.Fields)
			}
			continue
		}
		b.Delete(field.Key())
	}
}

func (f *Field[V]) IsSet(b *params.Bag) bool {
	_, ok, err := f.Get(b)
	return ok && err == nil
}

func (f *Field[V]) Check(b *params.Bag) error {
	_, _, err := f.Get(b)
	return err
}

// Active returns the fields of the selected variant.
func (f *Field[V]) Active(b *params.Bag) ([]params.Field, bool) {
	v, ok, err := f.Get(b)
	if !ok || err != nil {
		return nil, false
	}
	return v.Fields(), true
}

func (f *Field[V]) Variants() []params.VariantInfo {
	return f.registry.Variants()
}
