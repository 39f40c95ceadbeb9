// Package compound implements compound parameters: tagged unions of mutually
// exclusive field groups stored in a flat parameter bag.
//
// The union's discriminant is a tag string written under the field's key. Each
// variant owns its own keys in the same bag. Decoding maps the stored tag back
// to a variant constructor and fails on tags no variant claims.
package compound

import (
	"fmt"

	dslerrors "github.com/sourceplane/litedsl/internal/errors"
	"github.com/sourceplane/litedsl/internal/params"
)

// Variant is one option of a compound parameter.
type Variant interface {
	Tag() string
	// Params returns the bag the variant's fields read and write.
	Params() *params.Bag
	// Bind points the variant at bag.
	Bind(bag *params.Bag)
	Fields() []params.Field
}

// Base carries the tag and bag of a variant. Concrete variants embed it.
type Base struct {
	tag string
	bag *params.Bag
	// private is set while bag is the variant's own, not yet bound elsewhere.
	private bool
}

// NewBase creates a variant base with a private, empty bag.
func NewBase(tag string) Base {
	return Base{tag: tag, bag: params.NewBag(), private: true}
}

func (b *Base) Tag() string { return b.tag }

func (b *Base) Params() *params.Bag {
	if b.bag == nil {
		b.bag, b.private = params.NewBag(), true
	}
	return b.bag
}

// Bind points the variant at bag. A private bag is attached to bag as well, so
// nested variants bound into it keep writing into bag.
func (b *Base) Bind(bag *params.Bag) {
	if b.private && b.bag != nil && b.bag != bag {
		bag.Merge(b.bag)
		b.bag.Attach(bag)
	}
	b.bag, b.private = bag, false
}

// Option registers a variant constructor under its DSL name.
type Option[V Variant] struct {
	Name string
	Doc  string
	New  func() V
}

type entry[V Variant] struct {
	option Option[V]
	tag    string
}

// Registry maps variant tags to constructors.
type Registry[V Variant] struct {
	entries []entry[V]
	byTag   map[string]int
}

// NewRegistry builds a registry. Tags are taken from a freshly constructed
// instance of each option; two options claiming one tag is a programming error.
func NewRegistry[V Variant](options ...Option[V]) *Registry[V] {
	r := &Registry[V]{byTag: make(map[string]int, len(options))}
	for _, opt := range options {
		tag := opt.New().Tag()
		if _, dup := r.byTag[tag]; dup {
			panic(fmt.Sprintf("compound: duplicate variant tag %q", tag))
		}
		r.byTag[tag] = len(r.entries)
		r.entries = append(r.entries, entry[V]{option: opt, tag: tag})
	}
	return r
}

// Decode constructs the variant registered for tag.
func (r *Registry[V]) Decode(tag string) (V, error) {
	i, ok := r.byTag[tag]
	if !ok {
		var zero V
		return zero, fmt.Errorf("tag %q: %w", tag, dslerrors.ErrUnknownVariant)
	}
	return r.entries[i].option.New(), nil
}

// Tags lists the registered tags in registration order.
func (r *Registry[V]) Tags() []string {
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.tag)
	}
	return out
}

// Variants describes every registered option.
func (r *Registry[V]) Variants() []params.VariantInfo {
	out := make([]params.VariantInfo, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, params.VariantInfo{
			Name:   e.option.Name,
			Tag:    e.tag,
			Doc:    e.option.Doc,
			Fields: e.option.New().Fields(),
		})
	}
	return out
}
