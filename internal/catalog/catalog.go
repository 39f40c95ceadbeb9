// Package catalog maps descriptor kinds and types to their constructors.
package catalog

import (
	"fmt"
	"sort"

	dslerrors "github.com/sourceplane/litedsl/internal/errors"
	"github.com/sourceplane/litedsl/internal/model"
	"github.com/sourceplane/litedsl/internal/params"
)

// Entry registers one descriptor type
type Entry struct {
	Kind model.Kind
	Type string
	// Name is the short name used by the CLI
	Name string
	Doc  string
	New  func() model.Descriptor
}

type key struct {
	kind model.Kind
	typ  string
}

// Catalog is an immutable set of descriptor types
type Catalog struct {
	entries []Entry
	index   map[key]int
}

// New builds a catalog. Registering one kind and type twice panics.
func New(entries ...Entry) *Catalog {
	c := &Catalog{index: make(map[key]int, len(entries))}
	for _, e := range entries {
		k := key{e.Kind, e.Type}
		if _, dup := c.index[k]; dup {
			panic(fmt.Sprintf("catalog: %s %q registered twice", e.Kind, e.Type))
		}
		c.index[k] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c
}

// Lookup finds the entry for kind and type
func (c *Catalog) Lookup(kind model.Kind, typ string) (Entry, bool) {
	i, ok := c.index[key{kind, typ}]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Find resolves a type or short name across all kinds. kind may be empty.
func (c *Catalog) Find(kind model.Kind, name string) []Entry {
	var out []Entry
	for _, e := range c.entries {
		if kind != "" && e.Kind != kind {
			continue
		}
		if e.Type == name || e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

// New constructs an empty descriptor with its initial parameters
func (c *Catalog) New(kind model.Kind, typ string) (model.Descriptor, error) {
	e, ok := c.Lookup(kind, typ)
	if !ok {
		return nil, fmt.Errorf("%s %q: %w", kind, typ, dslerrors.ErrUnknownType)
	}
	return e.New(), nil
}

// Decode constructs a descriptor and overlays bag on top of its initial
// parameters.
func (c *Catalog) Decode(kind model.Kind, typ, id string, bag *params.Bag) (model.Descriptor, error) {
	d, err := c.New(kind, typ)
	if err != nil {
		return nil, err
	}
	d.SetID(id)
	d.Params().Merge(bag)
	return d, nil
}

// DecodeGeneric behaves like Decode but falls back to an untyped descriptor
// for unknown types.
func (c *Catalog) DecodeGeneric(kind model.Kind, typ, id string, bag *params.Bag) (model.Descriptor, bool) {
	if d, err := c.Decode(kind, typ, id, bag); err == nil {
		return d, true
	}
	g := model.NewGeneric(kind, typ)
	g.SetID(id)
	g.Params().Merge(bag)
	return g, false
}

// Clone copies a descriptor. The copy owns its parameters.
func (c *Catalog) Clone(d model.Descriptor) model.Descriptor {
	var out model.Descriptor
	if e, ok := c.Lookup(d.Kind(), d.Type()); ok {
		out = e.New()
		for _, k := range out.Params().Keys() {
			out.Params().Delete(k)
		}
	} else {
		out = model.NewGeneric(d.Kind(), d.Type())
	}
	out.SetID(d.ID())
	out.Params().Merge(d.Params())
	return out
}

// List returns entries of kind sorted by type, or every entry when kind is empty
func (c *Catalog) List(kind model.Kind) []Entry {
	var out []Entry
	for _, e := range c.entries {
		if kind == "" || e.Kind == kind {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Type < out[j].Type
	})
	return out
}
