// Package params implements the flat parameter bag descriptors are stored in
// and the typed fields bound to its keys.
package params

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	dslerrors "github.com/sourceplane/litedsl/internal/errors"
)

// Bag is an ordered string -> string mapping. Keys are unique and keep their
// insertion order, so serialized documents round-trip without reshuffling.
type Bag struct {
	values *orderedmap.OrderedMap
}

// NewBag creates an empty bag.
func NewBag() *Bag {
	return &Bag{values: orderedmap.New()}
}

// BagFromMap creates a bag from a plain map. Keys are inserted in sorted order.
func BagFromMap(m map[string]string) *Bag {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b := NewBag()
	for _, k := range keys {
		b.Set(k, m[k])
	}
	return b
}

// Attach makes b a view of target: later reads and writes through b land in
// target. Values already in b are not copied.
func (b *Bag) Attach(target *Bag) {
	if b == target {
		return
	}
	b.values = target.ordered()
}

func (b *Bag) ordered() *orderedmap.OrderedMap {
	if b.values == nil {
		b.values = orderedmap.New()
	}
	return b.values
}

// Get returns the raw value stored under key.
func (b *Bag) Get(key string) (string, bool) {
	if b == nil || b.values == nil {
		return "", false
	}
	v, ok := b.values.Get(key)
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, true
}

// Has reports whether key is present, even with an empty value.
func (b *Bag) Has(key string) bool {
	_, ok := b.Get(key)
	return ok
}

// Set stores value under key. Existing keys keep their position.
func (b *Bag) Set(key, value string) {
	b.ordered().Set(key, value)
}

// Delete removes key from the bag.
func (b *Bag) Delete(key string) {
	if b == nil || b.values == nil {
		return
	}
	b.values.Delete(key)
}

// Keys returns the keys in insertion order.
func (b *Bag) Keys() []string {
	if b == nil || b.values == nil {
		return nil
	}
	return append([]string(nil), b.values.Keys()...)
}

// Len returns the number of keys.
func (b *Bag) Len() int {
	return len(b.Keys())
}

// Clone returns an independent copy of the bag.
func (b *Bag) Clone() *Bag {
	if b == nil || b.values == nil {
		return NewBag()
	}
	return &Bag{values: b.values.Clone()}
}

// Merge copies every key of other into b. Values from other win, new keys are appended.
func (b *Bag) Merge(other *Bag) {
	if other == nil || other == b {
		return
	}
	for _, k := range other.Keys() {
		v, _ := other.Get(k)
		b.Set(k, v)
	}
}

// ToMap returns a plain, unordered copy of the bag.
func (b *Bag) ToMap() map[string]string {
	out := make(map[string]string, b.Len())
	for _, k := range b.Keys() {
		out[k], _ = b.Get(k)
	}
	return out
}

// MarshalJSON writes the bag as a JSON object preserving key order.
func (b *Bag) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.ordered())
}

// UnmarshalJSON reads a flat JSON object. Scalar values are converted to strings,
// numbers keep their literal text, nested objects and arrays are rejected.
func (b *Bag) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		b.values = orderedmap.New()
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("params must be an object: %w", dslerrors.ErrInvalidDocument)
	}

	values := orderedmap.New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		k, _ := tok.(string)

		var v any
		if err := dec.Decode(&v); err != nil {
			return dslerrors.Wrapf(err, "parameter %q", k)
		}
		s, err := scalarString(v)
		if err != nil {
			return dslerrors.Wrapf(err, "parameter %q", k)
		}
		values.Set(k, s)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	b.values = values
	return nil
}

// MarshalYAML writes the bag as a YAML mapping preserving key order.
func (b *Bag) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range b.Keys() {
		v, _ := b.Get(k)
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v},
		)
	}
	return node, nil
}

// UnmarshalYAML reads a flat YAML mapping. Scalars keep their literal text,
// so `enabled: true` is stored as "true".
func (b *Bag) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: params must be a mapping: %w", node.Line, dslerrors.ErrInvalidDocument)
	}

	values := orderedmap.New()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if valueNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: parameter %q must be a scalar: %w", valueNode.Line, keyNode.Value, dslerrors.ErrInvalidDocument)
		}
		value := valueNode.Value
		if valueNode.Tag == "!!null" {
			value = ""
		}
		values.Set(keyNode.Value, value)
	}
	b.values = values
	return nil
}

// scalarString converts a decoded JSON scalar into its parameter string form.
func scalarString(v any) (string, error) {
	switch n := v.(type) {
	case nil:
		return "", nil
	case json.Number:
		return n.String(), nil
	case string, bool, float64:
		return cast.ToStringE(v)
	default:
		return "", fmt.Errorf("value of type %T is not a scalar: %w", v, dslerrors.ErrInvalidDocument)
	}
}
