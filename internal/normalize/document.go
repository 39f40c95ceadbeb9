package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	dslerrors "github.com/sourceplane/litedsl/internal/errors"
	"github.com/sourceplane/litedsl/internal/model"
)

// Document transforms a raw document into canonical form: apiVersion and kind
// are defaulted, entries without an ID get the next free ID for their prefix.
// The input is left untouched.
func Document(doc *model.Document) (*model.Document, error) {
	if doc == nil {
		return nil, fmt.Errorf("document cannot be nil: %w", dslerrors.ErrInvalidDocument)
	}

	normalized := &model.Document{
		APIVersion: doc.APIVersion,
		Kind:       doc.Kind,
		Metadata:   doc.Metadata,
	}
	if normalized.APIVersion == "" {
		normalized.APIVersion = model.APIVersion
	}
	if normalized.Kind == "" {
		normalized.Kind = model.DocumentBuildConfiguration
	}

	// Highest numeric suffix per prefix. Kinds sharing a prefix share the counter.
	next := make(map[string]int)
	for _, kind := range model.Kinds() {
		seen := make(map[string]struct{})
		for i, entry := range doc.Spec.Entries(kind) {
			if strings.TrimSpace(entry.Type) == "" {
				return nil, fmt.Errorf("%s[%d] must have a type: %w", kind.Section(), i, dslerrors.ErrInvalidDocument)
			}
			if entry.ID == "" {
				continue
			}
			if _, dup := seen[entry.ID]; dup {
				return nil, fmt.Errorf("%s: duplicate id %s: %w", kind.Section(), entry.ID, dslerrors.ErrInvalidDocument)
			}
			seen[entry.ID] = struct{}{}

			prefix := kind.IDPrefix()
			if n, ok := idNumber(prefix, entry.ID); ok && n > next[prefix] {
				next[prefix] = n
			}
		}
	}

	for _, kind := range model.Kinds() {
		entries := doc.Spec.Entries(kind)
		if entries == nil {
			continue
		}
		out := make([]model.Entry, len(entries))
		for i, entry := range entries {
			if entry.ID == "" {
				prefix := kind.IDPrefix()
				if next[prefix] == math.MaxInt {
					return nil, fmt.Errorf("%s: no id left after %s%d: %w", kind.Section(), prefix, next[prefix], dslerrors.ErrInvalidDocument)
				}
				next[prefix]++
				entry.ID = prefix + strconv.Itoa(next[prefix])
			}
			if entry.Params != nil {
				entry.Params = entry.Params.Clone()
			}
			out[i] = entry
		}
		normalized.Spec.SetEntries(kind, out)
	}

	return normalized, nil
}

// idNumber extracts n from an ID of the form <prefix><n>
func idNumber(prefix, id string) (int, bool) {
	if !strings.HasPrefix(id, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
