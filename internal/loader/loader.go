package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/sourceplane/litedsl/internal/catalog"
	dslerrors "github.com/sourceplane/litedsl/internal/errors"
	"github.com/sourceplane/litedsl/internal/model"
	"github.com/sourceplane/litedsl/internal/schema"
)

// Format is a document encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

// FormatOf returns the document format for a file extension
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".hcl":
		return FormatHCL, nil
	}
	return "", fmt.Errorf("%s: %w", path, dslerrors.ErrUnsupportedFormat)
}

// Loader reads configuration documents and decodes their descriptors
type Loader struct {
	catalog   *catalog.Catalog
	validator *schema.Validator
	strict    bool
}

// Option configures a Loader
type Option func(*Loader)

// WithCatalog replaces the built-in descriptor catalog
func WithCatalog(c *catalog.Catalog) Option {
	return func(l *Loader) { l.catalog = c }
}

// WithStrict makes unknown descriptor types an error instead of loading them untyped
func WithStrict(strict bool) Option {
	return func(l *Loader) { l.strict = strict }
}

// New creates a loader with the embedded document schema
func New(opts ...Option) (*Loader, error) {
	validator, err := schema.NewValidator()
	if err != nil {
		return nil, err
	}
	l := &Loader{catalog: catalog.Default(), validator: validator}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Catalog returns the catalog descriptors are decoded with
func (l *Loader) Catalog() *catalog.Catalog { return l.catalog }

// Load reads, schema-checks and decodes one document
func (l *Loader) Load(ctx context.Context, path string) (*model.Configuration, error) {
	doc, err := l.LoadDocument(ctx, path)
	if err != nil {
		return nil, err
	}
	return l.Decode(ctx, doc, path)
}

// LoadDocument reads a document and checks it against the document schema
func (l *Loader) LoadDocument(ctx context.Context, path string) (*model.Document, error) {
	logger := zerolog.Ctx(ctx)

	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}
	logger.Debug().Str("path", path).Str("format", string(format)).Int("bytes", len(data)).Msg("Read document")

	var doc model.Document
	switch format {
	case FormatYAML:
		if err := l.validator.ValidateYAML(data); err != nil {
			return nil, fmt.Errorf("document %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse document %s: %w", path, err)
		}
	case FormatJSON:
		if err := l.validator.ValidateJSON(data); err != nil {
			return nil, fmt.Errorf("document %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse document %s: %w", path, err)
		}
	case FormatHCL:
		parsed, err := ParseHCL(path, data)
		if err != nil {
			return nil, err
		}
		if err := l.validator.ValidateValue(parsed); err != nil {
			return nil, fmt.Errorf("document %s: %w", path, err)
		}
		doc = *parsed
	}

	logger.Debug().Str("path", path).Str("name", doc.Metadata.Name).Int("entries", doc.Spec.Len()).Msg("Parsed document")
	return &doc, nil
}

// Decode turns document entries into descriptors, kind by kind
func (l *Loader) Decode(ctx context.Context, doc *model.Document, source string) (*model.Configuration, error) {
	if doc == nil {
		return nil, fmt.Errorf("document cannot be nil: %w", dslerrors.ErrInvalidDocument)
	}
	logger := zerolog.Ctx(ctx)

	cfg := &model.Configuration{
		Source:     source,
		APIVersion: doc.APIVersion,
		Kind:       doc.Kind,
		Metadata:   doc.Metadata,
	}

	for _, kind := range model.Kinds() {
		for i, entry := range doc.Spec.Entries(kind) {
			if entry.Type == "" {
				return nil, fmt.Errorf("%s[%d]: type is empty: %w", kind.Section(), i, dslerrors.ErrInvalidDocument)
			}

			var d model.Descriptor
			if l.strict {
				var err error
				d, err = l.catalog.Decode(kind, entry.Type, entry.ID, entry.Params)
				if err != nil {
					return nil, fmt.Errorf("%s[%d]: %w", kind.Section(), i, err)
				}
			} else {
				var known bool
				d, known = l.catalog.DecodeGeneric(kind, entry.Type, entry.ID, entry.Params)
				if !known {
					logger.Warn().Str("kind", string(kind)).Str("type", entry.Type).Str("id", entry.ID).
						Msg("Unknown descriptor type, loaded without typed fields")
				}
			}
			cfg.Descriptors = append(cfg.Descriptors, d)
		}
	}

	logger.Debug().Str("source", source).Int("descriptors", len(cfg.Descriptors)).Msg("Decoded descriptors")
	return cfg, nil
}

// Discover expands paths into document files.
// Supports glob patterns for recursive search:
//   - File: used as is
//   - Directory: non-recursive, documents directly inside it
//   - Path with *: glob; matched directories are walked recursively
//
// Results are sorted and deduplicated.
func Discover(paths ...string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if strings.Contains(p, "*") {
			matches, err := filepath.Glob(p)
			if err != nil {
				return nil, fmt.Errorf("failed to evaluate glob pattern %s: %w", p, err)
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("glob pattern %s matched no files", p)
			}
			for _, match := range matches {
				info, err := os.Stat(match)
				if err != nil {
					return nil, fmt.Errorf("failed to access %s: %w", match, err)
				}
				if !info.IsDir() {
					if isDocument(match) {
						add(match)
					}
					continue
				}
				err = filepath.Walk(match, func(path string, info os.FileInfo, err error) error {
					if err != nil {
						return err
					}
					if !info.IsDir() && isDocument(path) {
						add(path)
					}
					return nil
				})
				if err != nil {
					return nil, fmt.Errorf("failed to walk directory %s: %w", match, err)
				}
			}
			continue
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to access %s: %w", p, err)
		}
		if !info.IsDir() {
			add(p)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", p, err)
		}
		for _, entry := range entries {
			path := filepath.Join(p, entry.Name())
			if !entry.IsDir() && isDocument(path) {
				add(path)
			}
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no documents found in %s", strings.Join(paths, ", "))
	}
	sort.Strings(files)
	return files, nil
}

func isDocument(path string) bool {
	_, err := FormatOf(path)
	return err == nil
}
