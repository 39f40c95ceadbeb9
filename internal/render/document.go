package render

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	dslerrors "github.com/sourceplane/litedsl/internal/errors"
	"github.com/sourceplane/litedsl/internal/model"
)

// Output formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Renderer serializes configuration documents
type Renderer struct{}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderJSON renders a document as JSON
func (r *Renderer) RenderJSON(doc *model.Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// RenderYAML renders a document as YAML
func (r *Renderer) RenderYAML(doc *model.Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// Render renders a document in the named format
func (r *Renderer) Render(doc *model.Document, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return r.RenderJSON(doc)
	case FormatYAML, "yml":
		return r.RenderYAML(doc)
	}
	return nil, fmt.Errorf("output format %q: %w", format, dslerrors.ErrUnsupportedFormat)
}

// FormatFor picks the output format from a file extension, falling back to def
func FormatFor(path, def string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return def
}

// WriteDocument writes a document to path (JSON or YAML based on extension)
func (r *Renderer) WriteDocument(doc *model.Document, path string) error {
	return r.WriteDocumentAs(doc, path, FormatFor(path, FormatJSON))
}

// WriteDocumentAs writes a document to path in the given format
func (r *Renderer) WriteDocumentAs(doc *model.Document, path, format string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := r.Render(doc, format)
	if err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write document to %s: %w", path, err)
	}
	return nil
}

// DebugDump outputs the parameter bags of every descriptor
func (r *Renderer) DebugDump(cfg *model.Configuration) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Configuration: %s (%s)\n", cfg.Metadata.Name, cfg.Source)
	fmt.Fprintf(&sb, "Descriptors: %d\n\n", len(cfg.Descriptors))

	for _, d := range cfg.Descriptors {
		fmt.Fprintf(&sb, "%s %s\n", d.Kind(), d.ID())
		fmt.Fprintf(&sb, "  Type: %s\n", d.Type())
		fmt.Fprintf(&sb, "  Typed fields: %d\n", len(d.Fields()))
		bag := d.Params()
		fmt.Fprintf(&sb, "  Params: %d\n", bag.Len())
		for _, key := range bag.Keys() {
			v, _ := bag.Get(key)
			if strings.HasPrefix(key, "secure:") && v != "" {
				v = "******"
			}
			fmt.Fprintf(&sb, "    %s = %q\n", key, v)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
