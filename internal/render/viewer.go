package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/sourceplane/litedsl/internal/catalog"
	"github.com/sourceplane/litedsl/internal/model"
	"github.com/sourceplane/litedsl/internal/params"
)

// Palette holds the colors used by the viewers
type Palette struct {
	Error   *color.Color
	Warning *color.Color
	OK      *color.Color
	Header  *color.Color
	Muted   *color.Color
}

// NewPalette creates a palette. When enabled is false every color is a no-op,
// otherwise output is colored when the terminal supports it.
func NewPalette(enabled bool) *Palette {
	p := &Palette{
		Error:   color.New(color.FgRed, color.Bold),
		Warning: color.New(color.FgYellow),
		OK:      color.New(color.FgGreen),
		Header:  color.New(color.Bold),
		Muted:   color.New(color.Faint),
	}
	if !enabled {
		for _, c := range []*color.Color{p.Error, p.Warning, p.OK, p.Header, p.Muted} {
			c.DisableColor()
		}
	}
	return p
}

// ReportViewer renders validation findings as a tree grouped by source and descriptor
type ReportViewer struct {
	palette *Palette
}

// NewReportViewer creates a report viewer
func NewReportViewer(palette *Palette) *ReportViewer {
	return &ReportViewer{palette: palette}
}

// Report is the validation outcome of one source
type Report struct {
	Source      string
	Descriptors int
	Findings    []model.Finding
	Err         error
}

// View returns the findings tree of all reports, followed by a summary
func (v *ReportViewer) View(reports []Report) string {
	var sb strings.Builder
	var errorCount, warningCount, failed int

	for _, report := range reports {
		if report.Err != nil {
			failed++
			fmt.Fprintf(&sb, "%s %s\n", v.palette.Error.Sprint("✗"), report.Source)
			fmt.Fprintf(&sb, "└─ %s\n\n", v.palette.Error.Sprint(report.Err.Error()))
			continue
		}
		if len(report.Findings) == 0 {
			fmt.Fprintf(&sb, "%s %s (%d descriptors)\n\n", v.palette.OK.Sprint("✓"), report.Source, report.Descriptors)
			continue
		}

		mark := v.palette.Warning.Sprint("!")
		if model.HasErrors(report.Findings) {
			mark = v.palette.Error.Sprint("✗")
		}
		fmt.Fprintf(&sb, "%s %s (%d descriptors)\n", mark, report.Source, report.Descriptors)

		groups := groupFindings(report.Findings)
		for i, group := range groups {
			isLastGroup := i == len(groups)-1
			prefix, connector := "├─ ", "│  "
			if isLastGroup {
				prefix, connector = "└─ ", "   "
			}
			head := group[0]
			id := head.ID
			if id == "" {
				id = "(no id)"
			}
			fmt.Fprintf(&sb, "%s%s %s %s\n", prefix, head.Kind, v.palette.Header.Sprint(id), v.palette.Muted.Sprintf("[%s]", head.Type))

			for j, f := range group {
				findingPrefix := connector + "├─ "
				if j == len(group)-1 {
					findingPrefix = connector + "└─ "
				}
				switch f.Severity {
				case model.SeverityError:
					errorCount++
					fmt.Fprintf(&sb, "%s%s %s\n", findingPrefix, v.palette.Error.Sprint("error"), f.Message)
				default:
					warningCount++
					fmt.Fprintf(&sb, "%s%s %s\n", findingPrefix, v.palette.Warning.Sprint("warning"), f.Message)
				}
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(&sb, "Summary: %d documents, %d errors, %d warnings", len(reports), errorCount, warningCount)
	if failed > 0 {
		fmt.Fprintf(&sb, ", %d failed to load", failed)
	}
	sb.WriteString("\n")
	return sb.String()
}

// groupFindings splits findings into runs belonging to the same descriptor, keeping order
func groupFindings(findings []model.Finding) [][]model.Finding {
	var groups [][]model.Finding
	for _, f := range findings {
		n := len(groups)
		if n > 0 {
			last := groups[n-1][0]
			if last.Kind == f.Kind && last.ID == f.ID && last.Type == f.Type {
				groups[n-1] = append(groups[n-1], f)
				continue
			}
		}
		groups = append(groups, []model.Finding{f})
	}
	return groups
}

// TypeViewer describes catalog entries and their fields
type TypeViewer struct {
	palette *Palette
}

// NewTypeViewer creates a type viewer
func NewTypeViewer(palette *Palette) *TypeViewer {
	return &TypeViewer{palette: palette}
}

// List returns one line per catalog entry
func (v *TypeViewer) List(entries []catalog.Entry) string {
	if len(entries) == 0 {
		return "No descriptor types"
	}

	var sb strings.Builder
	var kind model.Kind
	for _, e := range entries {
		if e.Kind != kind {
			if kind != "" {
				sb.WriteString("\n")
			}
			kind = e.Kind
			fmt.Fprintf(&sb, "%s\n", v.palette.Header.Sprint(kind))
		}
		fmt.Fprintf(&sb, "  %-28s %-22s %s\n", e.Type, v.palette.Muted.Sprint(e.Name), e.Doc)
	}
	return sb.String()
}

// Describe returns the field tree of one descriptor type
func (v *TypeViewer) Describe(entry catalog.Entry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s (%s)\n", v.palette.Header.Sprint(entry.Type), v.palette.Muted.Sprintf("[%s]", entry.Kind), entry.Name)
	if entry.Doc != "" {
		fmt.Fprintf(&sb, "%s\n", entry.Doc)
	}
	sb.WriteString("═══════════════════════════════════════════════════════════\n")

	d := entry.New()
	if initial := d.Params(); initial.Len() > 0 {
		sb.WriteString("Initial params:\n")
		for _, key := range initial.Keys() {
			value, _ := initial.Get(key)
			fmt.Fprintf(&sb, "  %s = %q\n", key, value)
		}
	}

	fields := d.Fields()
	if len(fields) == 0 {
		sb.WriteString("No typed fields\n")
		return sb.String()
	}
	sb.WriteString("Fields:\n")
	v.writeFields(&sb, fields, "")
	return sb.String()
}

func (v *TypeViewer) writeFields(sb *strings.Builder, fields []params.Field, indent string) {
	for i, f := range fields {
		isLast := i == len(fields)-1
		prefix, connector := indent+"├─ ", indent+"│  "
		if isLast {
			prefix, connector = indent+"└─ ", indent+"   "
		}

		line := fmt.Sprintf("%s%s %s %s", prefix, f.Name(), v.palette.Muted.Sprintf("(%s)", f.Key()), f.Type())
		if f.Mandatory() {
			line += " " + v.palette.Warning.Sprint("mandatory")
		}
		if f.Doc() != "" {
			line += " | " + f.Doc()
		}
		sb.WriteString(line + "\n")

		switch field := f.(type) {
		case params.Enumerated:
			values := field.Values()
			for j, value := range values {
				valuePrefix := connector + "├─ "
				if j == len(values)-1 {
					valuePrefix = connector + "└─ "
				}
				fmt.Fprintf(sb, "%s%s = %q\n", valuePrefix, value.Name, value.Encoded)
			}
		case params.Nested:
			variants := field.Variants()
			for j, variant := range variants {
				isLastVariant := j == len(variants)-1
				variantPrefix, variantConnector := connector+"├─ ", connector+"│  "
				if isLastVariant {
					variantPrefix, variantConnector = connector+"└─ ", connector+"   "
				}
				variantLine := fmt.Sprintf("%s%s = %q", variantPrefix, v.palette.Header.Sprint(variant.Name), variant.Tag)
				if variant.Doc != "" {
					variantLine += " | " + variant.Doc
				}
				sb.WriteString(variantLine + "\n")
				v.writeFields(sb, variant.Fields, variantConnector)
			}
		}
	}
}
