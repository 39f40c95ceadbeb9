package loader

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/sourceplane/litedsl/internal/model"
	"github.com/sourceplane/litedsl/internal/params"
)

// hclRoot is the top-level layout of an HCL document.
//
//	api_version = "litedsl.sourceplane.io/v1"
//	kind        = "BuildConfiguration"
//
//	metadata {
//	  name = "build"
//	}
//
//	step "RUNNER_1" {
//	  type   = "simpleRunner"
//	  params = { "script.content" = "make" }
//	}
type hclRoot struct {
	APIVersion        string       `hcl:"api_version,optional"`
	Kind              string       `hcl:"kind,optional"`
	Metadata          *hclMetadata `hcl:"metadata,block"`
	VcsRoots          []*hclEntry  `hcl:"vcs_root,block"`
	Steps             []*hclEntry  `hcl:"step,block"`
	Features          []*hclEntry  `hcl:"feature,block"`
	Triggers          []*hclEntry  `hcl:"trigger,block"`
	FailureConditions []*hclEntry  `hcl:"failure_condition,block"`
	ProjectFeatures   []*hclEntry  `hcl:"project_feature,block"`
}

type hclMetadata struct {
	Name        string `hcl:"name"`
	Description string `hcl:"description,optional"`
	Namespace   string `hcl:"namespace,optional"`
}

type hclEntry struct {
	ID     string         `hcl:"id,label"`
	Type   string         `hcl:"type"`
	Params hcl.Expression `hcl:"params,optional"`
}

// ParseHCL decodes an HCL document. api_version and kind default to the
// current version and BuildConfiguration when omitted.
func ParseHCL(filename string, data []byte) (*model.Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root hclRoot
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	doc := &model.Document{
		APIVersion: root.APIVersion,
		Kind:       root.Kind,
	}
	if doc.APIVersion == "" {
		doc.APIVersion = model.APIVersion
	}
	if doc.Kind == "" {
		doc.Kind = model.DocumentBuildConfiguration
	}
	if root.Metadata != nil {
		doc.Metadata = model.Metadata{
			Name:        root.Metadata.Name,
			Description: root.Metadata.Description,
			Namespace:   root.Metadata.Namespace,
		}
	}

	sections := map[model.Kind][]*hclEntry{
		model.KindVcsRoot:          root.VcsRoots,
		model.KindBuildStep:        root.Steps,
		model.KindBuildFeature:     root.Features,
		model.KindTrigger:          root.Triggers,
		model.KindFailureCondition: root.FailureConditions,
		model.KindProjectFeature:   root.ProjectFeatures,
	}
	for _, kind := range model.Kinds() {
		blocks := sections[kind]
		if len(blocks) == 0 {
			continue
		}
		entries := make([]model.Entry, 0, len(blocks))
		for _, block := range blocks {
			bag, err := paramsFromExpr(block.Params)
			if err != nil {
				return nil, fmt.Errorf("failed to decode params of %s %q in %s: %w", kind, block.ID, filename, err)
			}
			entries = append(entries, model.Entry{ID: block.ID, Type: block.Type, Params: bag})
		}
		doc.Spec.SetEntries(kind, entries)
	}
	return doc, nil
}

// paramsFromExpr evaluates a params object into a bag, converting every value to a string
func paramsFromExpr(expr hcl.Expression) (*params.Bag, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("params must be known values")
	}
	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("params must be an object, got %s", ty.FriendlyName())
	}

	bag := params.NewBag()
	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		key := k.AsString()
		if v.IsNull() {
			bag.Set(key, "")
			continue
		}
		s, err := convert.Convert(v, cty.String)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", key, err)
		}
		bag.Set(key, s.AsString())
	}
	return bag, nil
}
