package render

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sourceplane/litedsl/internal/catalog"
	"github.com/sourceplane/litedsl/internal/catalog/buildfeatures"
	"github.com/sourceplane/litedsl/internal/catalog/buildsteps"
	dslerrors "github.com/sourceplane/litedsl/internal/errors"
	"github.com/sourceplane/litedsl/internal/model"
	"github.com/sourceplane/litedsl/internal/params"
)

func sampleDocument() *model.Document {
	return &model.Document{
		APIVersion: model.APIVersion,
		Kind:       model.DocumentBuildConfiguration,
		Metadata:   model.Metadata{Name: "build"},
		Spec: model.Spec{
			Steps: []model.Entry{{
				ID:     "RUNNER_1",
				Type:   buildsteps.ScriptType,
				Params: params.BagFromMap(map[string]string{"script.content": "make", "use.custom.script": "true"}),
			}},
		},
	}
}

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()
	doc := sampleDocument()

	data, err := r.Render(doc, "json")
	require.NoError(t, err)
	var decoded model.Document
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "build", decoded.Metadata.Name)
	v, _ := decoded.Spec.Steps[0].Params.Get("script.content")
	assert.Equal(t, "make", v)

	data, err = r.Render(doc, "YAML")
	require.NoError(t, err)
	decoded = model.Document{}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "RUNNER_1", decoded.Spec.Steps[0].ID)

	_, err = r.Render(doc, "toml")
	assert.ErrorIs(t, err, dslerrors.ErrUnsupportedFormat)
}

func TestRenderer_WriteDocument(t *testing.T) {
	r := NewRenderer()
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "out", "build.yaml")
	require.NoError(t, r.WriteDocument(sampleDocument(), yamlPath))
	data, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: litedsl.sourceplane.io/v1")

	plainPath := filepath.Join(dir, "build")
	require.NoError(t, r.WriteDocument(sampleDocument(), plainPath))
	data, err = os.ReadFile(plainPath)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFor("a.json", FormatYAML))
	assert.Equal(t, FormatYAML, FormatFor("a.YML", FormatJSON))
	assert.Equal(t, FormatYAML, FormatFor("a", FormatYAML))
}

func TestRenderer_DebugDumpMasksSecrets(t *testing.T) {
	f := buildfeatures.NewCommitStatusPublisher()
	f.SetID("BUILD_EXT_1")
	f.Param("secure:github_access_token", "ghp_123")
	cfg := &model.Configuration{Source: "build.yaml", Metadata: model.Metadata{Name: "build"}, Descriptors: []model.Descriptor{f}}

	out := NewRenderer().DebugDump(cfg)
	assert.Contains(t, out, "Configuration: build (build.yaml)")
	assert.Contains(t, out, "buildFeature BUILD_EXT_1")
	assert.Contains(t, out, `secure:github_access_token = "******"`)
	assert.NotContains(t, out, "ghp_123")
}

func TestReportViewer_View(t *testing.T) {
	reports := []Report{
		{Source: "ok.yaml", Descriptors: 2},
		{
			Source:      "build.yaml",
			Descriptors: 3,
			Findings: []model.Finding{
				{Kind: model.KindBuildStep, ID: "RUNNER_1", Type: "simpleRunner", Path: "scriptContent",
					Message: "mandatory 'scriptContent' property is not specified", Severity: model.SeverityError},
				{Kind: model.KindBuildStep, ID: "RUNNER_1", Type: "simpleRunner", Path: "dockerImagePlatform",
					Message: "invalid value 'mac' of 'dockerImagePlatform' property", Severity: model.SeverityWarning},
				{Kind: model.KindVcsRoot, ID: "VCS_ROOT_1", Type: "tfs", Path: "url",
					Message: "mandatory 'url' property is not specified", Severity: model.SeverityError},
			},
		},
		{Source: "broken.yaml", Err: errors.New("failed to parse document")},
	}

	out := NewReportViewer(NewPalette(false)).View(reports)
	assert.Contains(t, out, "✓ ok.yaml (2 descriptors)")
	assert.Contains(t, out, "✗ build.yaml (3 descriptors)\n├─ buildStep RUNNER_1 [simpleRunner]\n│  ├─ error mandatory 'scriptContent' property is not specified\n│  └─ warning invalid value")
	assert.Contains(t, out, "└─ vcsRoot VCS_ROOT_1 [tfs]\n   └─ error mandatory 'url' property is not specified")
	assert.Contains(t, out, "✗ broken.yaml\n└─ failed to parse document")
	assert.Contains(t, out, "Summary: 3 documents, 2 errors, 1 warnings, 1 failed to load")
}

func TestTypeViewer_Describe(t *testing.T) {
	entry, ok := catalog.Default().Lookup(model.KindBuildFeature, buildfeatures.CommitStatusPublisherType)
	require.True(t, ok)

	out := NewTypeViewer(NewPalette(false)).Describe(entry)
	assert.Contains(t, out, "commit-status-publisher [buildFeature] (commitStatusPublisher)")
	assert.Contains(t, out, "publisher (publisherId)")
	assert.Contains(t, out, `github = "githubStatusPublisher"`)
	assert.Contains(t, out, "githubUrl (github_host) string mandatory")
	assert.Contains(t, out, `personalToken = "token"`)
	assert.Contains(t, out, "token (secure:github_access_token) string mandatory")
}

func TestTypeViewer_DescribeEnumAndInitialParams(t *testing.T) {
	entry, ok := catalog.Default().Lookup(model.KindBuildStep, buildsteps.ScriptType)
	require.True(t, ok)

	out := NewTypeViewer(NewPalette(false)).Describe(entry)
	assert.Contains(t, out, "Initial params:\n  use.custom.script = \"true\"")
	assert.Contains(t, out, "scriptContent (script.content) string mandatory")
	assert.Contains(t, out, `Linux = "linux"`)
}

func TestTypeViewer_List(t *testing.T) {
	v := NewTypeViewer(NewPalette(false))
	assert.Equal(t, "No descriptor types", v.List(nil))

	out := v.List(catalog.Default().List(model.KindTrigger))
	assert.Contains(t, out, "trigger\n")
	assert.Contains(t, out, "retryBuildTrigger")
	assert.Contains(t, out, "buildDependencyTrigger")
}
