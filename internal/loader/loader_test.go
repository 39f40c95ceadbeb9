package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourceplane/litedsl/internal/catalog/buildfeatures"
	"github.com/sourceplane/litedsl/internal/catalog/buildsteps"
	"github.com/sourceplane/litedsl/internal/catalog/triggers"
	dslerrors "github.com/sourceplane/litedsl/internal/errors"
	"github.com/sourceplane/litedsl/internal/model"
)

const buildYAML = `apiVersion: litedsl.sourceplane.io/v1
kind: BuildConfiguration
metadata:
  name: build
spec:
  steps:
    - id: RUNNER_1
      type: simpleRunner
      params:
        script.content: make test
  features:
    - id: BUILD_EXT_1
      type: commit-status-publisher
      params:
        publisherId: githubStatusPublisher
        github_host: https://api.github.com
        github_authentication_type: token
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newLoader(t *testing.T, opts ...Option) *Loader {
	t.Helper()
	l, err := New(opts...)
	require.NoError(t, err)
	return l
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "build.yaml", buildYAML)

	cfg, err := newLoader(t).Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, "build", cfg.Metadata.Name)
	require.Len(t, cfg.Descriptors, 2)

	step, ok := cfg.Descriptors[0].(*buildsteps.ScriptBuildStep)
	require.True(t, ok)
	assert.Equal(t, "RUNNER_1", step.ID())
	content, _ := step.ScriptContent()
	assert.Equal(t, "make test", content)
	v, _ := step.Params().Get("use.custom.script")
	assert.Equal(t, "true", v)

	_, ok = cfg.Descriptors[1].(*buildfeatures.CommitStatusPublisher)
	require.True(t, ok)

	findings := cfg.Check(false)
	require.Len(t, findings, 1)
	assert.Equal(t, "publisher.authType.token", findings[0].Path)
	assert.Equal(t, "BUILD_EXT_1", findings[0].ID)
	assert.Equal(t, model.SeverityError, findings[0].Severity)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "build.json", `{
  "apiVersion": "litedsl.sourceplane.io/v1",
  "kind": "BuildConfiguration",
  "metadata": {"name": "build"},
  "spec": {
    "triggers": [
      {"id": "TRIGGER_1", "type": "retryBuildTrigger", "params": {"retryAttempts": 3, "enqueueTimeout": "60"}}
    ]
  }
}`)

	cfg, err := newLoader(t).Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, cfg.Descriptors, 1)

	trigger, ok := cfg.Descriptors[0].(*triggers.RetryBuildTrigger)
	require.True(t, ok)
	attempts, ok := trigger.Attempts()
	assert.True(t, ok)
	assert.Equal(t, 3, attempts)
	assert.Empty(t, cfg.Check(false))
}

func TestLoad_HCL(t *testing.T) {
	path := writeFile(t, t.TempDir(), "build.hcl", `
metadata {
  name = "build"
}

step "RUNNER_1" {
  type   = "simpleRunner"
  params = {
    "script.content"       = "make test"
    "log.stderr.as.errors" = true
  }
}

trigger "TRIGGER_1" {
  type   = "retryBuildTrigger"
  params = { retryAttempts = 2 }
}

vcs_root "VCS_ROOT_1" {
  type = "tfs"
}
`)

	cfg, err := newLoader(t).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, model.APIVersion, cfg.APIVersion)
	assert.Equal(t, model.DocumentBuildConfiguration, cfg.Kind)
	require.Len(t, cfg.Descriptors, 3)

	assert.Equal(t, model.KindVcsRoot, cfg.Descriptors[0].Kind())
	step := cfg.Descriptors[1].(*buildsteps.ScriptBuildStep)
	stderr, ok := step.FormatStderrAsError()
	assert.True(t, ok)
	assert.True(t, stderr)

	attempts, _ := cfg.Descriptors[2].Params().Get("retryAttempts")
	assert.Equal(t, "2", attempts)

	findings := cfg.Check(false)
	paths := make([]string, 0, len(findings))
	for _, f := range findings {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{"url", "root"}, paths)
}

func TestLoad_HCLRejectsNonObjectParams(t *testing.T) {
	path := writeFile(t, t.TempDir(), "build.hcl", `
metadata {
  name = "build"
}

step "RUNNER_1" {
  type   = "simpleRunner"
  params = ["make"]
}
`)

	_, err := newLoader(t).Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "params must be an object")
}

func TestLoad_NullParams(t *testing.T) {
	path := writeFile(t, t.TempDir(), "build.yaml", `apiVersion: litedsl.sourceplane.io/v1
kind: BuildConfiguration
metadata:
  name: build
spec:
  steps:
    - type: simpleRunner
      params:
`)

	cfg, err := newLoader(t).Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, cfg.Descriptors, 1)
	assert.Equal(t, []string{"scriptContent"}, func() []string {
		var out []string
		for _, f := range cfg.Check(false) {
			out = append(out, f.Path)
		}
		return out
	}())
}

func TestLoad_SchemaViolation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing metadata",
			content: `apiVersion: litedsl.sourceplane.io/v1
kind: BuildConfiguration
spec: {}
`,
		},
		{
			name: "wrong api version",
			content: `apiVersion: v0
kind: BuildConfiguration
metadata: {name: build}
spec: {}
`,
		},
		{
			name: "nested param value",
			content: `apiVersion: litedsl.sourceplane.io/v1
kind: BuildConfiguration
metadata: {name: build}
spec:
  steps:
    - type: simpleRunner
      params:
        script.content: {nested: true}
`,
		},
		{
			name: "unknown section",
			content: `apiVersion: litedsl.sourceplane.io/v1
kind: BuildConfiguration
metadata: {name: build}
spec:
  jobs: []
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "build.yaml", tt.content)
			_, err := newLoader(t).Load(context.Background(), path)
			assert.ErrorIs(t, err, dslerrors.ErrSchemaViolation)
		})
	}
}

func TestLoad_UnknownType(t *testing.T) {
	content := `apiVersion: litedsl.sourceplane.io/v1
kind: BuildConfiguration
metadata:
  name: build
spec:
  steps:
    - id: RUNNER_1
      type: gradle-runner
      params:
        ui.gradleRunner.gradle.tasks.names: build
`
	path := writeFile(t, t.TempDir(), "build.yaml", content)

	cfg, err := newLoader(t).Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, cfg.Descriptors, 1)
	assert.Equal(t, "gradle-runner", cfg.Descriptors[0].Type())
	assert.Empty(t, cfg.Descriptors[0].Fields())

	_, err = newLoader(t, WithStrict(true)).Load(context.Background(), path)
	assert.ErrorIs(t, err, dslerrors.ErrUnknownType)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "build.toml", "")
	_, err := newLoader(t).Load(context.Background(), path)
	assert.ErrorIs(t, err, dslerrors.ErrUnsupportedFormat)
}

func TestDecode_NilDocument(t *testing.T) {
	_, err := newLoader(t).Decode(context.Background(), nil, "")
	assert.ErrorIs(t, err, dslerrors.ErrInvalidDocument)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yaml", buildYAML)
	b := writeFile(t, dir, "b.hcl", "")
	writeFile(t, dir, "notes.txt", "")
	nested := writeFile(t, dir, "nested/c.json", "{}")

	t.Run("directory is not recursive", func(t *testing.T) {
		files, err := Discover(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{a, b}, files)
	})

	t.Run("glob walks matched directories", func(t *testing.T) {
		files, err := Discover(filepath.Join(dir, "*"))
		require.NoError(t, err)
		assert.Equal(t, []string{a, b, nested}, files)
	})

	t.Run("files are deduplicated", func(t *testing.T) {
		files, err := Discover(a, a, dir)
		require.NoError(t, err)
		assert.Equal(t, []string{a, b}, files)
	})

	t.Run("empty directory", func(t *testing.T) {
		_, err := Discover(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := Discover(filepath.Join(dir, "missing.yaml"))
		assert.Error(t, err)
	})
}
