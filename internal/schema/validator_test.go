package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dslerrors "github.com/sourceplane/litedsl/internal/errors"
)

const minimalDocument = `apiVersion: litedsl.sourceplane.io/v1
kind: BuildConfiguration
metadata:
  name: Compile
spec:
  steps:
    - id: RUNNER_1
      type: simpleRunner
      params:
        script.content: make
        teamcity.step.mode: default
        retries: 3
        enabled: true
`

func TestValidateYAML(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	require.NoError(t, v.ValidateYAML([]byte(minimalDocument)))

	tests := []struct {
		name string
		doc  string
	}{
		{"wrong api version", "apiVersion: v0\nkind: BuildConfiguration\nmetadata: {name: a}\nspec: {}\n"},
		{"unknown kind", "apiVersion: litedsl.sourceplane.io/v1\nkind: Pipeline\nmetadata: {name: a}\nspec: {}\n"},
		{"missing name", "apiVersion: litedsl.sourceplane.io/v1\nkind: Project\nmetadata: {}\nspec: {}\n"},
		{"entry without type", "apiVersion: litedsl.sourceplane.io/v1\nkind: Project\nmetadata: {name: a}\nspec:\n  steps:\n    - id: X\n"},
		{"nested params", "apiVersion: litedsl.sourceplane.io/v1\nkind: Project\nmetadata: {name: a}\nspec:\n  steps:\n    - type: x\n      params:\n        a: {b: c}\n"},
		{"unknown section", "apiVersion: litedsl.sourceplane.io/v1\nkind: Project\nmetadata: {name: a}\nspec:\n  jobs: []\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateYAML([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, dslerrors.ErrSchemaViolation)
		})
	}
}

func TestValidateYAML_ParseError(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	err = v.ValidateYAML([]byte("apiVersion: [unclosed"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, dslerrors.ErrSchemaViolation)
}

func TestValidateValue(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	doc := map[string]any{
		"apiVersion": "litedsl.sourceplane.io/v1",
		"kind":       "Project",
		"metadata":   map[string]any{"name": "Root"},
		"spec": map[string]any{
			"projectFeatures": []any{
				map[string]any{"type": "IssueTracker", "params": nil},
			},
		},
	}
	assert.NoError(t, v.ValidateValue(doc))

	doc["kind"] = "Template"
	assert.ErrorIs(t, v.ValidateValue(doc), dslerrors.ErrSchemaViolation)
}

func TestValidateJSON(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	doc := `{
  "apiVersion": "litedsl.sourceplane.io/v1",
  "kind": "BuildConfiguration",
  "metadata": {"name": "Compile"},
  "spec": {"triggers": [{"type": "retryBuildTrigger", "params": {"retry.attempts": 12345678901234567891, "ratio": 1.0}}]}
}`
	require.NoError(t, v.ValidateJSON([]byte(doc)))

	err = v.ValidateJSON([]byte(`{"apiVersion": "litedsl.sourceplane.io/v1", "kind": "Project"}`))
	assert.ErrorIs(t, err, dslerrors.ErrSchemaViolation)

	err = v.ValidateJSON([]byte(`{"apiVersion": `))
	require.Error(t, err)
	assert.NotErrorIs(t, err, dslerrors.ErrSchemaViolation)
}
