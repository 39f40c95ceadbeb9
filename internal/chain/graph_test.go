package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourceplane/litedsl/internal/catalog/triggers"
	dslerrors "github.com/sourceplane/litedsl/internal/errors"
	"github.com/sourceplane/litedsl/internal/model"
)

func configuration(name string, after ...string) *model.Configuration {
	cfg := &model.Configuration{
		Source:   name + ".yaml",
		Kind:     model.DocumentBuildConfiguration,
		Metadata: model.Metadata{Name: name},
	}
	for i, dep := range after {
		tr := triggers.NewFinishBuild()
		tr.SetID("TRIGGER_" + string(rune('1'+i)))
		tr.SetBuildType(dep)
		cfg.Descriptors = append(cfg.Descriptors, tr)
	}
	return cfg
}

func TestBuild_Order(t *testing.T) {
	g, err := Build([]*model.Configuration{
		configuration("Deploy", "Test", "Package"),
		configuration("Test", "Compile"),
		configuration("Package", "Compile"),
		configuration("Compile"),
		configuration("Docs"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Compile", "Deploy", "Docs", "Package", "Test"}, g.Names())
	assert.Equal(t, []string{"Package", "Test"}, g.Dependencies("Deploy"))
	assert.Equal(t, "Test.yaml", g.Source("Test"))
	assert.NoError(t, g.DetectCycles())

	order, err := g.Order()
	require.NoError(t, err)
	assert.Equal(t, []string{"Compile", "Docs", "Package", "Test", "Deploy"}, order)
}

func TestBuild_External(t *testing.T) {
	g, err := Build([]*model.Configuration{configuration("Deploy", "Upstream_Build")})
	require.NoError(t, err)

	assert.Empty(t, g.Dependencies("Deploy"))
	assert.Equal(t, []Reference{{From: "Deploy", TriggerID: "TRIGGER_1", BuildType: "Upstream_Build"}}, g.External())
}

func TestBuild_Cycle(t *testing.T) {
	g, err := Build([]*model.Configuration{
		configuration("A", "C"),
		configuration("B", "A"),
		configuration("C", "B"),
		configuration("D"),
	})
	require.NoError(t, err)

	err = g.DetectCycles()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[A C B A]")

	_, err = g.Order()
	assert.Error(t, err)
}

func TestBuild_SkipsProjectsAndDuplicates(t *testing.T) {
	project := configuration("Root")
	project.Kind = model.DocumentProject

	g, err := Build([]*model.Configuration{project, configuration("Compile")})
	require.NoError(t, err)
	assert.Equal(t, []string{"Compile"}, g.Names())

	_, err = Build([]*model.Configuration{configuration("Compile"), configuration("Compile")})
	assert.ErrorIs(t, err, dslerrors.ErrInvalidDocument)
}
