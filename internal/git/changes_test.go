package git

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGit map[string]string

func (f fakeGit) run(_ context.Context, args ...string) ([]byte, error) {
	out, ok := f[strings.Join(args, " ")]
	if !ok {
		return nil, errors.New("exit status 128")
	}
	return []byte(out), nil
}

func TestChangedFiles_CombinesSources(t *testing.T) {
	cd := NewChangeDetector("")
	cd.run = fakeGit{
		"diff --name-only":          "ci/build.yaml\n",
		"diff --cached --name-only": "ci/deploy.yaml\n",
		"diff --name-only main":     "ci/build.yaml\nREADME.md\n",
	}.run

	files, err := cd.ChangedFiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md", "ci/build.yaml", "ci/deploy.yaml"}, files)
}

func TestChangedFiles_FallsBackToMergeBase(t *testing.T) {
	cd := NewChangeDetector("develop")
	cd.run = fakeGit{
		"merge-base HEAD origin/develop": "abc123\n",
		"diff --name-only abc123":        "ci/test.hcl\n",
	}.run

	files, err := cd.ChangedFiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ci/test.hcl"}, files)
}

func TestChangedFiles_NoRepository(t *testing.T) {
	cd := NewChangeDetector("main")
	cd.run = fakeGit{}.run

	files, err := cd.ChangedFiles(context.Background())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFilter(t *testing.T) {
	paths := []string{"ci/build.yaml", "/repo/ci/deploy.yaml", "./ci/test.hcl", "other.json"}
	changed := []string{"ci/build.yaml", "ci/deploy.yaml", "ci/test.hcl"}

	assert.Equal(t, []string{"ci/build.yaml", "/repo/ci/deploy.yaml", "./ci/test.hcl"}, Filter(paths, changed))
	assert.Empty(t, Filter(paths, nil))
}
