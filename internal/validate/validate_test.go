package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourceplane/litedsl/internal/compound"
	dslerrors "github.com/sourceplane/litedsl/internal/errors"
	"github.com/sourceplane/litedsl/internal/params"
)

type source interface{ compound.Variant }

var (
	sourcePath = params.NewString("path", "dockerfile.path", params.Mandatory())
	sourceURL  = params.NewString("url", "dockerfile.url", params.Mandatory())
)

type pathSource struct{ compound.Base }

func (p *pathSource) Fields() []params.Field { return []params.Field{sourcePath} }

type urlSource struct{ compound.Base }

func (u *urlSource) Fields() []params.Field { return []params.Field{sourceURL} }

var (
	sourceField = compound.NewField("source", "dockerfile.source", compound.NewRegistry(
		compound.Option[source]{Name: "path", New: func() source { return &pathSource{Base: compound.NewBase("PATH")} }},
		compound.Option[source]{Name: "url", New: func() source { return &urlSource{Base: compound.NewBase("URL")} }},
	), params.Mandatory())
	contextDir = params.NewString("contextDir", "dockerfile.contextDir")
	attempts   = params.NewInt("attempts", "retryAttempts", params.Mandatory())
)

func dockerFields() []params.Field {
	return []params.Field{sourceField, contextDir, attempts}
}

func TestMissingMessage(t *testing.T) {
	assert.Equal(t, "mandatory 'publisher.authType.token' property is not specified", MissingMessage("publisher.authType.token"))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "source", Join("", "source"))
	assert.Equal(t, "source.path", Join("source", "path"))
}

func TestFields_ReportsEveryMissingMandatory(t *testing.T) {
	c := &Collector{}
	Fields(c, params.NewBag(), "", dockerFields())

	assert.Equal(t, []string{"source", "attempts"}, c.Paths())
	assert.Equal(t, "mandatory 'source' property is not specified", c.Errors()[0].Message)
}

func TestFields_RecursesIntoActiveVariant(t *testing.T) {
	b := params.NewBag()
	sourceField.Set(b, &urlSource{Base: compound.NewBase("URL")})
	attempts.Set(b, 2)

	c := &Collector{}
	Fields(c, b, "", dockerFields())

	require.Equal(t, 1, c.Len())
	assert.Equal(t, "source.url", c.Errors()[0].Path)
	assert.Equal(t, "mandatory 'source.url' property is not specified", c.Errors()[0].Message)
}

func TestFields_TypedSetPasses(t *testing.T) {
	b := params.NewBag()
	v := &pathSource{Base: compound.NewBase("PATH")}
	sourcePath.Set(v.Params(), "Dockerfile")
	sourceField.Set(b, v)
	attempts.Set(b, 1)

	c := &Collector{}
	Fields(c, b, "", dockerFields())
	assert.Zero(t, c.Len())
	assert.NoError(t, c.Err())
}

func TestFields_RawKeyOverridePasses(t *testing.T) {
	b := params.NewBag()
	b.Set("dockerfile.source", "PATH")
	b.Set("dockerfile.path", "Dockerfile")
	// not an integer, but the raw key is present
	b.Set("retryAttempts", "%env.ATTEMPTS%")

	c := &Collector{}
	Fields(c, b, "", dockerFields())
	assert.Zero(t, c.Len())
}

func TestFields_UnknownTagSatisfiesMandatoryButIsNotTraversed(t *testing.T) {
	b := params.NewBag()
	b.Set("dockerfile.source", "GIT")
	attempts.Set(b, 1)

	c := &Collector{}
	Fields(c, b, "", dockerFields())
	assert.Zero(t, c.Len())
}

func TestFields_UsesPrefix(t *testing.T) {
	c := &Collector{}
	Fields(c, params.NewBag(), "publisher", []params.Field{sourcePath})
	assert.Equal(t, []string{"publisher.path"}, c.Paths())
}

func TestLint_ReportsUndecodableValues(t *testing.T) {
	b := params.NewBag()
	b.Set("dockerfile.source", "GIT")
	b.Set("retryAttempts", "many")

	c := &Collector{}
	Lint(c, b, "", dockerFields())

	require.Equal(t, []string{"source", "attempts"}, c.Paths())
	assert.Contains(t, c.Errors()[0].Message, "invalid value 'GIT' of 'source' property")
	assert.Contains(t, c.Errors()[1].Message, "invalid value 'many' of 'attempts' property")
}

func TestLint_RecursesIntoActiveVariant(t *testing.T) {
	nested := params.NewBool("pull", "docker.pull")
	v := &pathSource{Base: compound.NewBase("PATH")}
	b := params.NewBag()
	sourceField.Set(b, v)
	b.Set("docker.pull", "maybe")

	c := &Collector{}
	Lint(c, b, "", []params.Field{sourceField, nested})
	assert.Equal(t, []string{"pull"}, c.Paths())
}

func TestCollector_Err(t *testing.T) {
	c := &Collector{}
	assert.NoError(t, c.Err())

	c.ConsumePropertyError("bucketName", MissingMessage("bucketName"))
	err := c.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, dslerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "mandatory 'bucketName' property is not specified")

	assert.ErrorIs(t, err, dslerrors.ErrMissingProperty)
	assert.NotErrorIs(t, err, dslerrors.ErrInvalidValue)

	var pe PropertyError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "bucketName", pe.Path)

	c.ConsumePropertyError("pull", "invalid value 'maybe' of 'pull' property")
	assert.ErrorIs(t, c.Err(), dslerrors.ErrInvalidValue)
}

func TestConsumerFunc(t *testing.T) {
	var got []string
	c := ConsumerFunc(func(path, _ string) { got = append(got, path) })
	Fields(c, params.NewBag(), "", []params.Field{sourcePath, sourceURL})
	assert.Equal(t, []string{"path", "url"}, got)
}
