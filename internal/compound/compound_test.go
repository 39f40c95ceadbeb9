package compound

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dslerrors "github.com/sourceplane/litedsl/internal/errors"
	"github.com/sourceplane/litedsl/internal/params"
)

type authType interface {
	Variant
}

var (
	passwordUser   = params.NewString("userName", "github_username", params.Mandatory())
	passwordSecret = params.NewString("password", "secure:github_password", params.Mandatory())
	tokenValue     = params.NewString("token", "secure:github_access_token", params.Mandatory())
)

type password struct{ Base }

func newPassword() *password { return &password{Base: NewBase("password")} }

func (p *password) Fields() []params.Field { return []params.Field{passwordUser, passwordSecret} }

type token struct{ Base }

func newToken() *token { return &token{Base: NewBase("token")} }

func (t *token) Fields() []params.Field { return []params.Field{tokenValue} }

type implicit struct{ Base }

func (i *implicit) Fields() []params.Field { return nil }

func authRegistry() *Registry[authType] {
	return NewRegistry(
		Option[authType]{Name: "password", Doc: "Username and password", New: func() authType { return newPassword() }},
		Option[authType]{Name: "personalToken", Doc: "Personal access token", New: func() authType { return newToken() }},
	)
}

func TestRegistry_DecodeKnownAndUnknown(t *testing.T) {
	r := authRegistry()
	assert.Equal(t, []string{"password", "token"}, r.Tags())

	v, err := r.Decode("token")
	require.NoError(t, err)
	assert.IsType(t, &token{}, v)

	_, err = r.Decode("oauth")
	require.Error(t, err)
	assert.ErrorIs(t, err, dslerrors.ErrUnknownVariant)
}

func TestRegistry_DuplicateTagPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewRegistry(
			Option[authType]{Name: "a", New: func() authType { return newToken() }},
			Option[authType]{Name: "b", New: func() authType { return newToken() }},
		)
	})
}

func TestRegistry_Variants(t *testing.T) {
	infos := authRegistry().Variants()
	require.Len(t, infos, 2)
	assert.Equal(t, "password", infos[0].Name)
	assert.Equal(t, "password", infos[0].Tag)
	assert.Len(t, infos[0].Fields, 2)
	assert.Equal(t, "personalToken", infos[1].Name)
	assert.Equal(t, "token", infos[1].Tag)
}

func TestField_SetWritesTagAndVariantParams(t *testing.T) {
	f := NewField("authType", "github_authentication_type", authRegistry())
	b := params.NewBag()

	p := newPassword()
	passwordUser.Set(p.Params(), "bot")
	f.Set(b, p)

	tag, ok := b.Get("github_authentication_type")
	require.True(t, ok)
	assert.Equal(t, "password", tag)
	user, _ := b.Get("github_username")
	assert.Equal(t, "bot", user)

	// writes after assignment land in the owner's bag
	passwordSecret.Set(p.Params(), "s3cret")
	secret, ok := b.Get("secure:github_password")
	assert.True(t, ok)
	assert.Equal(t, "s3cret", secret)
}

func TestField_GetDecodesBoundVariant(t *testing.T) {
	f := NewField("authType", "github_authentication_type", authRegistry())
	b := params.NewBag()

	_, ok, err := f.Get(b)
	assert.False(t, ok)
	assert.NoError(t, err)

	b.Set("github_authentication_type", "token")
	b.Set("secure:github_access_token", "abc")

	v, ok, err := f.Get(b)
	require.NoError(t, err)
	require.True(t, ok)
	tok, isToken := v.(*token)
	require.True(t, isToken)
	got, _ := tokenValue.Get(tok.Params())
	assert.Equal(t, "abc", got)
	assert.True(t, f.IsSet(b))
}

func TestField_UnknownTagFails(t *testing.T) {
	f := NewField("authType", "github_authentication_type", authRegistry())
	b := params.NewBag()
	b.Set("github_authentication_type", "kerberos")

	v, ok, err := f.Get(b)
	assert.Nil(t, v)
	assert.False(t, ok)
	assert.ErrorIs(t, err, dslerrors.ErrUnknownVariant)
	assert.False(t, f.IsSet(b))
	assert.ErrorIs(t, f.Check(b), dslerrors.ErrUnknownVariant)

	_, active := f.Active(b)
	assert.False(t, active)
}

func TestField_EmptyTagIsDistinctFromUnset(t *testing.T) {
	r := NewRegistry(
		Option[authType]{Name: "default", New: func() authType { return &implicit{Base: NewBase("")} }},
		Option[authType]{Name: "personalToken", New: func() authType { return newToken() }},
	)
	f := NewField("awsEnvironment", "aws.environment", r)

	b := params.NewBag()
	assert.False(t, f.IsSet(b))

	f.Set(b, &implicit{Base: NewBase("")})
	assert.True(t, b.Has("aws.environment"))
	v, ok, err := f.Get(b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, v.Tag())
}

func TestField_SwitchingVariantKeepsOrphans(t *testing.T) {
	f := NewField("authType", "github_authentication_type", authRegistry())
	b := params.NewBag()

	p := newPassword()
	passwordUser.Set(p.Params(), "bot")
	f.Set(b, p)
	f.Set(b, newToken())

	tag, _ := b.Get("github_authentication_type")
	assert.Equal(t, "token", tag)
	assert.True(t, b.Has("github_username"), "previous variant keys are not cleared")

	f.Reset(b)
	assert.False(t, b.Has("github_authentication_type"))
	assert.False(t, b.Has("github_username"))
	assert.Zero(t, b.Len())
}

func TestField_Active(t *testing.T) {
	f := NewField("authType", "", authRegistry())
	assert.Equal(t, "authType", f.Key())
	assert.Equal(t, "compound", f.Type())

	b := params.NewBag()
	f.Set(b, newPassword())
	fields, ok := f.Active(b)
	require.True(t, ok)
	assert.Equal(t, []params.Field{passwordUser, passwordSecret}, fields)
}

var hostField = params.NewString("host", "github_host", params.Mandatory())

type publisher interface {
	Variant
}

type githubPublisher struct{ Base }

var nestedAuth = NewField("authType", "github_authentication_type", authRegistry(), params.Mandatory())

func newGitHubPublisher() *githubPublisher {
	return &githubPublisher{Base: NewBase("githubStatusPublisher")}
}

func (g *githubPublisher) Fields() []params.Field { return []params.Field{hostField, nestedAuth} }

func TestField_NestedVariantWritesFollowBinding(t *testing.T) {
	outer := NewField("publisher", "publisherId", NewRegistry(
		Option[publisher]{Name: "github", New: func() publisher { return newGitHubPublisher() }},
	))
	b := params.NewBag()

	gh := newGitHubPublisher()
	tok := newToken()
	nestedAuth.Set(gh.Params(), tok)
	outer.Set(b, gh)

	hostField.Set(gh.Params(), "https://api.github.com")
	tokenValue.Set(tok.Params(), "secret")

	assert.Equal(t, []string{"publisherId", "github_authentication_type", "github_host", "secure:github_access_token"}, b.Keys())
	v, _ := b.Get("secure:github_access_token")
	assert.Equal(t, "secret", v)
}
