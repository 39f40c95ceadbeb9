// Package buildfeatures provides build feature descriptors.
package buildfeatures

import (
	"github.com/sourceplane/litedsl/internal/compound"
	"github.com/sourceplane/litedsl/internal/params"
)

// Auth selects how a VCS hosting integration authenticates.
type Auth interface {
	compound.Variant
}

var (
	authToken    = params.NewString("token", "secure:accessToken", params.Mandatory(), params.Doc("Access token to use"))
	authUsername = params.NewString("username", "", params.Mandatory())
	authPassword = params.NewString("password", "secure:password", params.Mandatory())
	connectionID = params.NewString("connectionId", "spaceConnectionId", params.Mandatory(),
		params.Doc("JetBrains Space connection id"))
)

// VcsRootAuth reuses the credentials of the VCS root.
type VcsRootAuth struct{ compound.Base }

func NewVcsRootAuth() *VcsRootAuth { return &VcsRootAuth{Base: compound.NewBase("vcsRoot")} }

func (a *VcsRootAuth) Fields() []params.Field { return nil }

// TokenAuth authenticates with an access token.
type TokenAuth struct{ compound.Base }

func NewTokenAuth() *TokenAuth { return &TokenAuth{Base: compound.NewBase("token")} }

func (a *TokenAuth) Fields() []params.Field { return []params.Field{authToken} }
func (a *TokenAuth) Token() (string, bool)  { return authToken.Get(a.Params()) }
func (a *TokenAuth) SetToken(v string)      { authToken.Set(a.Params(), v) }

// PasswordAuth authenticates with a username and password.
type PasswordAuth struct{ compound.Base }

func NewPasswordAuth() *PasswordAuth { return &PasswordAuth{Base: compound.NewBase("password")} }

func (a *PasswordAuth) Fields() []params.Field   { return []params.Field{authUsername, authPassword} }
func (a *PasswordAuth) Username() (string, bool) { return authUsername.Get(a.Params()) }
func (a *PasswordAuth) SetUsername(v string)     { authUsername.Set(a.Params(), v) }
func (a *PasswordAuth) Password() (string, bool) { return authPassword.Get(a.Params()) }
func (a *PasswordAuth) SetPassword(v string)     { authPassword.Set(a.Params(), v) }

// SpaceConnection authenticates through a JetBrains Space connection.
type SpaceConnection struct{ compound.Base }

func NewSpaceConnection() *SpaceConnection {
	return &SpaceConnection{Base: compound.NewBase("spaceCredentialsConnection")}
}

func (a *SpaceConnection) Fields() []params.Field       { return []params.Field{connectionID} }
func (a *SpaceConnection) ConnectionID() (string, bool) { return connectionID.Get(a.Params()) }
func (a *SpaceConnection) SetConnectionID(v string)     { connectionID.Set(a.Params(), v) }

var (
	vcsRootOption = compound.Option[Auth]{Name: "vcsRoot", Doc: "Use VCS root credentials",
		New: func() Auth { return NewVcsRootAuth() }}
	tokenOption = compound.Option[Auth]{Name: "token", Doc: "Authentication using access token",
		New: func() Auth { return NewTokenAuth() }}
	passwordOption = compound.Option[Auth]{Name: "password", Doc: "Username and password authentication",
		New: func() Auth { return NewPasswordAuth() }}
	connectionOption = compound.Option[Auth]{Name: "connection", Doc: "Authentication using JetBrains Space connection",
		New: func() Auth { return NewSpaceConnection() }}
)

func authField(key string, options ...compound.Option[Auth]) *compound.Field[Auth] {
	return compound.NewField("authType", key, compound.NewRegistry(options...), params.Doc("Authentication type"))
}
