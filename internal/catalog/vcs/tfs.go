// Package vcs provides VCS root descriptors.
package vcs

import (
	"github.com/sourceplane/litedsl/internal/model"
	"github.com/sourceplane/litedsl/internal/params"
	"github.com/sourceplane/litedsl/internal/validate"
)

// TfsType is the VCS type of TfsVcsRoot
const TfsType = "tfs"

var (
	tfsURL            = params.NewString("url", "tfs-url", params.Mandatory(), params.Doc("TFS server URL"))
	tfsRoot           = params.NewString("root", "tfs-root", params.Mandatory(), params.Doc("Root path, e.g. $/project"))
	tfsUserName       = params.NewString("userName", "tfs-username")
	tfsPassword       = params.NewString("password", "secure:tfs-password")
	tfsForceOverwrite = params.NewBoolEncoded("forceOverwrite", "tfs-force-get", "true", "",
		params.Doc("Force overwrite of writable files on the agent"))
)

// TfsVcsRoot is a Team Foundation Server VCS root.
type TfsVcsRoot struct {
	model.Entity
}

func NewTfs() *TfsVcsRoot {
	return &TfsVcsRoot{Entity: model.NewEntity(model.KindVcsRoot, TfsType)}
}

func (r *TfsVcsRoot) Fields() []params.Field {
	return []params.Field{tfsURL, tfsRoot, tfsUserName, tfsPassword, tfsForceOverwrite}
}

func (r *TfsVcsRoot) Validate(c validate.ErrorConsumer) {
	r.ValidateFields(c, r.Fields())
}

func (r *TfsVcsRoot) URL() (string, bool)      { return tfsURL.Get(r.Params()) }
func (r *TfsVcsRoot) SetURL(v string)          { tfsURL.Set(r.Params(), v) }
func (r *TfsVcsRoot) Root() (string, bool)     { return tfsRoot.Get(r.Params()) }
func (r *TfsVcsRoot) SetRoot(v string)         { tfsRoot.Set(r.Params(), v) }
func (r *TfsVcsRoot) UserName() (string, bool) { return tfsUserName.Get(r.Params()) }
func (r *TfsVcsRoot) SetUserName(v string)     { tfsUserName.Set(r.Params(), v) }
func (r *TfsVcsRoot) Password() (string, bool) { return tfsPassword.Get(r.Params()) }
func (r *TfsVcsRoot) SetPassword(v string)     { tfsPassword.Set(r.Params(), v) }

func (r *TfsVcsRoot) ForceOverwrite() (bool, bool) { return tfsForceOverwrite.Get(r.Params()) }
func (r *TfsVcsRoot) SetForceOverwrite(v bool)     { tfsForceOverwrite.Set(r.Params(), v) }
