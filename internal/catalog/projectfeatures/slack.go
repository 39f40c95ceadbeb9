package projectfeatures

import (
	"github.com/sourceplane/litedsl/internal/model"
	"github.com/sourceplane/litedsl/internal/params"
	"github.com/sourceplane/litedsl/internal/validate"
)

// OAuthProviderType is the feature type shared by connection features
const OAuthProviderType = "OAuthProvider"

var (
	slackDisplayName  = params.NewString("displayName", "", params.Mandatory())
	slackBotToken     = params.NewString("botToken", "secure:token", params.Mandatory(), params.Doc("Slack bot token"))
	slackClientID     = params.NewString("clientId", "", params.Mandatory())
	slackClientSecret = params.NewString("clientSecret", "secure:clientSecret", params.Mandatory())
)

// SlackConnection stores Slack application credentials for notifications.
type SlackConnection struct {
	model.Entity
}

func NewSlackConnection() *SlackConnection {
	s := &SlackConnection{Entity: model.NewEntity(model.KindProjectFeature, OAuthProviderType)}
	s.Param("providerType", "slackConnection")
	return s
}

func (s *SlackConnection) Fields() []params.Field {
	return []params.Field{slackDisplayName, slackBotToken, slackClientID, slackClientSecret}
}

func (s *SlackConnection) Validate(c validate.ErrorConsumer) {
	s.ValidateFields(c, s.Fields())
}

func (s *SlackConnection) DisplayName() (string, bool)  { return slackDisplayName.Get(s.Params()) }
func (s *SlackConnection) SetDisplayName(v string)      { slackDisplayName.Set(s.Params(), v) }
func (s *SlackConnection) BotToken() (string, bool)     { return slackBotToken.Get(s.Params()) }
func (s *SlackConnection) SetBotToken(v string)         { slackBotToken.Set(s.Params(), v) }
func (s *SlackConnection) ClientID() (string, bool)     { return slackClientID.Get(s.Params()) }
func (s *SlackConnection) SetClientID(v string)         { slackClientID.Set(s.Params(), v) }
func (s *SlackConnection) ClientSecret() (string, bool) { return slackClientSecret.Get(s.Params()) }
func (s *SlackConnection) SetClientSecret(v string)     { slackClientSecret.Set(s.Params(), v) }
