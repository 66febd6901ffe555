// Package sms delivers outbound text messages through the Twilio gateway.
//
// The gateway is optional: when credentials are absent the notifier is still
// constructed, but every send is a logged no-op returning false. Callers must
// treat delivery as best-effort and never block core flows on it.
package sms

import (
	"github.com/rs/zerolog"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/towingbuddy/towtrack-api/internal/core/ports"
)

// Config carries the gateway credentials and message settings.
type Config struct {
	AccountSID string
	AuthToken  string
	From       string // sender phone number, E.164
	Template   string // optional operator-configured towing-notice template
	AppLink    string // substituted for {appLink} in message bodies
}

// TwilioNotifier implements ports.Notifier over the Twilio REST API.
type TwilioNotifier struct {
	client   *twilio.RestClient
	from     string
	template string
	appLink  string
	logger   zerolog.Logger
}

// NewTwilioNotifier builds the notifier. The Twilio client is only
// constructed when account SID, auth token, and sender number are all
// present; otherwise the notifier stays in its disabled no-op state.
func NewTwilioNotifier(cfg Config, logger zerolog.Logger) *TwilioNotifier {
	n := &TwilioNotifier{
		from:     cfg.From,
		template: cfg.Template,
		appLink:  cfg.AppLink,
		logger:   logger,
	}

	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.From == "" {
		logger.Warn().Msg("twilio not configured, sms delivery disabled")
		return n
	}

	n.client = twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return n
}

// Enabled reports whether the gateway is configured.
func (n *TwilioNotifier) Enabled() bool {
	return n.client != nil
}

// Send renders the message (override > configured template > built-in towing
// notice) and delivers it. Gateway errors are logged, never returned.
func (n *TwilioNotifier) Send(to string, vars ports.MessageVars, override string) bool {
	if n.client == nil {
		n.logger.Warn().Str("to", to).Msg("sms skipped: twilio not configured")
		return false
	}

	template := override
	if template == "" {
		template = n.template
	}
	if template == "" {
		template = defaultTowingTemplate
	}
	body := RenderTemplate(template, vars, n.appLink)

	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(n.from)
	params.SetTo(to)
	params.SetBody(body)

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		n.logger.Error().Err(err).Str("to", to).Msg("twilio send failed")
		return false
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	n.logger.Info().Str("to", to).Str("sid", sid).Msg("sms sent")
	return true
}
