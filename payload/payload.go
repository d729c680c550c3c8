// Package payload defines the parsed representation of Slack webhook bodies.
//
// A Payload is built once per inbound request and treated as read-only
// afterwards. Only the fields the framework dispatches on are modeled;
// unknown fields in the wire body are dropped.
package payload

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Event is the inner event object of an Events API envelope.
type Event struct {
	Type    string `json:"type"`
	User    string `json:"user,omitempty"`
	Channel string `json:"channel,omitempty"`
	BotID   string `json:"bot_id,omitempty"`
	AppID   string `json:"app_id,omitempty"`
	TeamID  string `json:"team_id,omitempty"`
	Text    string `json:"text,omitempty"`
	TS      string `json:"ts,omitempty"`
	EventTS string `json:"event_ts,omitempty"`
}

// Action is a single interactive-component action (button click, menu
// selection) from an interactivity payload.
type Action struct {
	ActionID string `json:"action_id"`
	BlockID  string `json:"block_id,omitempty"`
	Type     string `json:"type,omitempty"`
	Value    string `json:"value,omitempty"`
	ActionTS string `json:"action_ts,omitempty"`
}

// Payload is a parsed Slack webhook body. Depending on the route that
// received it, either Event, Command, or Actions carries the interesting
// part; the rest of the fields are envelope metadata.
type Payload struct {
	Type      string `json:"type"`
	Token     string `json:"token,omitempty"`
	TeamID    string `json:"team_id,omitempty"`
	APIAppID  string `json:"api_app_id,omitempty"`
	EventID   string `json:"event_id,omitempty"`
	EventTime int64  `json:"event_time,omitempty"`

	Event *Event `json:"event,omitempty"`

	Command     string `json:"command,omitempty"`
	Text        string `json:"text,omitempty"`
	UserID      string `json:"user_id,omitempty"`
	ChannelID   string `json:"channel_id,omitempty"`
	TriggerID   string `json:"trigger_id,omitempty"`
	ResponseURL string `json:"response_url,omitempty"`

	Actions []Action `json:"actions,omitempty"`

	// Challenge is only present on url_verification payloads.
	Challenge string `json:"challenge,omitempty"`
}

// TypeURLVerification is the payload type Slack sends when verifying an
// Events API endpoint. It must be answered synchronously with Challenge.
const TypeURLVerification = "url_verification"

// Parse decodes a JSON webhook body into a Payload.
func Parse(data []byte) (*Payload, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty payload body")
	}
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return &p, nil
}

// FromForm builds a Payload from a form-encoded slash-command body, which
// is how Slack delivers slash commands on the wire.
func FromForm(v url.Values) *Payload {
	return &Payload{
		Type:        "command",
		Token:       v.Get("token"),
		TeamID:      v.Get("team_id"),
		APIAppID:    v.Get("api_app_id"),
		Command:     v.Get("command"),
		Text:        v.Get("text"),
		UserID:      v.Get("user_id"),
		ChannelID:   v.Get("channel_id"),
		TriggerID:   v.Get("trigger_id"),
		ResponseURL: v.Get("response_url"),
	}
}

// FromBotID reports whether the payload's event originated from a bot.
func (p *Payload) FromBotID() bool {
	return p.Event != nil && p.Event.BotID != ""
}

// FirstAction returns the first action of an interactivity payload, or nil.
func (p *Payload) FirstAction() *Action {
	if len(p.Actions) == 0 {
		return nil
	}
	return &p.Actions[0]
}

func (p *Payload) String() string {
	switch {
	case p.Event != nil:
		return "event:" + p.Event.Type
	case p.Command != "":
		return "command:" + p.Command
	case len(p.Actions) > 0:
		return "action:" + p.Actions[0].ActionID + " (" + strconv.Itoa(len(p.Actions)) + " actions)"
	default:
		return "payload:" + p.Type
	}
}
