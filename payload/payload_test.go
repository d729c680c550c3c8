package payload

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEventEnvelope(t *testing.T) {
	body := []byte(`{
		"type": "event_callback",
		"token": "tok",
		"team_id": "T123",
		"event_id": "Ev123",
		"event": {
			"type": "app_mention",
			"user": "U123",
			"channel": "C123",
			"text": "<@UBOT> hi",
			"ts": "1700000000.000100"
		},
		"unknown_field": {"ignored": true}
	}`)

	p, err := Parse(body)
	assert.NoError(t, err)
	assert.Equal(t, "event_callback", p.Type)
	assert.NotNil(t, p.Event)
	assert.Equal(t, "app_mention", p.Event.Type)
	assert.Equal(t, "U123", p.Event.User)
	assert.Equal(t, "C123", p.Event.Channel)
	assert.False(t, p.FromBotID())
}

func TestParseFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty", ""},
		{"not json", "command=/hello"},
		{"truncated", `{"type": "event_callback"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body))
			assert.Error(t, err)
		})
	}
}

func TestParseBotEvent(t *testing.T) {
	p, err := Parse([]byte(`{"type":"event_callback","event":{"type":"message","bot_id":"B999"}}`))
	assert.NoError(t, err)
	assert.True(t, p.FromBotID())
}

func TestParseURLVerification(t *testing.T) {
	p, err := Parse([]byte(`{"type":"url_verification","challenge":"abc123"}`))
	assert.NoError(t, err)
	assert.Equal(t, TypeURLVerification, p.Type)
	assert.Equal(t, "abc123", p.Challenge)
}

func TestFromForm(t *testing.T) {
	v := url.Values{}
	v.Set("command", "/hello")
	v.Set("text", "world")
	v.Set("user_id", "U123")
	v.Set("channel_id", "C123")
	v.Set("response_url", "https://hooks.slack.com/r/1")

	p := FromForm(v)
	assert.Equal(t, "/hello", p.Command)
	assert.Equal(t, "world", p.Text)
	assert.Equal(t, "U123", p.UserID)
	assert.Equal(t, "C123", p.ChannelID)
	assert.Equal(t, "https://hooks.slack.com/r/1", p.ResponseURL)
}

func TestString(t *testing.T) {
	p := &Payload{Type: "event_callback", Event: &Event{Type: "app_mention"}}
	assert.Equal(t, "event:app_mention", p.String())

	p = &Payload{Command: "/hello"}
	assert.Equal(t, "command:/hello", p.String())

	p = &Payload{Type: "block_actions"}
	assert.Equal(t, "payload:block_actions", p.String())
}

func TestFirstAction(t *testing.T) {
	p := &Payload{}
	assert.Nil(t, p.FirstAction())

	p.Actions = []Action{{ActionID: "approve"}, {ActionID: "reject"}}
	assert.Equal(t, "approve", p.FirstAction().ActionID)
}
