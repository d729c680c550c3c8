// Package slackclient wraps the Slack Web API for use by slacklet handlers.
//
// The wrapper deliberately degrades remote failures: every method logs the
// API error and returns a nil (or empty) result instead of propagating it,
// so handlers never have to care about Slack outages.
package slackclient

import (
	"context"
	"log/slog"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/slack-go/slack"

	"github.com/mattjoyce/slacklet/internal/log"
)

// API is the Slack surface exposed to handlers. It is an interface so tests
// can substitute a mock (see the mocks subpackage).
type API interface {
	// SendMessage posts text to a channel and returns the message
	// timestamp, or "" on failure.
	SendMessage(ctx context.Context, channelID, text string) string

	// GetUserInfo fetches a user, or nil on failure.
	GetUserInfo(ctx context.Context, userID string) *slack.User

	// GetChannelInfo fetches a conversation, or nil on failure.
	GetChannelInfo(ctx context.Context, channelID string) *slack.Channel

	// GetUserName returns the user's display name, falling back to the
	// real name, or "" when the user can't be fetched.
	GetUserName(ctx context.Context, userID string) string

	// GetChannelName returns the channel name, or "" when the channel
	// can't be fetched.
	GetChannelName(ctx context.Context, channelID string) string
}

// slackAPI is the subset of slack.Client the wrapper calls.
type slackAPI interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	GetUserInfoContext(ctx context.Context, user string) (*slack.User, error)
	GetConversationInfoContext(ctx context.Context, input *slack.GetConversationInfoInput) (*slack.Channel, error)
}

// Client implements API on top of slack-go, with a retrying HTTP transport.
type Client struct {
	api    slackAPI
	logger *slog.Logger
}

var _ API = (*Client)(nil)

// New creates a Client for the given bot token.
func New(token string) *Client {
	rc := retryablehttp.NewClient()
	rc.Logger = nil
	return &Client{
		api:    slack.New(token, slack.OptionHTTPClient(rc.StandardClient())),
		logger: log.WithComponent("slackclient"),
	}
}

func newWithAPI(api slackAPI, logger *slog.Logger) *Client {
	return &Client{api: api, logger: logger}
}

// SendMessage posts text to a channel.
func (c *Client) SendMessage(ctx context.Context, channelID, text string) string {
	if channelID == "" || text == "" {
		c.logger.Warn("send message dropped", "reason", "channel and text are required")
		return ""
	}
	_, ts, err := c.api.PostMessageContext(ctx, channelID, slack.MsgOptionText(text, false))
	if err != nil {
		c.logger.Error("send message failed", "channel", channelID, "error", err)
		return ""
	}
	return ts
}

// GetUserInfo fetches a user.
func (c *Client) GetUserInfo(ctx context.Context, userID string) *slack.User {
	user, err := c.api.GetUserInfoContext(ctx, userID)
	if err != nil {
		c.logger.Error("get user info failed", "user", userID, "error", err)
		return nil
	}
	return user
}

// GetChannelInfo fetches a conversation.
func (c *Client) GetChannelInfo(ctx context.Context, channelID string) *slack.Channel {
	channel, err := c.api.GetConversationInfoContext(ctx, &slack.GetConversationInfoInput{
		ChannelID: channelID,
	})
	if err != nil {
		c.logger.Error("get channel info failed", "channel", channelID, "error", err)
		return nil
	}
	return channel
}

// GetUserName returns the user's display name or real name.
func (c *Client) GetUserName(ctx context.Context, userID string) string {
	user := c.GetUserInfo(ctx, userID)
	if user == nil {
		return ""
	}
	if user.Profile.DisplayName != "" {
		return user.Profile.DisplayName
	}
	return user.RealName
}

// GetChannelName returns the channel name.
func (c *Client) GetChannelName(ctx context.Context, channelID string) string {
	channel := c.GetChannelInfo(ctx, channelID)
	if channel == nil {
		return ""
	}
	return channel.Name
}

// UserMention formats a user id as a Slack mention.
func UserMention(userID string) string {
	return "<@" + userID + ">"
}

// ChannelMention formats a channel id as a Slack mention.
func ChannelMention(channelID string) string {
	return "<#" + channelID + ">"
}
