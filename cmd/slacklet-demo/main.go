// Command slacklet-demo is a small bot showing the framework end to end:
// a slash command, an event handler, an interactive action, and the audit
// log plugin.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattjoyce/slacklet"
	"github.com/mattjoyce/slacklet/internal/log"
	"github.com/mattjoyce/slacklet/plugins/auditlog"
	"github.com/mattjoyce/slacklet/slackclient"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := slacklet.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	log.Setup(cfg.LogLevel)

	app := slacklet.New(*cfg, slackclient.New(cfg.BotToken))

	if cfg.AuditDB != "" {
		if err := app.AddPlugin(auditlog.New(cfg.AuditDB)); err != nil {
			log.Error("failed to add audit plugin", "error", err)
			os.Exit(1)
		}
	}

	app.OnCommand("/hello", func(ctx context.Context, args *slacklet.Args) error {
		name := args.Client.GetUserName(ctx, args.UserID)
		if name == "" {
			name = slackclient.UserMention(args.UserID)
		}
		args.Client.SendMessage(ctx, args.ChannelID, fmt.Sprintf("Hello %s! You said: %s", name, args.Text))
		return nil
	})

	app.OnEvent("app_mention", func(ctx context.Context, args *slacklet.Args) error {
		args.Client.SendMessage(ctx, args.ChannelID,
			fmt.Sprintf("Hi %s, you rang?", slackclient.UserMention(args.UserID)))
		return nil
	})

	app.OnAction("approve", func(ctx context.Context, args *slacklet.Args) error {
		args.Client.SendMessage(ctx, args.ChannelID,
			fmt.Sprintf("%s approved: %s", slackclient.UserMention(args.UserID), args.Action.Value))
		return nil
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil && err != context.Canceled {
		log.Error("app stopped", "error", err)
		os.Exit(1)
	}
}
