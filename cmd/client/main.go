package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/agent-chat/internal/adapter"
	"github.com/MKhiriev/agent-chat/internal/client"
	"github.com/MKhiriev/agent-chat/internal/config"
	"github.com/MKhiriev/agent-chat/internal/logger"
	"github.com/MKhiriev/agent-chat/internal/session"
	"github.com/MKhiriev/agent-chat/internal/tui"
	"github.com/MKhiriev/agent-chat/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		// the file logger is configured by the very config that failed
		fallback := logger.NewLogger("agent-chat-client")
		fallback.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("agent-chat-client", cfg.UI.LogFile)

	agent, err := adapter.NewHTTPAgentAdapter(cfg.Agent, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create agent adapter")
	}

	sess := session.New(agent, log)

	ui, err := tui.New(sess, agent, tui.Options{
		RenderMarkdown: cfg.UI.RenderMarkdown,
		MarkdownStyle:  cfg.UI.MarkdownStyle,
		AgentAddress:   cfg.Agent.Address,
		BuildInfo:      buildInfo,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
