package config

import (
	"fmt"
	"time"
)

// ClientAgent holds the outbound agent settings used by the client adapter.
type ClientAgent struct {
	// Address is the agent base URL.
	Address string
	// RequestTimeout bounds a single /chat call; zero means no client-side
	// timeout.
	RequestTimeout time.Duration
}

// ClientUI holds terminal presentation settings.
type ClientUI struct {
	// LogFile is the client log destination.
	LogFile string
	// RenderMarkdown enables markdown rendering of agent replies.
	RenderMarkdown bool
	// MarkdownStyle is the glamour style name.
	MarkdownStyle string
}

// ClientConfig is the client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Agent ClientAgent
	UI    ClientUI
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Agent: ClientAgent{
			Address:        cfg.Agent.Address,
			RequestTimeout: cfg.Agent.RequestTimeout,
		},
		UI: ClientUI{
			LogFile:        cfg.Client.LogFile,
			RenderMarkdown: cfg.Client.RenderMarkdown,
			MarkdownStyle:  cfg.Client.MarkdownStyle,
		},
	}
}
