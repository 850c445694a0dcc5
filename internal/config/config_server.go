package config

import (
	"fmt"
)

// ServerConfig is the demo agent configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App    App
	Server Server
}

// GetServerConfig builds and validates the demo agent config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App:    cfg.App,
		Server: cfg.Server,
	}
}
