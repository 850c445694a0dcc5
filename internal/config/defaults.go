package config

import "time"

const (
	defaultAgentAddress   = "http://localhost:7777"
	defaultServerAddress  = "localhost:7777"
	defaultServerTimeout  = 30 * time.Second
	defaultServiceName    = "README Analyzer Agent"
	defaultAppVersion     = "1.0.0"
	defaultMarkdownStyle  = "dark"
	defaultDotEnvFileName = ".env"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:     defaultAppVersion,
			ServiceName: defaultServiceName,
		},
		Agent: Agent{
			Address: defaultAgentAddress,
		},
		Client: Client{
			MarkdownStyle: defaultMarkdownStyle,
		},
		Server: Server{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultServerTimeout,
		},
	}
}
