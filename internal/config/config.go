// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by both
// binaries. It is populated by merging defaults, a dotenv file, environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identification settings reported by the agent.
	App App `envPrefix:"APP_"`

	// Agent holds the location of the agent the client talks to.
	Agent Agent `envPrefix:"AGENT_"`

	// Client holds terminal client presentation settings.
	Client Client `envPrefix:"CLIENT_"`

	// Server holds listen address and timeout settings of the demo agent.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the optional path to a dotenv file. When empty, ".env"
	// in the working directory is used if it exists.
	// Populated via the ENV_FILE environment variable or the -env-file flag.
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds identification values reported by the demo agent.
type App struct {
	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// ServiceName is reported by GET /health.
	// Env: APP_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`
}

// Agent holds the settings of the outbound agent connection.
type Agent struct {
	// Address is the agent base URL, e.g. "http://localhost:7777".
	// A bare "host:port" is accepted and gets the http scheme.
	// Env: AGENT_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds a single /chat call. Zero leaves timing to the
	// transport.
	// Env: AGENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds presentation settings of the terminal client.
type Client struct {
	// LogFile is where the client writes its JSON log.
	// Env: CLIENT_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// RenderMarkdown enables glamour rendering of agent replies.
	// Env: CLIENT_RENDER_MARKDOWN
	RenderMarkdown bool `env:"RENDER_MARKDOWN"`

	// MarkdownStyle is the glamour style name ("dark", "light", "notty").
	// Env: CLIENT_MARKDOWN_STYLE
	MarkdownStyle string `env:"MARKDOWN_STYLE"`
}

// Server holds listen settings of the demo agent.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads and merges the configuration from all sources
// using the process arguments.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder(args).
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
