// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG":   "/path/to/config.json",
		"ENV_FILE": "/path/to/.env",

		"APP_VERSION":      "2.1.0",
		"APP_SERVICE_NAME": "test agent",

		"AGENT_ADDRESS":         "http://agent:7777",
		"AGENT_REQUEST_TIMEOUT": "90s",

		"CLIENT_LOG_FILE":        "/tmp/client.log",
		"CLIENT_RENDER_MARKDOWN": "true",
		"CLIENT_MARKDOWN_STYLE":  "light",

		"SERVER_ADDRESS":         "0.0.0.0:7777",
		"SERVER_REQUEST_TIMEOUT": "30s",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/path/to/.env", cfg.EnvFilePath)

	assert.Equal(t, "2.1.0", cfg.App.Version)
	assert.Equal(t, "test agent", cfg.App.ServiceName)

	assert.Equal(t, "http://agent:7777", cfg.Agent.Address)
	assert.Equal(t, 90*time.Second, cfg.Agent.RequestTimeout)

	assert.Equal(t, "/tmp/client.log", cfg.Client.LogFile)
	assert.True(t, cfg.Client.RenderMarkdown)
	assert.Equal(t, "light", cfg.Client.MarkdownStyle)

	assert.Equal(t, "0.0.0.0:7777", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"AGENT_ADDRESS": "localhost:7777",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "localhost:7777", cfg.Agent.Address)
	assert.Zero(t, cfg.Agent.RequestTimeout)
	assert.Empty(t, cfg.Server.HTTPAddress)
}

func TestParseEnv_InvalidBool(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CLIENT_RENDER_MARKDOWN": "maybe",
	})

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

func TestDotEnvPath(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		env          string
		wantPath     string
		wantExplicit bool
	}{
		{name: "default", wantPath: ".env"},
		{name: "separate value", args: []string{"-env-file", "a.env"}, wantPath: "a.env", wantExplicit: true},
		{name: "inline value", args: []string{"-env-file=b.env"}, wantPath: "b.env", wantExplicit: true},
		{name: "double dash", args: []string{"--env-file=c.env"}, wantPath: "c.env", wantExplicit: true},
		{name: "from environment", env: "d.env", wantPath: "d.env", wantExplicit: true},
		{name: "flag beats environment", args: []string{"-env-file", "e.env"}, env: "d.env", wantPath: "e.env", wantExplicit: true},
		{name: "other flags ignored", args: []string{"-agent", "x", "-markdown"}, wantPath: ".env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENV_FILE", tt.env)

			path, explicit := dotEnvPath(tt.args)
			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, tt.wantExplicit, explicit)
		})
	}
}
