package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		agent   ClientAgent
		wantErr error
	}{
		{name: "url", agent: ClientAgent{Address: "http://localhost:7777"}},
		{name: "bare host port", agent: ClientAgent{Address: "localhost:7777", RequestTimeout: time.Minute}},
		{name: "empty", agent: ClientAgent{Address: "  "}, wantErr: ErrInvalidAgentConfigs},
		{name: "no host", agent: ClientAgent{Address: "http://"}, wantErr: ErrInvalidAgentConfigs},
		{name: "negative timeout", agent: ClientAgent{Address: "localhost:1", RequestTimeout: -time.Second}, wantErr: ErrInvalidAgentConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &ClientConfig{Agent: tt.agent}
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	valid := ServerConfig{
		App:    App{Version: "1.0.0", ServiceName: "agent"},
		Server: Server{HTTPAddress: "localhost:7777", RequestTimeout: time.Second},
	}
	assert.NoError(t, valid.validate())

	noAddress := valid
	noAddress.Server.HTTPAddress = ""
	assert.ErrorIs(t, noAddress.validate(), ErrInvalidServerConfigs)

	noTimeout := valid
	noTimeout.Server.RequestTimeout = 0
	assert.ErrorIs(t, noTimeout.validate(), ErrInvalidServerConfigs)

	noName := valid
	noName.App.ServiceName = ""
	assert.ErrorIs(t, noName.validate(), ErrInvalidAppConfigs)
}

func TestNewClientConfig_MapsFields(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{
		Agent:  Agent{Address: "http://a:1", RequestTimeout: time.Minute},
		Client: Client{LogFile: "x.log", RenderMarkdown: true, MarkdownStyle: "light"},
	})

	assert.Equal(t, ClientAgent{Address: "http://a:1", RequestTimeout: time.Minute}, cfg.Agent)
	assert.Equal(t, ClientUI{LogFile: "x.log", RenderMarkdown: true, MarkdownStyle: "light"}, cfg.UI)
}

func TestNewServerConfig_MapsFields(t *testing.T) {
	cfg := newServerConfig(&StructuredConfig{
		App:    App{Version: "1", ServiceName: "s"},
		Server: Server{HTTPAddress: "localhost:1", RequestTimeout: time.Second},
	})

	assert.Equal(t, "1", cfg.App.Version)
	assert.Equal(t, "localhost:1", cfg.Server.HTTPAddress)
}
