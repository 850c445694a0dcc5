package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
// Durations may be written as strings ("30s", "2m") or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		Version     string `json:"version"`
		ServiceName string `json:"service_name"`
	} `json:"app,omitempty"`

	Agent struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"agent,omitempty"`

	Client struct {
		LogFile        string `json:"log_file"`
		RenderMarkdown bool   `json:"render_markdown"`
		MarkdownStyle  string `json:"markdown_style"`
	} `json:"client,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read json config %q: %w", path, err)
	}

	var file StructuredJSONConfig
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode json config %q: %w", path, err)
	}
	return file.structured(), nil
}

// structured converts the file shape into a config layer. JSONFilePath is
// left empty so a file cannot redirect to another one.
func (f *StructuredJSONConfig) structured() *StructuredConfig {
	cfg := &StructuredConfig{}

	cfg.App.Version = f.App.Version
	cfg.App.ServiceName = f.App.ServiceName

	cfg.Agent.Address = f.Agent.Address
	cfg.Agent.RequestTimeout = time.Duration(f.Agent.RequestTimeout)

	cfg.Client.LogFile = f.Client.LogFile
	cfg.Client.RenderMarkdown = f.Client.RenderMarkdown
	cfg.Client.MarkdownStyle = f.Client.MarkdownStyle

	cfg.Server.HTTPAddress = f.Server.HTTPAddress
	cfg.Server.RequestTimeout = time.Duration(f.Server.RequestTimeout)

	return cfg
}

// Duration is a time.Duration that decodes from "1h30m"-style strings as
// well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		parsed, err := time.ParseDuration(text)
		if err != nil {
			return fmt.Errorf("duration %q: %w", text, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var nanos int64
	if err := json.Unmarshal(b, &nanos); err != nil {
		return fmt.Errorf("duration must be a string or nanoseconds: %w", err)
	}
	*d = Duration(nanos)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
