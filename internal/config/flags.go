package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
)

const envFileFlag = "env-file"

// NetAddress is a "host:port" listen address usable as a flag.Value. The
// host must be empty, "localhost" or an IP literal.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags reads one config layer from args.
//
//	-a               demo agent listen address, [host]:port
//	-request-timeout demo agent request timeout ("30s")
//	-agent           agent base URL used by the client
//	-agent-timeout   client request timeout ("2m"); 0 disables it
//	-log-file        client log file
//	-markdown        render agent replies as markdown
//	-markdown-style  glamour style name
//	-version         version reported by /api/version
//	-service-name    name reported by /health
//	-c, -config      JSON config file
//	-env-file        dotenv file
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var listen NetAddress

	fs := flag.NewFlagSet("agent-chat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&listen, "a", "listen address host:port")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "demo agent request timeout")
	fs.StringVar(&cfg.App.Version, "version", "", "agent version")
	fs.StringVar(&cfg.App.ServiceName, "service-name", "", "agent service name")

	fs.StringVar(&cfg.Agent.Address, "agent", "", "agent base URL")
	fs.DurationVar(&cfg.Agent.RequestTimeout, "agent-timeout", 0, "agent request timeout")

	fs.StringVar(&cfg.Client.LogFile, "log-file", "", "client log file")
	fs.BoolVar(&cfg.Client.RenderMarkdown, "markdown", false, "render replies as markdown")
	fs.StringVar(&cfg.Client.MarkdownStyle, "markdown-style", "", "markdown style (dark, light, notty)")

	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file")
	fs.StringVar(&cfg.EnvFilePath, envFileFlag, "", "dotenv file")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidFlags, err)
	}
	cfg.Server.HTTPAddress = listen.String()

	return cfg, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("address %q: %w", s, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("address %q: port must be a number in 1..65535", s)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("address %q: host must be localhost or an IP", s)
	}

	a.Host, a.Port = host, port
	return nil
}
