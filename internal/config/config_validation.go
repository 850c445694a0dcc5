// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	address := strings.TrimSpace(cfg.Agent.Address)
	if address == "" {
		return ErrInvalidAgentConfigs
	}

	if !strings.Contains(address, "://") {
		address = "http://" + address
	}
	u, err := url.Parse(address)
	if err != nil || u.Host == "" {
		return fmt.Errorf("%w: bad address %q", ErrInvalidAgentConfigs, cfg.Agent.Address)
	}

	if cfg.Agent.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAgentConfigs)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.ServiceName == "" || cfg.App.Version == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
