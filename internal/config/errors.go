package config

import "errors"

// Errors returned while loading or validating configuration.
var (
	// ErrInvalidAgentConfigs indicates an unusable agent address or a
	// negative request timeout.
	ErrInvalidAgentConfigs = errors.New("invalid agent configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive request timeout for the demo agent.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates missing agent identification values.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidFlags indicates that command-line arguments could not be parsed.
	ErrInvalidFlags = errors.New("invalid command-line flags")
	// ErrDotEnvFile indicates that the requested dotenv file could not be loaded.
	ErrDotEnvFile = errors.New("cannot load dotenv file")
)
