// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv loads path into the process environment. A missing default
// file is not an error; a missing explicitly requested file is.
func loadDotEnv(path string, explicit bool) error {
	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrDotEnvFile, err)
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: %w", ErrDotEnvFile, err)
	}

	return nil
}

// dotEnvPath resolves the dotenv location from the -env-file flag, then the
// ENV_FILE variable, then the default ".env". The flag is looked up by hand
// because the dotenv file has to be loaded before the env step runs.
func dotEnvPath(args []string) (path string, explicit bool) {
	for i, arg := range args {
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != envFileFlag {
			continue
		}
		if hasValue {
			return value, true
		}
		if i+1 < len(args) {
			return args[i+1], true
		}
	}

	if v := os.Getenv("ENV_FILE"); v != "" {
		return v, true
	}

	return defaultDotEnvFileName, false
}
