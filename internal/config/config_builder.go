package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration layers from each source. Errors are
// accumulated and reported once by build.
type configBuilder struct {
	args    []string
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder(args []string) *configBuilder {
	return &configBuilder{args: args}
}

// layer records the outcome of reading one source.
func (b *configBuilder) layer(cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if cfg != nil {
		b.configs = append(b.configs, cfg)
	}
	return b
}

// build merges the layers in order; a later non-zero field overrides an
// earlier one.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("load config: %w", b.err)
	}

	merged := &StructuredConfig{}
	for i, cfg := range b.configs {
		if err := mergo.Merge(merged, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge config layer %d: %w", i, err)
		}
	}
	return merged, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.layer(defaultConfig(), nil)
}

// withDotEnv exports a dotenv file into the process environment for the
// withEnv step. Variables that are already set keep their values.
func (b *configBuilder) withDotEnv() *configBuilder {
	return b.layer(nil, loadDotEnv(dotEnvPath(b.args)))
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := &StructuredConfig{}
	if err := parseEnv(cfg); err != nil {
		return b.layer(nil, err)
	}
	return b.layer(cfg, nil)
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.layer(parseFlags(b.args))
}

// withJSON reads the JSON file named by the most recent layer that sets one.
func (b *configBuilder) withJSON() *configBuilder {
	for i := len(b.configs) - 1; i >= 0; i-- {
		if path := b.configs[i].JSONFilePath; path != "" {
			return b.layer(parseJSON(path))
		}
	}
	return b
}
