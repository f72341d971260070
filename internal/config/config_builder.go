package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder accumulates partial configurations from individual sources
// and merges them into a single [StructuredConfig]. Sources appended earlier
// take precedence: mergo only fills fields that are still zero.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 3),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.applyDefaults()

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	b.configs = append(b.configs, ParseFlags())
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}
