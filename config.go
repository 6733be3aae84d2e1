package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// pipelineConfig is a transform pipeline stored as YAML.
// Command line flags take precedence over log, verbose and pcd.
type pipelineConfig struct {
	Log        string      `yaml:"log"`
	Verbose    *bool       `yaml:"verbose"`
	PCD        string      `yaml:"pcd"`
	Transforms []directive `yaml:"transforms"`
}

func readPipelineConfig(path string) (*pipelineConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := &pipelineConfig{}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for i, d := range c.Transforms {
		if err := d.validate(); err != nil {
			return nil, fmt.Errorf("%s: transforms[%d]: %w", path, i, err)
		}
	}
	return c, nil
}
