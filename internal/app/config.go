package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ScenarioPath string // hcl files declaring delegates and steps
	ModulesPath  string // hcl manifests + handlers

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScenarioPath == "" {
		return nil, errors.New("ScenarioPath is a required configuration field and cannot be empty")
	}

	// Future validations for other fields can be added here.
	// For example: checking if LogLevel is a valid value.

	return &cfg, nil
}
