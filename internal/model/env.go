package model

import "github.com/kelseyhightower/envconfig"

// Environment captures the process-wide environment values the launcher
// consults. It is read once at startup and passed down, so tests can build
// one literally instead of mutating the real environment.
type Environment struct {
	Home string `envconfig:"HOME"`
	Term string `envconfig:"TERM"`
}

// LoadEnvironment reads Environment from the process environment.
func LoadEnvironment() (Environment, error) {
	var env Environment
	if err := envconfig.Process("", &env); err != nil {
		return Environment{}, err
	}
	return env, nil
}
