package cmd

import (
	"github.com/envtools/envctl/internal/envio"
)

// resolveEnvPath returns the env file path from the flag when set,
// falling back to the project configuration.
func resolveEnvPath(flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.Env
}

// resolveExamplePath returns the example file path from the flag when set.
// Otherwise it prefers <env>.example next to the env file when that exists,
// falling back to the configured example path.
func resolveExamplePath(flag, envPath string) string {
	if flag != "" {
		return flag
	}
	if sibling := envPath + ".example"; envio.Exists(sibling) {
		return sibling
	}
	return cfg.Example
}
