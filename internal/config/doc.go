// Package config provides project configuration for envctl.
//
// # Configuration File
//
// An optional .envctl.toml in the working directory seeds per-command
// defaults:
//
//	env = ".env"
//	example = ".env.example"
//
//	[sync]
//	strategy = "merge"
//	backup = true
//
//	[typegen]
//	output = "env.types.ts"
//	format = "interface"
//
//	[scan]
//	path = "."
//	extensions = [".ts", ".tsx", ".js", ".jsx"]
//	exclude = ["node_modules", ".git", "dist", "build", ".next"]
//
// # Precedence
//
// Command-line flags override config file values, which override the
// built-in defaults. A missing config file is not an error; a malformed or
// invalid one is.
//
// # Validation
//
// Config implements Validate() to reject unknown strategies and formats and
// malformed extension lists. Load validates automatically after parsing.
package config
