// Package config handles configuration management for templater.
// Configuration is layered with koanf: embedded defaults, the user config
// file under $XDG_CONFIG_HOME, a .templater.toml in the source root, an
// explicit --config file, TEMPLATER_* environment variables and finally
// command-line flags.
package config
