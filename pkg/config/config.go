package config

import (
	"fmt"
	"io/fs"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the resolved templater configuration
type Config struct {
	Walk    Walk    `koanf:"walk" toml:"walk"`
	Output  Output  `koanf:"output" toml:"output"`
	Suggest Suggest `koanf:"suggest" toml:"suggest"`

	// Jobs is the number of files rendered concurrently
	Jobs int `koanf:"jobs" toml:"jobs"`
}

// Walk holds source tree traversal settings
type Walk struct {
	Ignore []string `koanf:"ignore" toml:"ignore"`
}

// Output holds permissions for materialized files and the console style sheet
type Output struct {
	FileMode Mode `koanf:"file_mode" toml:"file_mode"`
	DirMode  Mode `koanf:"dir_mode" toml:"dir_mode"`

	// Styles is a YAML style sheet path; empty uses the built-in sheet
	Styles string `koanf:"styles" toml:"styles"`
}

// Suggest holds unused-flag suggestion settings
type Suggest struct {
	MaxDistance int `koanf:"max_distance" toml:"max_distance"`
}

// Mode is a permission mode written as an octal string, e.g. "0644"
type Mode fs.FileMode

// Perm returns the mode as an fs.FileMode
func (m Mode) Perm() fs.FileMode {
	return fs.FileMode(m).Perm()
}

// MarshalText implements encoding.TextMarshaler
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%04o", uint32(m))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := strconv.ParseUint(string(text), 8, 32)
	if err != nil {
		return fmt.Errorf("invalid mode %q: %w", text, err)
	}
	if v > 0777 {
		return fmt.Errorf("invalid mode %q: only permission bits are allowed", text)
	}
	*m = Mode(v)
	return nil
}

// TOML renders the configuration as a TOML document
func (c *Config) TOML() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
