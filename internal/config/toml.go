// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Generate   GenerateConfig   `toml:"generate"`
	Passphrase PassphraseConfig `toml:"passphrase"`
}

// GenerateConfig maps password generator settings.
type GenerateConfig struct {
	Length    *int    `toml:"length"`
	Uppercase *bool   `toml:"uppercase"`
	Lowercase *bool   `toml:"lowercase"`
	Digits    *bool   `toml:"digits"`
	Symbols   *bool   `toml:"symbols"`
	Custom    *string `toml:"custom"`
	Count     *int    `toml:"count"`
}

// PassphraseConfig maps passphrase settings.
type PassphraseConfig struct {
	Words     *int    `toml:"words"`
	Separator *string `toml:"separator"`
	Number    *bool   `toml:"number"`
	WordList  *string `toml:"wordlist"`
	Count     *int    `toml:"count"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
