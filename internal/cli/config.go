package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/asmutils/agptool/pkg/agp"
	"github.com/asmutils/agptool/pkg/fasta"
)

// configFile is the optional per-project configuration, looked up in
// the working directory unless --config points elsewhere.
const configFile = "agptool.toml"

// Config holds defaults that flags fall back to. Precedence is flags,
// then config file, then built-in defaults.
type Config struct {
	Gap   GapConfig   `toml:"gap"`
	Fasta FastaConfig `toml:"fasta"`
}

// GapConfig sets the synthetic gap defaults used by the join command.
type GapConfig struct {
	Size     int    `toml:"size"`
	Type     string `toml:"type"`
	Evidence string `toml:"evidence"`
}

// FastaConfig sets FASTA output parameters.
type FastaConfig struct {
	Wrap int `toml:"wrap"`
}

// defaultConfig returns the built-in defaults, matching the AGP gap
// conventions used throughout pkg/agp.
func defaultConfig() Config {
	return Config{
		Gap:   GapConfig{Size: agp.DefaultGapLength, Type: agp.DefaultGapType, Evidence: "na"},
		Fasta: FastaConfig{Wrap: fasta.DefaultWrap},
	}
}

// loadConfig reads the TOML config at path, layered over the built-in
// defaults. A missing file is not an error unless the path was given
// explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Gap.Size <= 0 {
		return cfg, fmt.Errorf("config %s: gap size must be positive", path)
	}
	if cfg.Fasta.Wrap <= 0 {
		return cfg, fmt.Errorf("config %s: fasta wrap must be positive", path)
	}
	return cfg, nil
}
