// Package config provides YAML-based configuration loading for the
// mmheroes shell: game mode, persistence paths and the SSH server.
package config

import (
	"fmt"

	"github.com/mmheroes/mmheroes-go/internal/game"
)

// Options is the full configuration of the shell.
type Options struct {
	// Mode selects the startup behavior: "normal", "select" (prompt for
	// initial parameters) or "god".
	Mode string `yaml:"mode"`
	// Seed fixes the RNG seed; 0 means derive one from the clock.
	Seed uint64 `yaml:"seed"`
	// Name is the player name recorded in the hall of fame.
	Name string `yaml:"name"`

	Storage StorageOptions `yaml:"storage"`
	SSH     SSHOptions     `yaml:"ssh"`
}

// StorageOptions configures score persistence.
type StorageOptions struct {
	// DBPath is the SQLite database location. A leading ~ expands to the
	// home directory.
	DBPath string `yaml:"db_path"`
	// LegacyScoreFile, when set, is a DOS-format MMHEROES.DAT file
	// imported into the database on startup.
	LegacyScoreFile string `yaml:"legacy_score_file"`
}

// SSHOptions configures the SSH game server.
type SSHOptions struct {
	Address     string `yaml:"address"`
	HostKeyPath string `yaml:"host_key_path"`
}

// GameMode maps the configured mode string to the engine mode.
func (o *Options) GameMode() (game.Mode, error) {
	switch o.Mode {
	case "", "normal":
		return game.ModeNormal, nil
	case "select":
		return game.ModeSelectInitialParameters, nil
	case "god":
		return game.ModeGod, nil
	default:
		return 0, fmt.Errorf("config: unknown mode %q (want normal, select or god)", o.Mode)
	}
}
