package config

import (
	_ "embed"
)

//go:embed defaults/mmheroes.yaml
var defaultOptionsYAML []byte

// DefaultOptions returns the built-in configuration.
func DefaultOptions() Options {
	return Options{
		Mode: "normal",
		Name: "Student",
		Storage: StorageOptions{
			DBPath: "~/.mmheroes/scores.db",
		},
		SSH: SSHOptions{
			Address:     ":2222",
			HostKeyPath: "~/.mmheroes/id_ed25519",
		},
	}
}
