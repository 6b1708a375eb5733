package config

import (
	_ "embed"
)

//go:embed defaults/tuipet.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the built-in configuration. It matches defaults/tuipet.yaml.
func Default() Config {
	return Config{
		SavePath:  "./save-file.txt",
		HistoryDB: "~/.tuipet/history.db",
		TickMS:    100,
		PopupMS:   1500,
		Log: LogConfig{
			Level: "info",
			File:  "~/.tuipet/tuipet.log",
		},
	}
}
