package config

import (
	_ "embed"

	"github.com/vovakirdan/blokus/internal/piece"
)

//go:embed defaults/blokus.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration with the classic piece set.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:      "info",
			Timestamps: false,
		},
		Storage: StorageConfig{
			Path: "~/.blokus/catalog.db",
		},
		Catalog: CatalogConfig{
			Workers: 0,
		},
		Pieces: PieceConfigs(piece.Standard()),
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
