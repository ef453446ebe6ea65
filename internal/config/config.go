// Package config provides YAML-based configuration loading for the blokus
// tools: logging, catalog storage and the piece set itself.
package config

import (
	"fmt"

	"github.com/vovakirdan/blokus/internal/piece"
)

// Config contains all configuration for the blokus tools.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	Catalog CatalogConfig `yaml:"catalog"`
	Pieces  []PieceConfig `yaml:"pieces"`
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level      string `yaml:"level"` // "debug", "info", "warn" or "error"
	Timestamps bool   `yaml:"timestamps"`
}

// StorageConfig defines where the orientation catalog is persisted.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// CatalogConfig defines how the orientation catalog is built.
type CatalogConfig struct {
	Workers int `yaml:"workers"` // 0 = one per CPU
}

// PieceConfig is a piece definition in YAML form.
type PieceConfig struct {
	ID    string  `yaml:"id"`
	Name  string  `yaml:"name"`
	Cells [][]int `yaml:"cells"` // [[x, y], ...]
}

// Definition converts the YAML form to a piece definition.
func (p PieceConfig) Definition() (piece.Definition, error) {
	def := piece.Definition{
		ID:    p.ID,
		Name:  p.Name,
		Cells: make([]piece.Point, 0, len(p.Cells)),
	}
	for i, c := range p.Cells {
		if len(c) != 2 {
			return piece.Definition{}, fmt.Errorf("piece %s: cell %d: want [x, y], got %v", p.ID, i, c)
		}
		def.Cells = append(def.Cells, piece.P(c[0], c[1]))
	}
	return def, nil
}

// Definitions converts every configured piece to a piece definition.
func (c Config) Definitions() ([]piece.Definition, error) {
	defs := make([]piece.Definition, 0, len(c.Pieces))
	for _, p := range c.Pieces {
		def, err := p.Definition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// Validate checks the piece set: at least one piece, unique non-empty IDs,
// and every definition accepted by piece.New.
func (c Config) Validate() error {
	if len(c.Pieces) == 0 {
		return fmt.Errorf("config: no pieces defined")
	}
	if _, err := c.Log.LogLevel(); err != nil {
		return err
	}
	if c.Catalog.Workers < 0 {
		return fmt.Errorf("config: catalog.workers must not be negative, got %d", c.Catalog.Workers)
	}

	defs, err := c.Definitions()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	seen := make(map[string]bool, len(defs))
	for i, def := range defs {
		if def.ID == "" {
			return fmt.Errorf("config: piece %d has no id", i)
		}
		if seen[def.ID] {
			return fmt.Errorf("config: duplicate piece id %q", def.ID)
		}
		seen[def.ID] = true

		if _, err := def.Shape(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// PieceConfigs converts piece definitions to their YAML form.
func PieceConfigs(defs []piece.Definition) []PieceConfig {
	out := make([]PieceConfig, len(defs))
	for i, d := range defs {
		cells := make([][]int, len(d.Cells))
		for j, p := range d.Cells {
			cells[j] = []int{p.X, p.Y}
		}
		out[i] = PieceConfig{ID: d.ID, Name: d.Name, Cells: cells}
	}
	return out
}
