// Package catalog builds the placement templates for a piece set: every
// piece definition is turned into its base shape and the full list of
// distinct orientations once, at startup, and reused afterwards.
package catalog

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/blokus/internal/piece"
)

// Entry holds the templates of one piece.
type Entry struct {
	ID           string
	Name         string
	Base         piece.Shape
	Orientations []piece.Shape
}

// Catalog is an immutable, ordered collection of entries.
// Safe for concurrent use.
type Catalog struct {
	entries []Entry
	byID    map[string]int
}

// Options configures Build.
type Options struct {
	// Workers bounds the number of pieces processed concurrently.
	// Zero means one per CPU.
	Workers int

	// Logger receives progress messages. Nil discards them.
	Logger *log.Logger
}

// Build computes the orientations of every definition concurrently.
// Entries keep the order of defs. Build fails on duplicate or empty IDs,
// on the first invalid definition, or when ctx is cancelled.
func Build(ctx context.Context, defs []piece.Definition, opts Options) (*Catalog, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	byID := make(map[string]int, len(defs))
	for i, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("catalog: piece %d has no id", i)
		}
		if _, exists := byID[d.ID]; exists {
			return nil, fmt.Errorf("catalog: piece %q defined twice", d.ID)
		}
		byID[d.ID] = i
	}

	start := time.Now()
	entries := make([]Entry, len(defs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, d := range defs {
		i, d := i, d
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			base, err := d.Shape()
			if err != nil {
				return fmt.Errorf("catalog: %w", err)
			}
			orients := base.Orientations()
			entries[i] = Entry{
				ID:           d.ID,
				Name:         d.Name,
				Base:         base,
				Orientations: orients,
			}
			logger.Debug("piece ready", "id", d.ID, "cells", base.Size(), "orientations", len(orients))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := &Catalog{entries: entries, byID: byID}
	logger.Info("catalog built",
		"pieces", len(entries),
		"orientations", c.TotalOrientations(),
		"workers", workers,
		"elapsed", time.Since(start))
	return c, nil
}

// List returns all entries in definition order.
func (c *Catalog) List() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// IDs returns the piece IDs in definition order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.entries))
	for i, e := range c.entries {
		ids[i] = e.ID
	}
	return ids
}

// Get looks up an entry by piece ID.
func (c *Catalog) Get(id string) (Entry, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Exists checks if a piece with the given ID is in the catalog.
func (c *Catalog) Exists(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Len returns the number of pieces.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// TotalOrientations returns the number of placement templates across all pieces.
func (c *Catalog) TotalOrientations() int {
	n := 0
	for _, e := range c.entries {
		n += len(e.Orientations)
	}
	return n
}

// TotalCells returns the number of cells across all pieces.
func (c *Catalog) TotalCells() int {
	n := 0
	for _, e := range c.entries {
		n += e.Base.Size()
	}
	return n
}
