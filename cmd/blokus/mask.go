package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blokus/internal/grid"
)

var (
	flagMaskCells      []string
	flagMaskWith       []string
	flagMaskComplement bool
)

var maskCmd = &cobra.Command{
	Use:   "mask",
	Short: "Show outline and corner masks for occupied cells",
	Long: `Build a 20x20 board mask from the given occupied cells and print it
next to its outline (cells one orthogonal step away, occupied cells included)
and its corners (cells one diagonal step away that are not in the outline).

Examples:
  blokus mask --cell 0,0
  blokus mask --cell 5,5 --cell 6,5 --with 10,10
  blokus mask --cell 19,3 --complement`,
	Args: cobra.NoArgs,
	RunE: runMask,
}

func init() {
	maskCmd.Flags().StringArrayVar(&flagMaskCells, "cell", nil, "Occupied cell as x,y (repeatable)")
	maskCmd.Flags().StringArrayVar(&flagMaskWith, "with", nil, "Cell of a second mask to union with (repeatable)")
	maskCmd.Flags().BoolVar(&flagMaskComplement, "complement", false, "Complement the mask before computing adjacency")
}

func runMask(_ *cobra.Command, _ []string) error {
	cells, err := parseCells(flagMaskCells)
	if err != nil {
		return err
	}
	with, err := parseCells(flagMaskWith)
	if err != nil {
		return err
	}

	m := grid.Union(grid.New(cells...), grid.New(with...))
	if flagMaskComplement {
		m = grid.Complement(m)
	}
	logger.Debug("mask built", "cells", m.Count(), "complement", flagMaskComplement)

	outline := grid.Outline(m)
	corners := grid.Corners(m)

	column := func(title string, mask grid.Mask, on string) string {
		header := paint(headerStyle, fmt.Sprintf("%s (%d)", title, mask.Count()))
		return blockStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, drawMask(mask, on)))
	}

	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top,
		column("occupied", m, "#"),
		column("outline", outline, "o"),
		column("corners", corners, "x"),
	))
	return nil
}

// parseCells parses "x,y" pairs and rejects cells outside the board.
func parseCells(values []string) ([]grid.Cell, error) {
	cells := make([]grid.Cell, 0, len(values))
	for _, v := range values {
		xs, ys, ok := strings.Cut(v, ",")
		if !ok {
			return nil, fmt.Errorf("invalid cell %q: want x,y", v)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("invalid cell %q: %w", v, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("invalid cell %q: %w", v, err)
		}
		c := grid.C(x, y)
		if !c.InBounds() {
			return nil, fmt.Errorf("cell %q is outside the %dx%d board", v, grid.Width, grid.Height)
		}
		cells = append(cells, c)
	}
	return cells, nil
}
