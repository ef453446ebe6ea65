package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blokus/internal/piece"
)

var (
	flagDumpOrientations bool
	flagDumpWidth        int
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Draw every piece of the set",
	Long: `Draw every piece of the configured set side by side, wrapped to the
terminal width.

Examples:
  blokus dump
  blokus dump --orientations
  blokus dump --width 60 --no-color`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().BoolVar(&flagDumpOrientations, "orientations", false, "Draw every orientation instead of the base shape")
	dumpCmd.Flags().IntVar(&flagDumpWidth, "width", 0, "Output width in columns (0 = terminal width)")
}

func runDump(cmd *cobra.Command, _ []string) error {
	c, err := buildCatalog(cmd.Context())
	if err != nil {
		return err
	}

	width := outputWidth(flagDumpWidth)

	for _, e := range c.List() {
		shapes := e.Orientations
		if !flagDumpOrientations {
			shapes = []piece.Shape{e.Base}
		}

		blocks := make([]string, 0, len(shapes))
		for _, s := range shapes {
			blocks = append(blocks, drawShape(s))
		}

		fmt.Println(paint(headerStyle, fmt.Sprintf("%s %s", e.ID, e.Name)))
		fmt.Println(layoutBlocks(blocks, width))
	}
	return nil
}
