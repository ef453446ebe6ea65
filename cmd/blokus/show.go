package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blokus/internal/piece"
)

var flagShowAll bool

var showCmd = &cobra.Command{
	Use:   "show <piece>",
	Short: "Draw a piece and its attachment cells",
	Long: `Draw a piece: 'A' marks attachment cells (corners another piece of the
same color may touch), 'P' marks the remaining cells.

Examples:
  blokus show V3
  blokus show F5 --all`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagShowAll, "all", false, "Draw every distinct orientation")
}

func runShow(cmd *cobra.Command, args []string) error {
	id := args[0]

	c, err := buildCatalog(cmd.Context())
	if err != nil {
		return err
	}

	entry, ok := c.Get(id)
	if !ok {
		return fmt.Errorf("unknown piece %q (run 'blokus pieces' to list them)", id)
	}

	fmt.Println(paint(headerStyle, fmt.Sprintf("%s - %s", entry.ID, entry.Name)))
	fmt.Println()

	if !flagShowAll {
		printShape(entry.Base)
		return nil
	}

	for i, o := range entry.Orientations {
		fmt.Println(paint(dimStyle, fmt.Sprintf("orientation %d/%d (%dx%d)", i+1, len(entry.Orientations), o.Width()+1, o.Height()+1)))
		printShape(o)
	}
	return nil
}

// printShape prints a shape followed by its attachment coordinates.
func printShape(s piece.Shape) {
	fmt.Println(drawShape(s))
	for _, p := range s.Attach() {
		fmt.Println(p)
	}
	fmt.Println()
}
