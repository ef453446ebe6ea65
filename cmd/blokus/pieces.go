package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "List the piece set",
	Long:  `Shows every piece of the configured set with its size and number of orientations.`,
	Args:  cobra.NoArgs,
	RunE:  runPieces,
}

func runPieces(cmd *cobra.Command, _ []string) error {
	c, err := buildCatalog(cmd.Context())
	if err != nil {
		return err
	}

	entries := c.List()
	if len(entries) == 0 {
		fmt.Println("No pieces defined.")
		return nil
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, e := range entries {
		if len(e.ID) > maxIDLen {
			maxIDLen = len(e.ID)
		}
	}

	// Print header
	fmt.Println(paint(headerStyle, fmt.Sprintf("  %-*s  %-5s  %-12s  %s", maxIDLen, "ID", "Cells", "Orientations", "Name")))
	fmt.Printf("  %-*s  %-5s  %-12s  %s\n", maxIDLen, "--", "-----", "------------", "----")

	// Print pieces
	for _, e := range entries {
		fmt.Printf("  %-*s  %-5d  %-12d  %s\n", maxIDLen, e.ID, e.Base.Size(), len(e.Orientations), e.Name)
	}

	fmt.Println()
	fmt.Printf("%d pieces, %d cells, %d orientations\n", c.Len(), c.TotalCells(), c.TotalOrientations())
	fmt.Println("Run 'blokus show <id>' to draw a piece.")
	return nil
}
