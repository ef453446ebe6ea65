package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blokus/internal/storage"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Save or read the orientation catalog",
	Long: `The catalog holds every distinct orientation of every piece, ready to be
used as placement templates. It is stored in a SQLite database.

Examples:
  blokus catalog save
  blokus catalog stats
  blokus catalog show L4 --db ./catalog.db`,
}

var catalogSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Compute all orientations and store them",
	Args:  cobra.NoArgs,
	RunE:  runCatalogSave,
}

var flagCatalogWidth int

var catalogShowCmd = &cobra.Command{
	Use:   "show <piece>",
	Short: "Draw the stored orientations of a piece",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show what the stored catalog contains",
	Args:  cobra.NoArgs,
	RunE:  runCatalogStats,
}

func init() {
	catalogCmd.AddCommand(catalogSaveCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogStatsCmd)

	catalogShowCmd.Flags().IntVar(&flagCatalogWidth, "width", 0, "Output width in columns (0 = terminal width)")
}

func openStore() (*storage.Store, error) {
	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog database opened", "path", appConfig.Storage.Path)
	return store, nil
}

func runCatalogSave(cmd *cobra.Command, _ []string) error {
	c, err := buildCatalog(cmd.Context())
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	written, err := store.SaveCatalog(c)
	if err != nil {
		return err
	}

	logger.Info("catalog saved", "path", appConfig.Storage.Path, "pieces", c.Len(), "orientations", written)
	return nil
}

func runCatalogShow(_ *cobra.Command, args []string) error {
	id := args[0]

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Piece(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("piece %q is not in the catalog (run 'blokus catalog save' first)", id)
	}

	shapes, err := store.Orientations(id)
	if err != nil {
		return err
	}

	fmt.Println(paint(headerStyle, fmt.Sprintf("%s - %s (%d orientations)", rec.ID, rec.Name, len(shapes))))
	fmt.Println()

	blocks := make([]string, 0, len(shapes))
	for _, s := range shapes {
		blocks = append(blocks, drawShape(s))
	}
	fmt.Println(layoutBlocks(blocks, outputWidth(flagCatalogWidth)))
	return nil
}

func runCatalogStats(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	if stats.Pieces == 0 {
		fmt.Println("The catalog is empty.")
		fmt.Println("Run 'blokus catalog save' to fill it.")
		return nil
	}

	fmt.Printf("Pieces:       %d\n", stats.Pieces)
	fmt.Printf("Orientations: %d\n", stats.Orientations)
	if !stats.SavedAt.IsZero() {
		fmt.Printf("Saved:        %s\n", stats.SavedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
