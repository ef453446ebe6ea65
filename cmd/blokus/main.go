// blokus inspects the static geometry used by the Blokus board game: piece
// orientations with their corner attachment cells, and board adjacency masks.
//
// Usage:
//
//	blokus pieces            - List the piece set with orientation counts
//	blokus show <piece>      - Draw a piece and its attachment cells
//	blokus dump              - Draw every piece of the set
//	blokus mask --cell x,y   - Show outline and corner masks for occupied cells
//	blokus catalog save      - Persist all orientations to the catalog database
//	blokus catalog show <id> - Read a piece's orientations back from the database
//
// Global flags:
//
//	--config <path>     - Custom config YAML (default: search path, then built-in)
//	--log-level <level> - debug, info, warn or error
//	--db <path>         - Catalog database path (default: ~/.blokus/catalog.db)
//	--no-color          - Disable styled output
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blokus/internal/catalog"
	"github.com/vovakirdan/blokus/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagDBPath   string
	flagNoColor  bool
)

var (
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blokus",
	Short: "Blokus geometry - piece orientations and board adjacency",
	Long: `blokus computes the static geometry behind the Blokus board game.

Available commands:
  pieces   - List the piece set
  show     - Draw one piece and its orientations
  dump     - Draw every piece
  mask     - Outline and corner masks for a set of occupied cells
  catalog  - Save or read the orientation catalog

Examples:
  blokus pieces
  blokus show F5 --all
  blokus mask --cell 0,0 --cell 1,0
  blokus catalog save --db ./catalog.db`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to catalog database (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable styled output")

	// Add subcommands
	rootCmd.AddCommand(piecesCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(maskCmd)
	rootCmd.AddCommand(catalogCmd)
}

// setup loads configuration and builds the logger before any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}

	level, err := cfg.Log.LogLevel()
	if err != nil {
		return err
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: cfg.Log.Timestamps,
		Prefix:          "blokus",
		Level:           level,
	})
	appConfig = cfg

	logger.Debug("configuration loaded",
		"pieces", len(cfg.Pieces),
		"db", cfg.Storage.Path,
		"workers", cfg.Catalog.Workers)
	return nil
}

// buildCatalog computes the orientation catalog for the configured piece set.
func buildCatalog(ctx context.Context) (*catalog.Catalog, error) {
	defs, err := appConfig.Definitions()
	if err != nil {
		return nil, err
	}
	return catalog.Build(ctx, defs, catalog.Options{
		Workers: appConfig.Catalog.Workers,
		Logger:  logger,
	})
}
