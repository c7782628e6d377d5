package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tilekiln/tilekiln/internal/engine"
)

var tilesCmd = &cobra.Command{
	Use:   "tiles",
	Short: "Write one .pbf file per tile under --output",
	RunE:  runTiles,
}

func init() {
	rootCmd.AddCommand(tilesCmd)
}

func runTiles(cmd *cobra.Command, args []string) error {
	p, err := loadParams(cmd)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(p.input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	files, err := engine.GenerateTiles(data, p.minZoom, p.maxZoom, p.layer,
		engine.WithObserver(stderrObserver{enabled: p.verbose}))
	if err != nil {
		return fmt.Errorf("generating tiles: %w", err)
	}

	for _, f := range files {
		path := filepath.Join(p.output, f.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	if p.verbose {
		fmt.Fprintf(os.Stderr, "wrote %d tiles to %s\n", len(files), p.output)
	}
	return nil
}
