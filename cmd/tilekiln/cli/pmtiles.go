package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tilekiln/tilekiln/internal/engine"
)

var pmtilesCmd = &cobra.Command{
	Use:   "pmtiles",
	Short: "Build a single PMTiles v3 archive at --output",
	RunE:  runPMTiles,
}

func init() {
	rootCmd.AddCommand(pmtilesCmd)
}

func runPMTiles(cmd *cobra.Command, args []string) error {
	p, err := loadParams(cmd)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(p.input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	archive, err := engine.GeneratePMTiles(data, p.minZoom, p.maxZoom, p.layer,
		engine.WithObserver(stderrObserver{enabled: p.verbose}))
	if err != nil {
		return fmt.Errorf("generating pmtiles archive: %w", err)
	}

	if err := os.WriteFile(p.output, archive, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", p.output, err)
	}

	if p.verbose {
		fmt.Fprintf(os.Stderr, "wrote %d bytes to %s\n", len(archive), p.output)
	}
	return nil
}
