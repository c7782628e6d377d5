package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type runParams struct {
	input   string
	output  string
	layer   string
	minZoom uint8
	maxZoom uint8
	verbose bool
}

func loadParams(cmd *cobra.Command) (runParams, error) {
	p := runParams{
		input:   viper.GetString("input"),
		output:  viper.GetString("output"),
		layer:   viper.GetString("layer"),
		minZoom: uint8(viper.GetUint("min_zoom")),
		maxZoom: uint8(viper.GetUint("max_zoom")),
		verbose: viper.GetBool("verbose"),
	}

	if p.input == "" {
		return p, fmt.Errorf("--input is required")
	}
	if p.output == "" {
		return p, fmt.Errorf("--output is required")
	}
	return p, nil
}

// stderrObserver logs each completed zoom level to stderr when --verbose is set.
type stderrObserver struct{ enabled bool }

func (o stderrObserver) OnZoomLevel(zoom uint8, tileCount int) {
	if o.enabled {
		fmt.Fprintf(os.Stderr, "zoom %d: %d tiles\n", zoom, tileCount)
	}
}
