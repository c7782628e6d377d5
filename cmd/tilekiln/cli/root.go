// Package cli wires the tilekiln engine to a cobra/viper command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "tilekiln",
	Short: "Generate vector tiles and PMTiles archives from GeoJSON",
	Long: `tilekiln converts a GeoJSON FeatureCollection into Mapbox Vector Tiles
across a zoom range, either as loose .pbf files on disk or bundled into a
single PMTiles v3 archive.

Examples:
  # Write one .pbf per tile under ./out, zoom 0-14
  tilekiln tiles --input roads.geojson --min-zoom 0 --max-zoom 14 --layer roads --output ./out

  # Build a single PMTiles archive instead
  tilekiln pmtiles --input roads.geojson --min-zoom 0 --max-zoom 14 --layer roads --output roads.pmtiles

  # Read config and layer name from a file
  tilekiln tiles --config tilekiln.yaml --input roads.geojson --output ./out`,
	Version: "0.1.0",
}

// Execute runs the root command; it is called once from main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.tilekiln.yaml)")
	rootCmd.PersistentFlags().String("input", "", "path to the input GeoJSON FeatureCollection")
	rootCmd.PersistentFlags().String("output", "", "output path (directory for tiles, file for pmtiles)")
	rootCmd.PersistentFlags().String("layer", "layer", "name of the vector tile layer to produce")
	rootCmd.PersistentFlags().Uint8("min-zoom", 0, "minimum zoom level")
	rootCmd.PersistentFlags().Uint8("max-zoom", 14, "maximum zoom level")
	rootCmd.PersistentFlags().Bool("verbose", false, "log per-zoom-level progress to stderr")

	_ = viper.BindPFlag("input", rootCmd.PersistentFlags().Lookup("input"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("layer", rootCmd.PersistentFlags().Lookup("layer"))
	_ = viper.BindPFlag("min_zoom", rootCmd.PersistentFlags().Lookup("min-zoom"))
	_ = viper.BindPFlag("max_zoom", rootCmd.PersistentFlags().Lookup("max-zoom"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tilekiln")
	}

	viper.SetEnvPrefix("TILEKILN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}
