// Command kmlmesh normalizes KML documents, builds spatial indexes
// over their features, and four-colors polygon maps.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/beetlebugorg/kmlmesh/internal/logger"
)

const version = "0.1.0"

func main() {
	logger.Setup()

	rootCmd := &cobra.Command{
		Use:   "kmlmesh",
		Short: "KML normalization, spatial indexing, and map coloring",
		Long:  "kmlmesh cleans up KML documents, indexes their features on a lat-long mesh, and colors polygon maps with four colors so no neighbors match.",
	}

	// Global flags.
	rootCmd.PersistentFlags().Int("scale", 16, "Mesh scale: the world splits into 2^scale columns and rows")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file (.kml or .kmz); stdout when omitted")

	// Bind flags to viper.
	viper.BindPFlag("scale", rootCmd.PersistentFlags().Lookup("scale"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))

	// Env vars: KMLMESH_SCALE, KMLMESH_OUTPUT, etc.
	viper.SetEnvPrefix("KMLMESH")
	viper.AutomaticEnv()

	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(newColorCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newCompressCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print kmlmesh version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("kmlmesh %s\n", version)
		},
	}
}
