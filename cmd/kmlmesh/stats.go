package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/beetlebugorg/kmlmesh/pkg/mesh"
)

// newStatsCmd creates the "stats" command.
func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file.kml|file.kmz>",
		Short: "Index a document and report cell occupancy statistics",
		Long:  "Stats builds the spatial index at the configured scale and prints how many placemarks its cells hold, for judging whether the scale spreads features thinly enough.",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}

	cmd.Flags().Bool("counts", false, "Include the full per-cell count list")

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	doc, err := readDoc(args[0])
	if err != nil {
		return err
	}

	index, err := mesh.BuildIndex(doc, viper.GetInt("scale"))
	if err != nil {
		return err
	}

	stats := index.Stats()
	if counts, _ := cmd.Flags().GetBool("counts"); !counts {
		stats.Counts = nil
	}

	out, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
