package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/beetlebugorg/kmlmesh/internal/logger"
	"github.com/beetlebugorg/kmlmesh/pkg/mesh"
)

// newColorCmd creates the "color" command.
func newColorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color <file.kml|file.kmz>",
		Short: "Four-color a polygon map",
		Long:  "Color assigns each polygon placemark one of four fill styles such that no two adjacent polygons match, and writes the styles into the document.",
		Args:  cobra.ExactArgs(1),
		RunE:  runColor,
	}

	cmd.Flags().Bool("fuzzy", true, "Probe for adjacencies across borders whose vertices do not match exactly")
	cmd.Flags().Float64("probe-factor", 1000, "Divide half the shortest unshared side by this to get the probe offset")

	return cmd
}

func runColor(cmd *cobra.Command, args []string) error {
	doc, err := readDoc(args[0])
	if err != nil {
		return err
	}

	opts := mesh.DefaultColorOptions()
	opts.Scale = viper.GetInt("scale")
	opts.Fuzzy, _ = cmd.Flags().GetBool("fuzzy")
	opts.ProbeFactor, _ = cmd.Flags().GetFloat64("probe-factor")

	coloring, err := mesh.Color(doc, opts)
	if err != nil {
		return err
	}

	used := map[int]int{}
	for _, c := range coloring {
		used[c]++
	}
	logger.L().Info("colored map",
		"placemarks", len(coloring),
		"color1", used[1], "color2", used[2], "color3", used[3], "color4", used[4])

	return writeDoc(doc, viper.GetString("output"))
}
