package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/beetlebugorg/kmlmesh/internal/logger"
	"github.com/beetlebugorg/kmlmesh/pkg/kml"
)

// newFormatCmd creates the "format" command.
func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <file.kml|file.kmz>",
		Short: "Normalize a KML document",
		Long:  "Format strips kml: prefixes, trims text, settles CDATA, and optionally rounds coordinates, drops empty elements, and filters for KmlLayer use.",
		Args:  cobra.ExactArgs(1),
		RunE:  runFormat,
	}

	cmd.Flags().Bool("no-empty", false, "Also remove childless elements (one pass)")
	cmd.Flags().Int("round", -1, "Round coordinates to this many decimals (-1 keeps them)")
	cmd.Flags().Int("dims", 2, "Coordinate values kept per tuple when rounding")
	cmd.Flags().Bool("kmllayer", false, "Remove elements the Maps API KmlLayer class does not support")

	return cmd
}

func runFormat(cmd *cobra.Command, args []string) error {
	doc, err := readDoc(args[0])
	if err != nil {
		return err
	}

	noEmpty, _ := cmd.Flags().GetBool("no-empty")
	if noEmpty {
		kml.Normalize(doc, true)
	}

	round, _ := cmd.Flags().GetInt("round")
	if round >= 0 {
		dims, _ := cmd.Flags().GetInt("dims")
		kml.RoundCoordinates(doc, round, dims)
		logger.L().Debug("rounded coordinates", "decimals", round, "dims", dims)
	}

	kmlLayer, _ := cmd.Flags().GetBool("kmllayer")
	if kmlLayer {
		kml.FilterKmlLayer(doc, nil)
	}

	return writeDoc(doc, viper.GetString("output"))
}
