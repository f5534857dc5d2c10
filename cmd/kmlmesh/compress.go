package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beetlebugorg/kmlmesh/pkg/kml"
)

// newCompressCmd creates the "compress" command.
func newCompressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compress <file.kml>",
		Short: "Pack a KML file into a KMZ archive",
		Long:  "Compress copies the file verbatim into a sibling .kmz archive under the doc.kml entry.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := kml.Compress(args[0])
			if err != nil {
				return err
			}
			fmt.Println(target)
			return nil
		},
	}
}
