package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/kmlmesh/pkg/kml"
	"github.com/beetlebugorg/kmlmesh/pkg/mesh"
)

func main() {
	// Parse a KML file; parsing normalizes the document.
	doc, err := kml.ParseFile("districts.kml")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Placemarks: %d\n", len(kml.Placemarks(doc)))

	// Index the features on the mesh.
	index, err := mesh.BuildIndex(doc, mesh.DefaultScale)
	if err != nil {
		log.Fatal(err)
	}

	stats := index.Stats()
	fmt.Printf("Cells: %d\n", stats.Cells)
	fmt.Printf("Placemarks per cell: mean %.2f, max %d\n", stats.Mean, stats.Max)
}
