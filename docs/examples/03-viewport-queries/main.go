package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/kmlmesh/pkg/kml"
	"github.com/beetlebugorg/kmlmesh/pkg/mesh"
)

func main() {
	doc, err := kml.ParseFile("districts.kml")
	if err != nil {
		log.Fatal(err)
	}

	// R-tree over the placemark bounding boxes for rectangle lookups.
	index, err := mesh.NewPlacemarkIndex(doc)
	if err != nil {
		log.Fatal(err)
	}

	// Downtown Atlanta viewport.
	visible := index.InBounds(-84.44, 33.72, -84.35, 33.79)

	pms := kml.Placemarks(doc)
	fmt.Printf("Placemarks in viewport: %d\n", len(visible))
	for _, i := range visible {
		if name := pms[i].SelectElement("name"); name != nil {
			fmt.Printf("  %s\n", name.Text())
		}
	}
}
