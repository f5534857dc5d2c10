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

	// Four-color the polygon map so no two adjacent districts match.
	coloring, err := mesh.Color(doc, mesh.DefaultColorOptions())
	if err != nil {
		log.Fatal(err)
	}

	used := map[int]int{}
	for _, c := range coloring {
		used[c]++
	}
	for c := 1; c <= 4; c++ {
		fmt.Printf("color%d: %d placemarks\n", c, used[c])
	}

	// The styles are already in the document; write it back out.
	if err := doc.WriteToFile("districts.colored.kml"); err != nil {
		log.Fatal(err)
	}
}
