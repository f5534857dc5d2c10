package main

import (
	"errors"
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

	_, err = mesh.BuildIndex(doc, mesh.DefaultScale)

	var noGeom *mesh.ErrNoGeometry
	var badCoord *kml.ErrInvalidCoordinate
	switch {
	case err == nil:
		fmt.Println("indexed cleanly")
	case errors.As(err, &noGeom):
		// Report which placemark is missing geometry.
		pm := kml.Placemarks(doc)[noGeom.Placemark]
		name := "(unnamed)"
		if el := pm.SelectElement("name"); el != nil {
			name = el.Text()
		}
		fmt.Printf("placemark %d (%s) has nothing to index\n", noGeom.Placemark, name)
	case errors.As(err, &badCoord):
		fmt.Printf("unparseable coordinates: %q\n", badCoord.Token)
	default:
		log.Fatal(err)
	}
}
