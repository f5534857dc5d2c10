package main

import (
	"os"
	"strings"

	"github.com/beevik/etree"

	"github.com/beetlebugorg/kmlmesh/pkg/kml"
)

// readDoc opens a KML or KMZ file by extension.
func readDoc(path string) (*etree.Document, error) {
	if strings.HasSuffix(strings.ToLower(path), ".kmz") {
		return kml.OpenKMZ(path)
	}
	return kml.ParseFile(path)
}

// writeDoc writes doc to the path from the --output flag, as KMZ when
// the path ends in .kmz, or to stdout when no output was given.
func writeDoc(doc *etree.Document, path string) error {
	if path == "" {
		_, err := doc.WriteTo(os.Stdout)
		return err
	}
	if strings.HasSuffix(strings.ToLower(path), ".kmz") {
		return kml.SaveKMZ(doc, path)
	}
	return doc.WriteToFile(path)
}
