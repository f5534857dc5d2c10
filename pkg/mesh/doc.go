// Package mesh indexes and colors the features of a KML document.
//
// The index maps the cells of a lat-long mesh to the placemarks whose
// geometry touches them, so later point queries only consider nearby
// features. At scale s the 360 degrees of longitude divide into 2^s
// columns and the 180 degrees of latitude into 2^s rows.
//
//	doc, _ := kml.ParseFile("districts.kml")
//	index, err := mesh.BuildIndex(doc, mesh.DefaultScale)
//
// Coloring assigns each polygon placemark one of four fill styles such
// that no two adjacent polygons look alike, then writes the styles
// back into the document:
//
//	coloring, err := mesh.Color(doc, mesh.DefaultColorOptions())
package mesh
