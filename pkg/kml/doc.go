// Package kml reads, normalizes, and mutates KML documents as element
// trees.
//
// The package exists because strict KML consumers reject documents that
// looser tools produce happily. The Google Maps JavaScript API KmlLayer
// class, for example, quietly labels a document INVALID_DOCUMENT when
// its tags carry "kml:" namespace prefixes, even though Google Earth
// opens the same file without complaint. Literal text blocks have a
// similar hazard: CDATA survives parsing but the fact that it was CDATA
// is easily lost, so re-serialized documents blindly entity-escape what
// should have stayed a literal block.
//
// # Basic Usage
//
//	doc, err := kml.ParseFile("districts.kml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Parsing normalizes automatically; re-normalize after mutating.
//	kml.Normalize(doc, false)
//
//	if err := doc.WriteToFile("districts.clean.kml"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Building Documents
//
// Add appends an element chain in one call, which keeps geometry
// construction readable:
//
//	doc := kml.NewDocument("cells")
//	pm := kml.Add(kml.DocumentElement(doc), "Placemark")
//	coords := kml.Add(pm, "Polygon", "outerBoundaryIs", "LinearRing", "coordinates")
//	coords.SetText("0,0 1,0 1,1 0,1 0,0")
//
// # Extended Data
//
//	county, err := kml.DataField(pm, "COUNTY")
//
// DataField reads both <Data><value> and <SimpleData> forms.
package kml
