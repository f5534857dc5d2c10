package kml

import "github.com/beevik/etree"

// StdExceptions are the tags whose keep/remove status FilterKmlLayer
// inverts by default. styleUrl is listed N/A in the support table yet
// works inside Placemark, so it is kept; visibility and open are
// supported but only waste space in a KmlLayer.
var StdExceptions = []string{"styleUrl", "visibility", "open"}

// FilterKmlLayer removes the elements of doc that the KmlLayer class
// of the Google Maps JavaScript API does not support, along with their
// subtrees. An element is removed when its tag is missing from the
// support table or maps to "no" or "N/A" there; tags named in
// exceptions get the opposite treatment. A nil exceptions slice means
// StdExceptions.
func FilterKmlLayer(doc *etree.Document, exceptions []string) {
	if exceptions == nil {
		exceptions = StdExceptions
	}
	inverted := make(map[string]bool, len(exceptions))
	for _, name := range exceptions {
		inverted[name] = true
	}

	var all []*etree.Element
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, child := range el.ChildElements() {
			all = append(all, child)
			walk(child)
		}
	}
	walk(&doc.Element)

	for _, el := range all {
		name := el.Tag
		if el.Space != "" {
			name = el.Space + ":" + el.Tag
		}
		support, known := kmlLayerTagSupport[name]
		remove := !known || support == "no" || support == "N/A"
		if inverted[name] {
			remove = !remove
		}
		if remove {
			if parent := el.Parent(); parent != nil {
				parent.RemoveChild(el)
			}
		}
	}
}

// kmlLayerTagSupport records, per KML tag, whether the Maps JavaScript
// API KmlLayer class renders it. Values follow the published table at
// https://developers.google.com/maps/documentation/javascript/kmllayer
var kmlLayerTagSupport = map[string]string{
	"address":            "no",
	"AddressDetails":     "no",
	"Alias":              "N/A",
	"altitude":           "no",
	"altitudeMode":       "no",
	"atom:author":        "yes",
	"atom:link":          "yes",
	"atom:name":          "yes",
	"BalloonStyle":       "partially",
	"begin":              "N/A",
	"bgColor":            "no",
	"bottomFov":          "N/A",
	"Camera":             "no",
	"Change":             "partially",
	"color":              "partially",
	"colorMode":          "no",
	"cookie":             "no",
	"coordinates":        "yes",
	"Create":             "no",
	"Data":               "yes",
	"Delete":             "no",
	"description":        "yes",
	"displayMode":        "no",
	"displayName":        "no",
	"Document":           "partially",
	"drawOrder":          "no",
	"east":               "yes",
	"end":                "N/A",
	"expires":            "yes",
	"ExtendedData":       "partially",
	"extrude":            "no",
	"fill":               "yes",
	"flyToView":          "no",
	"Folder":             "yes",
	"geomColor":          "no",
	"GeometryCollection": "no",
	"geomScale":          "no",
	"gridOrigin":         "N/A",
	"GroundOverlay":      "yes",
	"h":                  "yes",
	"heading":            "yes",
	"hotSpot":            "yes",
	"href":               "yes",
	"httpQuery":          "no",
	"Icon":               "yes",
	"IconStyle":          "yes",
	"ImagePyramid":       "N/A",
	"innerBoundaryIs":    "yes",
	"ItemIcon":           "N/A",
	"key":                "N/A",
	"kml":                "yes",
	"labelColor":         "no",
	"LabelStyle":         "no",
	"latitude":           "yes",
	"LatLonAltBox":       "yes",
	"LatLonBox":          "yes",
	"leftFov":            "N/A",
	"LinearRing":         "yes",
	"LineString":         "yes",
	"LineStyle":          "yes",
	"Link":               "yes",
	"linkDescription":    "no",
	"linkName":           "no",
	"linkSnippet":        "no",
	"listItemType":       "N/A",
	"ListStyle":          "no",
	"Location":           "N/A",
	"Lod":                "yes",
	"longitude":          "yes",
	"LookAt":             "no",
	"maxAltitude":        "yes",
	"maxFadeExtent":      "yes",
	"maxHeight":          "N/A",
	"maxLodPixels":       "yes",
	"maxSessionLength":   "no",
	"maxWidth":           "N/A",
	"message":            "no",
	"Metadata":           "no",
	"minAltitude":        "yes",
	"minFadeExtent":      "yes",
	"minLodPixels":       "yes",
	"minRefreshPeriod":   "no",
	"Model":              "no",
	"MultiGeometry":      "partially",
	"name":               "yes",
	"near":               "N/A",
	"NetworkLink":        "yes",
	"NetworkLinkControl": "partially",
	"north":              "yes",
	"open":               "yes",
	"Orientation":        "N/A",
	"outerBoundaryIs":    "yes",
	"outline":            "yes",
	"overlayXY":          "no",
	"Pair":               "N/A",
	"phoneNumber":        "no",
	"PhotoOverlay":       "no",
	"Placemark":          "yes",
	"Point":              "yes",
	"Polygon":            "yes",
	"PolyStyle":          "yes",
	"range":              "yes",
	"refreshInterval":    "partially",
	"refreshMode":        "yes",
	"refreshVisibility":  "no",
	"Region":             "yes",
	"ResourceMap":        "N/A",
	"rightFov":           "N/A",
	"roll":               "N/A",
	"rotation":           "no",
	"rotationXY":         "no",
	"Scale":              "N/A",
	"scale":              "no",
	"Schema":             "no",
	"SchemaData":         "no",
	"ScreenOverlay":      "yes",
	"screenXY":           "no",
	"shape":              "N/A",
	"SimpleData":         "N/A",
	"SimpleField":        "N/A",
	"size":               "yes",
	"Snippet":            "yes",
	"south":              "yes",
	"state":              "N/A",
	"Style":              "yes",
	"StyleMap":           "no",
	"styleUrl":           "N/A",
	"targetHref":         "partially",
	"tessellate":         "no",
	"text":               "yes",
	"textColor":          "no",
	"tileSize":           "N/A",
	"tilt":               "no",
	"TimeSpan":           "no",
	"TimeStamp":          "no",
	"topFov":             "N/A",
	"Update":             "partially",
	"Url":                "yes",
	"value":              "yes",
	"viewBoundScale":     "no",
	"viewFormat":         "no",
	"viewRefreshMode":    "partially",
	"viewRefreshTime":    "yes",
	"ViewVolume":         "N/A",
	"visibility":         "partially",
	"w":                  "yes",
	"west":               "yes",
	"when":               "N/A",
	"width":              "yes",
	"x":                  "yes",
	"y":                  "yes",
}
