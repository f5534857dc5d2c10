package kml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddChainsElements(t *testing.T) {
	doc := NewDocument("test")
	pm := Add(DocumentElement(doc), "Placemark")
	coords := Add(pm, "Polygon", "outerBoundaryIs", "LinearRing", "coordinates")
	coords.SetText("0,0 1,0 1,1 0,0")

	ring := pm.FindElement("Polygon/outerBoundaryIs/LinearRing/coordinates")
	require.NotNil(t, ring)
	assert.Equal(t, "0,0 1,0 1,1 0,0", ring.Text())
}

func TestDataField(t *testing.T) {
	doc, err := ParseString(`<kml><Document><Placemark>
		<ExtendedData>
			<Data name="COUNTY"><value> Fulton </value></Data>
			<SchemaData schemaUrl="#s"><SimpleData name="DISTRICT">5</SimpleData></SchemaData>
		</ExtendedData>
	</Placemark></Document></kml>`)
	require.NoError(t, err)
	pm := Placemarks(doc)[0]

	county, err := DataField(pm, "COUNTY")
	require.NoError(t, err)
	assert.Equal(t, "Fulton", county)

	district, err := DataField(pm, "DISTRICT")
	require.NoError(t, err)
	assert.Equal(t, "5", district)

	_, err = DataField(pm, "STATE")
	var notFound *ErrDataNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "STATE", notFound.Name)
}

func TestDataFields(t *testing.T) {
	doc, err := ParseString(`<kml><Document><Placemark><ExtendedData>
		<Data name="A"><value>1</value></Data>
		<Data name="B"><value>2</value></Data>
	</ExtendedData></Placemark></Document></kml>`)
	require.NoError(t, err)
	pm := Placemarks(doc)[0]

	values, err := DataFields(pm, "B", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, values)
}

func TestPlacemarksDocumentOrder(t *testing.T) {
	doc, err := ParseString(`<kml><Document>
		<Placemark><name>first</name></Placemark>
		<Folder><Placemark><name>second</name></Placemark></Folder>
		<Placemark><name>third</name></Placemark>
	</Document></kml>`)
	require.NoError(t, err)

	var names []string
	for _, pm := range Placemarks(doc) {
		names = append(names, pm.SelectElement("name").Text())
	}
	assert.Equal(t, []string{"first", "second", "third"}, names)
}
