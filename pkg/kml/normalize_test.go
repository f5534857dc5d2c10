package kml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const messyDoc = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2" xmlns:kml="http://www.opengis.net/kml/2.2">
  <Document>
    <kml:Placemark>
      <name>  Fulton County  </name>
      <description>&lt;b&gt;Hello &amp; welcome&lt;/b&gt;</description>
      <styleUrl>#color1</styleUrl>
    </kml:Placemark>
  </Document>
</kml>`

func TestNormalizeStripsReservedPrefix(t *testing.T) {
	doc, err := ParseString(messyDoc)
	require.NoError(t, err)

	out, err := doc.WriteToString()
	require.NoError(t, err)
	assert.NotContains(t, out, "<kml:Placemark")
	assert.Contains(t, out, "<Placemark")
}

func TestNormalizeTrimsText(t *testing.T) {
	doc, err := ParseString(messyDoc)
	require.NoError(t, err)

	pms := Placemarks(doc)
	require.Len(t, pms, 1)
	assert.Equal(t, "Fulton County", pms[0].SelectElement("name").Text())
}

func TestNormalizeRemovesInterstitialWhitespace(t *testing.T) {
	doc, err := ParseString(messyDoc)
	require.NoError(t, err)

	document := DocumentElement(doc)
	require.NotNil(t, document)
	// Only element children remain once the indentation text is gone.
	assert.Len(t, document.Child, len(document.ChildElements()))
}

func TestNormalizeChoosesShorterTextForm(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantCData bool
	}{
		// Escaping "a<b" costs 6 characters, CDATA wrapping costs 15.
		{"short markup stays escaped", "a<b", false},
		{"heavy markup becomes CDATA", "<b>Hello & welcome</b>", true},
		// 4 angle brackets escape to exactly the CDATA overhead.
		{"tie goes to CDATA", "<<<<", true},
		{"plain text stays plain", "Fulton County", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument("")
			Add(DocumentElement(doc), "description").SetText(tt.text)
			Normalize(doc, false)

			out, err := doc.WriteToString()
			require.NoError(t, err)
			if tt.wantCData {
				assert.Contains(t, out, "<![CDATA["+tt.text+"]]>")
			} else {
				assert.NotContains(t, out, "<![CDATA[")
			}

			// The text reads back identically either way.
			reparsed, err := ParseString(out)
			require.NoError(t, err)
			desc := DocumentElement(reparsed).SelectElement("description")
			require.NotNil(t, desc)
			assert.Equal(t, tt.text, desc.Text())
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	doc, err := ParseString(messyDoc)
	require.NoError(t, err)

	first, err := doc.WriteToString()
	require.NoError(t, err)
	Normalize(doc, false)
	second, err := doc.WriteToString()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNormalizeNoEmptySinglePass(t *testing.T) {
	doc, err := ParseString(`<kml><Document><Folder><Placemark></Placemark></Folder><name>x</name></Document></kml>`)
	require.NoError(t, err)

	Normalize(doc, true)

	document := DocumentElement(doc)
	require.NotNil(t, document)
	// The empty Placemark goes. The Folder it emptied survives this
	// pass and would only go on the next one.
	folder := document.SelectElement("Folder")
	require.NotNil(t, folder)
	assert.Nil(t, folder.SelectElement("Placemark"))

	Normalize(doc, true)
	assert.Nil(t, DocumentElement(doc).SelectElement("Folder"))
}
