package kml

import (
	"io"

	"github.com/beevik/etree"
)

// skeleton is the empty document every build starts from.
const skeleton = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2" xmlns:gx="http://www.google.com/kml/ext/2.2" xmlns:kml="http://www.opengis.net/kml/2.2" xmlns:atom="http://www.w3.org/2005/Atom">
<Document>
</Document>
</kml>`

// Parse reads a KML document from r and normalizes it.
func Parse(r io.Reader) (*etree.Document, error) {
	doc := newTree()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, err
	}
	Normalize(doc, false)
	return doc, nil
}

// ParseString reads a KML document from s and normalizes it.
func ParseString(s string) (*etree.Document, error) {
	doc := newTree()
	if err := doc.ReadFromString(s); err != nil {
		return nil, err
	}
	Normalize(doc, false)
	return doc, nil
}

// ParseFile reads the KML document at path and normalizes it.
func ParseFile(path string) (*etree.Document, error) {
	doc := newTree()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, err
	}
	Normalize(doc, false)
	return doc, nil
}

// NewDocument returns a normalized document holding an empty Document
// element, named when name is non-empty.
func NewDocument(name string) *etree.Document {
	doc := newTree()
	if err := doc.ReadFromString(skeleton); err != nil {
		panic("kml: skeleton did not parse: " + err.Error())
	}
	if name != "" {
		Add(DocumentElement(doc), "name").SetText(name)
	}
	Normalize(doc, false)
	return doc
}

// DocumentElement returns the Document element of doc, or nil when doc
// has none.
func DocumentElement(doc *etree.Document) *etree.Element {
	root := doc.Root()
	if root == nil {
		return nil
	}
	if root.Tag == "Document" {
		return root
	}
	return root.SelectElement("Document")
}

// Placemarks returns every Placemark element of doc in document order.
func Placemarks(doc *etree.Document) []*etree.Element {
	var out []*etree.Element
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, child := range el.ChildElements() {
			if child.Tag == "Placemark" {
				out = append(out, child)
				continue
			}
			walk(child)
		}
	}
	walk(&doc.Element)
	return out
}

func newTree() *etree.Document {
	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true
	return doc
}
