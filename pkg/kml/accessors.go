package kml

import (
	"strings"

	"github.com/beevik/etree"
)

// Add appends a chain of nested elements under parent and returns the
// innermost one. Add(pm, "Point", "coordinates") grows
// <Point><coordinates/></Point> under pm and returns the coordinates
// element.
func Add(parent *etree.Element, names ...string) *etree.Element {
	el := parent
	for _, name := range names {
		el = el.CreateElement(name)
	}
	return el
}

// DataField returns the trimmed value of the first Data or SimpleData
// descendant of pm whose name attribute matches name. Data elements
// hold their value in a nested value element, SimpleData elements hold
// it directly.
func DataField(pm *etree.Element, name string) (string, error) {
	var found string
	var ok bool
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, child := range el.ChildElements() {
			if ok {
				return
			}
			if child.SelectAttrValue("name", "") == name {
				switch child.Tag {
				case "Data":
					if value := child.SelectElement("value"); value != nil {
						found, ok = strings.TrimSpace(value.Text()), true
						return
					}
				case "SimpleData":
					found, ok = strings.TrimSpace(child.Text()), true
					return
				}
			}
			walk(child)
		}
	}
	walk(pm)
	if !ok {
		return "", &ErrDataNotFound{Name: name}
	}
	return found, nil
}

// DataFields looks up several data fields at once, in the given order.
func DataFields(pm *etree.Element, names ...string) ([]string, error) {
	values := make([]string, 0, len(names))
	for _, name := range names {
		value, err := DataField(pm, name)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}
