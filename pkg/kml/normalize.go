package kml

import (
	"strings"

	"github.com/beevik/etree"
)

// reservedPrefix is stripped from every tag during normalization. The
// Maps JavaScript API KmlLayer rejects documents whose tags carry it.
const reservedPrefix = "kml"

// Normalize rewrites doc into its canonical form:
//
//   - "kml:" namespace prefixes drop from every tag
//   - whitespace-only text between elements is removed
//   - text content is trimmed of surrounding whitespace
//   - text holding markup characters is stored as CDATA or
//     entity-escaped, whichever serializes shorter (ties go to CDATA)
//
// With noEmpty set, a final pass removes childless elements. The pass
// runs once; elements emptied by the pass itself survive.
//
// Normalization is idempotent: a second call leaves doc unchanged.
func Normalize(doc *etree.Document, noEmpty bool) {
	type removal struct {
		parent *etree.Element
		text   *etree.CharData
	}
	type rewrite struct {
		text    *etree.CharData
		trimmed string
	}
	var removals []removal
	var rewrites []rewrite

	// Plan first, apply after. Dropping tokens while walking them makes
	// for subtle skips.
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		if el.Space == reservedPrefix {
			el.Space = ""
		}
		if text := soleText(el); text != nil {
			retext(el, text)
		}
		for _, child := range el.Child {
			switch t := child.(type) {
			case *etree.CharData:
				trimmed := strings.TrimSpace(t.Data)
				switch {
				case trimmed == "":
					removals = append(removals, removal{parent: el, text: t})
				case trimmed != t.Data:
					rewrites = append(rewrites, rewrite{text: t, trimmed: trimmed})
				}
			case *etree.Element:
				walk(t)
			}
		}
	}
	walk(&doc.Element)

	for _, r := range removals {
		r.parent.RemoveChild(r.text)
	}
	for _, r := range rewrites {
		r.text.Data = r.trimmed
	}

	if noEmpty {
		removeEmpty(&doc.Element)
	}
}

// soleText returns el's only child if that child is a text node.
func soleText(el *etree.Element) *etree.CharData {
	if len(el.Child) != 1 {
		return nil
	}
	text, ok := el.Child[0].(*etree.CharData)
	if !ok {
		return nil
	}
	return text
}

// retext trims el's sole text child and settles its representation.
// Text free of markup characters stays a plain node. Text holding any
// of < > & becomes CDATA when that is no longer than escaping.
func retext(el *etree.Element, text *etree.CharData) {
	trimmed := strings.TrimSpace(text.Data)
	wantCData := strings.ContainsAny(trimmed, "<>&") &&
		len(trimmed)+len("<![CDATA[]]>") <= escapedLen(trimmed)
	if wantCData == text.IsCData() {
		text.Data = trimmed
		return
	}
	el.RemoveChildAt(0)
	if wantCData {
		el.AddChild(etree.NewCData(trimmed))
	} else {
		el.AddChild(etree.NewText(trimmed))
	}
}

// escapedLen returns the serialized length of s with the markup
// characters entity-escaped.
func escapedLen(s string) int {
	n := len(s)
	n += 3 * strings.Count(s, "<") // &lt;
	n += 3 * strings.Count(s, ">") // &gt;
	n += 4 * strings.Count(s, "&") // &amp;
	return n
}

// removeEmpty removes every element with no children. Single pass over
// a snapshot, so elements emptied by the removals themselves stay.
func removeEmpty(root *etree.Element) {
	var empties []*etree.Element
	var collect func(el *etree.Element)
	collect = func(el *etree.Element) {
		for _, child := range el.Child {
			if t, ok := child.(*etree.Element); ok {
				if len(t.Child) == 0 {
					empties = append(empties, t)
				} else {
					collect(t)
				}
			}
		}
	}
	collect(root)
	for _, el := range empties {
		if parent := el.Parent(); parent != nil {
			parent.RemoveChild(el)
		}
	}
}
