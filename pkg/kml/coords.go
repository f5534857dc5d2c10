package kml

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Coordinate is one parsed coordinates tuple, longitude first.
type Coordinate []float64

// Coordinates parses the coordinates text inside el. Tuples are
// whitespace-separated, values within a tuple comma-separated. Every
// value of a tuple must parse as a float; only the first dims values
// are kept.
func Coordinates(el *etree.Element, dims int) ([]Coordinate, error) {
	tokens := strings.Fields(el.Text())
	coords := make([]Coordinate, 0, len(tokens))
	for _, token := range tokens {
		parts := strings.Split(token, ",")
		tuple := make(Coordinate, 0, len(parts))
		for _, part := range parts {
			v, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return nil, &ErrInvalidCoordinate{Token: token, Err: err}
			}
			tuple = append(tuple, v)
		}
		if len(tuple) > dims {
			tuple = tuple[:dims]
		}
		coords = append(coords, tuple)
	}
	return coords, nil
}

// RoundCoordinates rewrites every coordinates element in doc with
// values rounded to decimals fractional digits, keeping the first dims
// values of each tuple. Rounding is done on the decimal strings, so no
// binary float noise leaks into the output.
func RoundCoordinates(doc *etree.Document, decimals, dims int) {
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, child := range el.ChildElements() {
			if child.Tag == "coordinates" {
				child.SetText(roundTuples(child.Text(), decimals, dims))
				continue
			}
			walk(child)
		}
	}
	walk(&doc.Element)
}

func roundTuples(text string, decimals, dims int) string {
	tokens := strings.Fields(text)
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		parts := strings.Split(token, ",")
		if len(parts) > dims {
			parts = parts[:dims]
		}
		for i, part := range parts {
			parts[i] = roundDecimal(part, decimals)
		}
		out = append(out, strings.Join(parts, ","))
	}
	return strings.Join(out, " ")
}

// roundDecimal rounds the decimal string s to length fractional
// digits, half to even.
func roundDecimal(s string, length int) string {
	if !strings.Contains(s, ".") {
		return s
	}
	if strings.HasPrefix(s, "-") {
		return "-" + roundDecimal(s[1:], length)
	}
	head, tail, _ := strings.Cut(s, ".")
	if len(tail) <= length {
		return s
	}
	trunk, branch := tail[:length], tail[length:]

	stick, err := strconv.ParseFloat("0."+branch, 64)
	if err != nil {
		return s
	}
	up := stick > 0.5
	if stick == 0.5 {
		// Half to even: round up only when the kept part is odd.
		last := byte('0')
		if length > 0 {
			last = trunk[length-1]
		} else if len(head) > 0 {
			last = head[len(head)-1]
		}
		up = (last-'0')%2 == 1
	}
	if !up {
		if length == 0 {
			return head
		}
		return head + "." + trunk
	}

	n, err := strconv.ParseInt(head+trunk, 10, 64)
	if err != nil {
		return s
	}
	grown := strconv.FormatInt(n+1, 10)
	for len(grown) < length+1 {
		grown = "0" + grown
	}
	if length == 0 {
		return grown
	}
	return grown[:len(grown)-length] + "." + grown[len(grown)-length:]
}
