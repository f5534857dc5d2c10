package mesh

import "github.com/twpayne/go-kml/icon"

// Palette maps colors 1..4 to KML aabbggrr fill codes and to the icon
// hrefs shown for point features sharing the style.
type Palette struct {
	Colors map[int]string
	Icons  map[int]string
}

// lineColor outlines every colored polygon in translucent gray, which
// reads well over both light and dark fills.
const lineColor = "7fcccccc"

// DefaultPalette returns translucent greens and oranges paired with
// the Google paddle icons.
func DefaultPalette() Palette {
	return Palette{
		Colors: map[int]string{
			1: "7fa8d7b6",
			2: "7f065fb4",
			3: "7f4fa86a",
			4: "7f6bb2f6",
		},
		Icons: map[int]string{
			1: icon.PaddleHref("blu-circle"),
			2: icon.PaddleHref("ylw-circle"),
			3: icon.PaddleHref("grn-circle"),
			4: icon.PaddleHref("purple-circle"),
		},
	}
}
