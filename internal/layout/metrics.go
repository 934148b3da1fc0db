package layout

// Advance widths for the printable ASCII range (32-126) of the two Helvetica
// faces, in thousandths of an em, taken from the standard Type 1 font
// metrics. Courier is fixed-pitch at 600 and needs no table.
var helveticaWidths = [95]int{
	278, 278, 355, 556, 556, 889, 667, 191, 333, 333,
	389, 584, 278, 333, 278, 278, 556, 556, 556, 556,
	556, 556, 556, 556, 556, 556, 278, 278, 584, 584,
	584, 556, 1015, 667, 667, 722, 722, 667, 611, 778,
	722, 278, 500, 667, 556, 833, 722, 778, 667, 778,
	722, 667, 611, 722, 667, 944, 667, 667, 611, 278,
	278, 278, 469, 556, 333, 556, 556, 500, 556, 556,
	278, 556, 556, 222, 222, 500, 222, 833, 556, 556,
	556, 556, 333, 500, 278, 556, 500, 722, 500, 500,
	500, 334, 260, 334, 584,
}

var helveticaBoldWidths = [95]int{
	278, 333, 474, 556, 556, 889, 722, 238, 333, 333,
	389, 584, 278, 333, 278, 278, 556, 556, 556, 556,
	556, 556, 556, 556, 556, 556, 333, 333, 584, 584,
	584, 611, 975, 722, 722, 722, 722, 667, 611, 778,
	722, 278, 556, 722, 611, 833, 722, 778, 667, 778,
	722, 667, 611, 722, 667, 944, 667, 667, 611, 333,
	278, 333, 584, 556, 333, 556, 611, 556, 611, 556,
	333, 611, 611, 278, 278, 556, 278, 889, 611, 611,
	611, 611, 389, 556, 333, 611, 556, 778, 556, 556,
	500, 389, 280, 389, 584,
}

const (
	monoAdvance    = 600
	defaultAdvance = 556 // out-of-range runes fall back to a digit-width cell
)

func advance(f Font, r rune) int {
	if f == FontMono {
		return monoAdvance
	}
	if r < 32 || r > 126 {
		return defaultAdvance
	}
	if f == FontBold {
		return helveticaBoldWidths[r-32]
	}
	return helveticaWidths[r-32]
}

// TextWidth computes the rendered width of s in points: the summed advance
// widths scaled by the point size.
func TextWidth(f Font, size float64, s string) float64 {
	total := 0
	for _, r := range s {
		total += advance(f, r)
	}
	return float64(total) / 1000 * size
}
