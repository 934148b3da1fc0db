package layout

import (
	"strings"

	"github.com/mtreece/prepguide/internal/guide"
)

// Font names the three base-14 faces the renderer supports.
type Font string

const (
	FontNormal Font = "Helvetica"
	FontBold   Font = "Helvetica-Bold"
	FontMono   Font = "Courier"
)

// Style is the resolved appearance of one drawn line: face, point size, the
// vertical advance applied after the line, and the left indent added to the
// page margin.
type Style struct {
	Font       Font
	Size       float64
	LineHeight float64
	Indent     float64
}

// Config is the page geometry threaded through the flow engine and the
// title-page layout. All values are in points.
type Config struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
}

// DefaultConfig is A4 portrait with a 50pt margin on every side.
func DefaultConfig() Config {
	return Config{PageWidth: 595.28, PageHeight: 841.89, Margin: 50}
}

// The resolution table is fixed. Sizes and line heights mirror the printed
// guide's visual hierarchy and are not configurable at runtime.
var (
	titleStyle       = Style{Font: FontBold, Size: 18, LineHeight: 22}
	headingStyle     = Style{Font: FontBold, Size: 14, LineHeight: 18}
	subheadingStyle  = Style{Font: FontBold, Size: 12, LineHeight: 14}
	bulletStyle      = Style{Font: FontNormal, Size: 10, LineHeight: 14, Indent: 20}
	plainStyle       = Style{Font: FontNormal, Size: 10, LineHeight: 14}
	blankStyle       = Style{Font: FontNormal, Size: 10, LineHeight: 7}
	questionStyle    = Style{Font: FontBold, Size: 10, LineHeight: 21}
	answerStyle      = Style{Font: FontNormal, Size: 10, LineHeight: 14, Indent: 10}
	codeStyle        = Style{Font: FontMono, Size: 8, LineHeight: 10, Indent: 20}
	subcategoryStyle = Style{Font: FontBold, Size: 12, LineHeight: 14}
	sectionStyle     = Style{Font: FontBold, Size: 18, LineHeight: 22}
)

// Resolve maps a narrative block to its style and the text to draw. Heading
// and bullet markers are already stripped by the block model; bullets get
// their glyph substituted here. A blank paragraph resolves to an empty text
// with a half line height, which the flow advances past without drawing.
func Resolve(b guide.Block) (Style, string) {
	switch blk := b.(type) {
	case guide.Heading:
		switch blk.Level {
		case 1:
			return titleStyle, blk.Text
		case 2:
			return headingStyle, blk.Text
		default:
			return subheadingStyle, blk.Text
		}
	case guide.Bullet:
		return bulletStyle, "• " + blk.Text
	case guide.Paragraph:
		if strings.TrimSpace(blk.Text) == "" {
			return blankStyle, ""
		}
		return plainStyle, blk.Text
	}
	return plainStyle, ""
}
