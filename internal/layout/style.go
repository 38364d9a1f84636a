package layout

import "runtime"

// Alignment keys accepted by Font.SetHAlign / Font.SetVAlign.
const (
	AlignLeft   = "LEFT"
	AlignCenter = "CENTER"
	AlignRight  = "RIGHT"
	AlignTop    = "TOP"
	AlignMiddle = "MIDDLE"
	AlignBottom = "BOTTOM"
)

const (
	// Source clip resolution every camera defaults to.
	DefaultClipWidth  = 1280
	DefaultClipHeight = 960

	// Minimum overlay font size.
	minFontSize = 16
)

// Style is the immutable configuration a layout is constructed with:
// overlay font defaults, the ffmpeg expression tables used to resolve text
// alignment, and the filter fragments applied to side cameras when
// perspective is enabled.
type Style struct {
	FontFile         string
	FontHAlign       string
	FontVAlign       string
	HAlign           map[string]string
	VAlign           map[string]string
	LeftPerspective  string
	RightPerspective string
	BackgroundColor  string
}

// Default font file per operating system.
var defaultFonts = map[string]string{
	"darwin":  "/Library/Fonts/Arial Unicode.ttf",
	"windows": "/Windows/Fonts/arial.ttf",
	"linux":   "/usr/share/fonts/truetype/freefont/FreeSans.ttf",
	"freebsd": "/usr/share/local/fonts/freefont-ttf/FreeSans.ttf",
}

// Perspective warp filter fragments for the side cameras.
const (
	leftPerspective = ", pad=iw+4:3/2*ih:-1:ih/8:0x00000000, " +
		"perspective=x0=0:y0=1*H/5:x1=W:y1=-3/44*H:" +
		"x2=0:y2=6*H/5:x3=7/8*W:y3=5*H/6:sense=destination"

	rightPerspective = ", pad=iw+4:3/2*ih:-1:ih/8:0x00000000," +
		"perspective=x0=0:y1=1*H/5:x1=W:y0=-3/44*H:" +
		"x2=1/8*W:y3=6*H/5:x3=W:y2=5*H/6:sense=destination"
)

// DefaultStyle returns the style a layout uses unless the caller injects
// its own tables.
func DefaultStyle() Style {
	return Style{
		FontFile:   defaultFonts[runtime.GOOS],
		FontHAlign: AlignCenter,
		FontVAlign: AlignBottom,
		HAlign: map[string]string{
			AlignLeft:   "10",
			AlignCenter: "(w/2-text_w/2)",
			AlignRight:  "(w-text_w)",
		},
		VAlign: map[string]string{
			AlignTop:    "10",
			AlignMiddle: "(h/2-(text_h/2))",
			AlignBottom: "(h-(text_h)-10)",
		},
		LeftPerspective:  leftPerspective,
		RightPerspective: rightPerspective,
		BackgroundColor:  "black",
	}
}
