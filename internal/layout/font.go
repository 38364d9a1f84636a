package layout

// Font is the overlay text style owned by a layout. Size and alignment
// resolve through the layout's override hooks before falling back to their
// defaults.
type Font struct {
	layout *Layout
	file   string
	size   *int
	color  string
	halign string
	valign string
	xpos   *int
	ypos   *int
}

func newFont(layout *Layout, style Style) *Font {
	return &Font{
		layout: layout,
		file:   style.FontFile,
		halign: style.FontHAlign,
		valign: style.FontVAlign,
	}
}

// File is the font file used for the overlay text.
func (f *Font) File() string {
	return f.file
}

// SetFile replaces the font file.
func (f *Font) SetFile(value string) {
	f.file = value
}

// Size resolves the font size: a layout override wins, then an explicitly
// set size, then 16 scaled with the layout zoom (never below 16).
func (f *Font) Size() int {
	if f.layout.fontSizeOverride != nil {
		return f.layout.fontSizeOverride()
	}
	if f.size != nil {
		return *f.size
	}
	return int(max(float64(minFontSize), minFontSize*f.layout.Scale()))
}

// SetSize pins the font size.
func (f *Font) SetSize(value int) {
	f.size = &value
}

// Color is the overlay text color.
func (f *Font) Color() string {
	return f.color
}

// SetColor sets the overlay text color.
func (f *Font) SetColor(value string) {
	f.color = value
}

// HAlign resolves the horizontal alignment to its ffmpeg expression. A
// layout override wins; an unknown key falls back to the style default.
func (f *Font) HAlign() string {
	if f.layout.fontHAlignOverride != nil {
		return f.layout.fontHAlignOverride()
	}
	if expr, ok := f.layout.style.HAlign[f.halign]; ok {
		return expr
	}
	return f.layout.style.HAlign[f.layout.style.FontHAlign]
}

// SetHAlign sets the horizontal alignment key (LEFT, CENTER, RIGHT).
func (f *Font) SetHAlign(value string) {
	f.halign = value
}

// VAlign resolves the vertical alignment to its ffmpeg expression.
func (f *Font) VAlign() string {
	if f.layout.fontVAlignOverride != nil {
		return f.layout.fontVAlignOverride()
	}
	if expr, ok := f.layout.style.VAlign[f.valign]; ok {
		return expr
	}
	return f.layout.style.VAlign[f.layout.style.FontVAlign]
}

// SetVAlign sets the vertical alignment key (TOP, MIDDLE, BOTTOM).
func (f *Font) SetVAlign(value string) {
	f.valign = value
}

// XPos is the pinned horizontal text position, if any.
func (f *Font) XPos() (int, bool) {
	if f.xpos == nil {
		return 0, false
	}
	return *f.xpos, true
}

// SetXPos pins the horizontal text position.
func (f *Font) SetXPos(value int) {
	f.xpos = &value
}

// ClearXPos removes the pinned horizontal position.
func (f *Font) ClearXPos() {
	f.xpos = nil
}

// YPos is the pinned vertical text position, if any.
func (f *Font) YPos() (int, bool) {
	if f.ypos == nil {
		return 0, false
	}
	return *f.ypos, true
}

// SetYPos pins the vertical text position.
func (f *Font) SetYPos(value int) {
	f.ypos = &value
}

// ClearYPos removes the pinned vertical position.
func (f *Font) ClearYPos() {
	f.ypos = nil
}
