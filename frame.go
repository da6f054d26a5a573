package asciimotion

import (
	"io"
	"strings"
)

// Segment is a run of glyphs drawn in one color. A Color of NoColor means the
// segment does not change the color in effect.
type Segment struct {
	Color  Code
	Glyphs []rune
}

// Line is one row of a TextFrame.
type Line []Segment

// Len returns the number of glyphs on the line.
func (l Line) Len() int {
	var n int
	for _, s := range l {
		n += len(s.Glyphs)
	}
	return n
}

// TextFrame is the character-art rendition of one video frame. Color changes
// are explicit segment boundaries, never escape codes embedded in glyph runs.
type TextFrame struct {
	Lines []Line
	Depth ColorDepth
}

// Width returns the length of the longest line.
func (f *TextFrame) Width() int {
	var w int
	for _, l := range f.Lines {
		if n := l.Len(); n > w {
			w = n
		}
	}
	return w
}

// Height returns the number of lines.
func (f *TextFrame) Height() int {
	return len(f.Lines)
}

// Cell is a single glyph with the color that applies to it.
type Cell struct {
	Row, Col int
	Glyph    rune
	Color    Code
}

// EachCell calls fn for every glyph in row-major order. Color tracking starts
// as NoColor on every line and switches whenever a segment names a code.
func (f *TextFrame) EachCell(fn func(Cell)) {
	for row, line := range f.Lines {
		current := NoColor
		col := 0
		for _, seg := range line {
			if seg.Color != NoColor {
				current = seg.Color
			}
			for _, r := range seg.Glyphs {
				fn(Cell{Row: row, Col: col, Glyph: r, Color: current})
				col++
			}
		}
	}
}

// WriteTo writes the frame as terminal text: escape sequences for color
// changes, a newline after every line and a reset after a colored frame.
func (f *TextFrame) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	f.writeText(&b, true)
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// String returns the frame as terminal text, see WriteTo.
func (f *TextFrame) String() string {
	var b strings.Builder
	f.writeText(&b, true)
	return b.String()
}

// Plain returns the glyphs only, one line per row.
func (f *TextFrame) Plain() string {
	var b strings.Builder
	f.writeText(&b, false)
	return b.String()
}

func (f *TextFrame) writeText(b *strings.Builder, escapes bool) {
	escapes = escapes && f.Depth != ColorNone
	for _, line := range f.Lines {
		for _, seg := range line {
			if escapes {
				b.WriteString(seg.Color.SGR(f.Depth))
			}
			b.WriteString(string(seg.Glyphs))
		}
		b.WriteByte('\n')
	}
	if escapes {
		b.WriteString(sgrReset)
	}
}

// lineBuilder appends glyphs to a line, opening a new segment only when the
// color changes.
type lineBuilder struct {
	line Line
	last Code
}

func newLineBuilder() *lineBuilder {
	return &lineBuilder{last: NoColor}
}

func (lb *lineBuilder) add(r rune, c Code) {
	if len(lb.line) == 0 || c != lb.last {
		lb.line = append(lb.line, Segment{Color: c})
		lb.last = c
	}
	seg := &lb.line[len(lb.line)-1]
	seg.Glyphs = append(seg.Glyphs, r)
}
