package asciimotion_test

import (
	"bytes"

	. "github.com/kevin-cantwell/asciimotion"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("TextFrame", func() {
	var frame *TextFrame

	BeforeEach(func() {
		frame = &TextFrame{
			Depth: Color16,
			Lines: []Line{
				{{Color: Red, Glyphs: []rune("ab")}, {Color: NoColor, Glyphs: []rune("c")}},
				{{Color: NoColor, Glyphs: []rune("d")}, {Color: Blue, Glyphs: []rune("e")}},
			},
		}
	})

	It("measures lines", func() {
		Expect(frame.Width()).To(Equal(3))
		Expect(frame.Height()).To(Equal(2))
	})

	It("carries colors until the end of the line", func() {
		var cells []Cell
		frame.EachCell(func(c Cell) { cells = append(cells, c) })
		Expect(cells).To(Equal([]Cell{
			{Row: 0, Col: 0, Glyph: 'a', Color: Red},
			{Row: 0, Col: 1, Glyph: 'b', Color: Red},
			{Row: 0, Col: 2, Glyph: 'c', Color: Red},
			{Row: 1, Col: 0, Glyph: 'd', Color: NoColor},
			{Row: 1, Col: 1, Glyph: 'e', Color: Blue},
		}))
	})

	It("writes escape sequences and a trailing reset", func() {
		Expect(frame.String()).To(Equal("\033[91mabc\nd\033[94me\n\033[0m"))

		var buf bytes.Buffer
		n, err := frame.WriteTo(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeEquivalentTo(buf.Len()))
		Expect(buf.String()).To(Equal(frame.String()))
	})

	It("writes only glyphs when plain", func() {
		Expect(frame.Plain()).To(Equal("abc\nde\n"))
	})

	It("writes no escapes for monochrome frames", func() {
		frame.Depth = ColorNone
		Expect(frame.String()).To(Equal("abc\nde\n"))
	})
})
