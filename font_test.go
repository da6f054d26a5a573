package asciimotion_test

import (
	"image/color"

	. "github.com/kevin-cantwell/asciimotion"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Fonts", func() {
	It("reports when no font can be loaded", func() {
		saved := FontPaths
		FontPaths = nil
		defer func() { FontPaths = saved }()

		_, err := LoadFont(10, "/nonexistent/mono.ttf")
		Expect(err).To(MatchError(ErrNoFont))
	})

	It("draws glyphs instead of blocks", func() {
		font, err := LoadFont(12)
		if err != nil {
			Skip("no monospace font installed")
		}
		bg := Backgrounds["black"]
		comp := NewCompositor(MustAlphabet("@%#*+=-:. "), WithCellSize(8, 14), WithBackground(bg), WithFont(font))
		img, err := comp.Composite(&TextFrame{Depth: Color256, Lines: []Line{
			{{Color: Code(196), Glyphs: []rune("@ @")}},
		}})
		Expect(err).NotTo(HaveOccurred())

		seen := colorsIn(img, img.Bounds())
		Expect(seen).To(HaveKey(bg))
		Expect(len(seen)).To(BeNumerically(">", 1))
		Expect(seen).NotTo(HaveKey(color.RGBA{255, 255, 255, 255}))
	})
})
