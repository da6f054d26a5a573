package asciimotion_test

import (
	"bytes"
	"strings"

	. "github.com/kevin-cantwell/asciimotion"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("WriteLog", func() {
	plain := func(s string) *TextFrame {
		return &TextFrame{Lines: []Line{{{Color: NoColor, Glyphs: []rune(s)}}}}
	}

	It("writes a header and numbered frames", func() {
		var buf bytes.Buffer
		h := LogHeader{Video: "clip.mp4", Width: 2, Quality: "medium"}
		Expect(WriteLog(&buf, h, []*TextFrame{plain("ab"), plain("cd")})).To(Succeed())

		Expect(buf.String()).To(Equal("Video: clip.mp4\n" +
			"Dimensions: 2 chars wide\n" +
			"Quality: medium\n" +
			"Color: No\n" +
			strings.Repeat("=", 50) + "\n\n" +
			"Frame 1:\nab\n\n==\n\n" +
			"Frame 2:\ncd\n\n==\n\n"))
	})

	It("keeps color escapes", func() {
		var buf bytes.Buffer
		f := &TextFrame{Depth: Color256, Lines: []Line{{{Color: Code(196), Glyphs: []rune("#")}}}}
		Expect(WriteLog(&buf, LogHeader{Width: 1, Color: true}, []*TextFrame{f})).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("Color: Yes\n"))
		Expect(buf.String()).To(ContainSubstring("Frame 1:\n\033[38;5;196m#\n\033[0m\n=\n"))
	})
})
