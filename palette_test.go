package asciimotion_test

import (
	"image/color"

	. "github.com/kevin-cantwell/asciimotion"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Color quantizer", func() {
	Describe("16 colors", func() {
		It("classifies a dominant red channel as red", func() {
			code := Quantize16(200, 50, 50)
			Expect(code).To(Equal(Red))
			Expect(code.RGB()).To(Equal(color.RGBA{255, 0, 0, 255}))
		})

		It("checks grays before channels", func() {
			Expect(Quantize16(10, 10, 10)).To(Equal(Black))
			Expect(Quantize16(100, 100, 100)).To(Equal(DarkGray))
			Expect(Quantize16(150, 150, 150)).To(Equal(LightGray))
			Expect(Quantize16(250, 250, 250)).To(Equal(White))
		})

		It("falls back to channel pairs and then light gray", func() {
			Expect(Quantize16(10, 200, 10)).To(Equal(Green))
			Expect(Quantize16(10, 10, 200)).To(Equal(Blue))
			Expect(Quantize16(200, 200, 10)).To(Equal(Yellow))
			Expect(Quantize16(200, 10, 200)).To(Equal(Magenta))
			Expect(Quantize16(10, 200, 200)).To(Equal(Cyan))
			Expect(Quantize16(100, 100, 10)).To(Equal(LightGray))
		})
	})

	Describe("256 colors", func() {
		It("maps chromatic colors into the cube", func() {
			Expect(Quantize256(255, 0, 0)).To(BeEquivalentTo(196))
			Expect(Quantize256(0, 0, 255)).To(BeEquivalentTo(21))
			Expect(Quantize256(200, 50, 50)).To(BeEquivalentTo(16 + 36*3))
		})

		It("sends gray extremes to the cube corners", func() {
			Expect(Quantize256(0, 0, 0)).To(BeEquivalentTo(16))
			Expect(Quantize256(255, 255, 255)).To(BeEquivalentTo(231))
		})

		It("round trips grays within one ramp step", func() {
			for v := 0; v < 256; v++ {
				code := Quantize256(uint8(v), uint8(v), uint8(v))
				Expect(int(code)).To(BeNumerically(">=", 16))
				Expect(int(code)).To(BeNumerically("<=", 255))
				c := code.RGB()
				Expect(c.R).To(Equal(c.G))
				Expect(c.G).To(Equal(c.B))
				Expect(int(c.R)).To(BeNumerically("~", v, 11), "gray %d", v)
			}
		})

		It("round trips cube colors exactly", func() {
			for code := Code(16); code <= 231; code++ {
				c := code.RGB()
				if c.R == c.G && c.G == c.B {
					continue
				}
				Expect(Quantize256(c.R, c.G, c.B)).To(Equal(code))
			}
		})
	})

	It("turns unknown codes white", func() {
		white := color.RGBA{255, 255, 255, 255}
		Expect(NoColor.RGB()).To(Equal(white))
		Expect(Code(999).RGB()).To(Equal(white))
	})

	It("writes escape sequences per depth", func() {
		Expect(Code(196).SGR(Color256)).To(Equal("\033[38;5;196m"))
		Expect(Code(1).SGR(Color16)).To(Equal("\033[31m"))
		Expect(Red.SGR(Color16)).To(Equal("\033[91m"))
		Expect(NoColor.SGR(Color256)).To(BeEmpty())
		Expect(Red.SGR(ColorNone)).To(BeEmpty())
	})

	It("quantizes image colors by depth", func() {
		c := color.NRGBA{200, 50, 50, 255}
		Expect(QuantizeColor(c, Color16)).To(Equal(Red))
		Expect(QuantizeColor(c, Color256)).To(BeEquivalentTo(124))
		Expect(QuantizeColor(c, ColorNone)).To(Equal(NoColor))
	})
})
