package asciimotion_test

import (
	. "github.com/kevin-cantwell/asciimotion"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Glyph quantizer", func() {
	alphabet := MustAlphabet("@%#*+=-:. ")

	It("maps black to the first glyph", func() {
		Expect(alphabet.Lookup(0)).To(Equal('@'))
	})

	It("maps white to the last glyph", func() {
		Expect(alphabet.Lookup(255)).To(Equal(' '))
	})

	It("is monotonic and stays in range", func() {
		for _, n := range []int{2, 5, 9, 10, 70} {
			prev := 0
			for b := -20; b <= 300; b++ {
				i := Quantize(b, n)
				Expect(i).To(BeNumerically(">=", prev))
				Expect(i).To(BeNumerically("<", n))
				prev = i
			}
			Expect(Quantize(0, n)).To(Equal(0))
			Expect(Quantize(255, n)).To(Equal(n - 1))
		}
	})

	It("maps everything to zero for single glyph alphabets", func() {
		Expect(Quantize(255, 1)).To(Equal(0))
		Expect(Quantize(128, 0)).To(Equal(0))
	})

	It("clamps glyph indices", func() {
		Expect(alphabet.Glyph(-3)).To(Equal('@'))
		Expect(alphabet.Glyph(42)).To(Equal(' '))
	})

	It("inverts lookups", func() {
		i, ok := alphabet.Index('*')
		Expect(ok).To(BeTrue())
		Expect(i).To(Equal(3))

		v, ok := alphabet.Brightness(' ')
		Expect(ok).To(BeTrue())
		Expect(v).To(BeEquivalentTo(255))
		v, _ = alphabet.Brightness('@')
		Expect(v).To(BeEquivalentTo(0))
		v, _ = alphabet.Brightness('+')
		Expect(v).To(BeEquivalentTo(114))

		_, ok = alphabet.Brightness('X')
		Expect(ok).To(BeFalse())
	})

	It("round trips every glyph through its brightness", func() {
		for i := 0; i < alphabet.Len(); i++ {
			r := alphabet.Glyph(i)
			v, _ := alphabet.Brightness(r)
			Expect(alphabet.Lookup(int(v))).To(Equal(r))
		}
	})

	It("round trips glyphs for every alphabet size", func() {
		for n := 2; n <= 256; n++ {
			runes := make([]rune, n)
			for i := range runes {
				runes[i] = rune(0x4e00 + i)
			}
			a := MustAlphabet(string(runes))
			for _, r := range runes {
				v, _ := a.Brightness(r)
				Expect(a.Lookup(int(v))).To(Equal(r), "alphabet of %d glyphs", n)
			}
		}
	})

	It("rejects bad alphabets", func() {
		_, err := NewAlphabet("@")
		Expect(err).To(MatchError(ErrShortAlphabet))
		_, err = NewAlphabet("@#@")
		Expect(err).To(MatchError(ContainSubstring("duplicate")))
	})

	It("normalizes decomposed glyphs", func() {
		a, err := NewAlphabet("e\u0301o")
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Len()).To(Equal(2))
		Expect(a.Glyph(0)).To(Equal('\u00e9'))
	})
})
