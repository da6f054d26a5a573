package asciimotion_test

import (
	"strings"

	. "github.com/kevin-cantwell/asciimotion"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Profiles", func() {
	var profiles Profiles

	BeforeEach(func() {
		profiles = BuiltinProfiles()
	})

	It("ships the quality presets", func() {
		Expect(profiles.Names()).To(Equal([]string{"high", "low", "medium", "simple", "ultra"}))

		simple, err := profiles.Lookup("simple")
		Expect(err).NotTo(HaveOccurred())
		Expect(simple.Depth()).To(Equal(Color16))
		Expect(simple.Aspect).To(Equal(0.5))

		high, err := profiles.Lookup("high")
		Expect(err).NotTo(HaveOccurred())
		Expect(high.Depth()).To(Equal(Color256))
		Expect(high.Glyphs().Len()).To(Equal(9))
	})

	It("falls back to the default profile", func() {
		p, err := profiles.Lookup("")
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Name).To(Equal(DefaultProfile))
	})

	It("rejects unknown names", func() {
		_, err := profiles.Lookup("cinema")
		Expect(err).To(MatchError(ErrUnknownProfile))
	})

	It("loads extra profiles and overrides", func() {
		err := profiles.Load(strings.NewReader(`
- name: blocks
  alphabet: "█▒ "
  aspect: 0.5
  cell_width: 4
  cell_height: 8
- name: medium
  alphabet: "#. "
  aspect: 0.6
  cell_width: 8
  cell_height: 14
  colors: 16
`))
		Expect(err).NotTo(HaveOccurred())

		blocks, err := profiles.Lookup("blocks")
		Expect(err).NotTo(HaveOccurred())
		Expect(blocks.Glyphs().String()).To(Equal("█▒ "))
		Expect(blocks.Depth()).To(Equal(Color256))
		Expect(blocks.FontSize).To(BeNumerically(">", 0))

		medium, _ := profiles.Lookup("medium")
		Expect(medium.Glyphs().Len()).To(Equal(3))
		Expect(medium.Depth()).To(Equal(Color16))
	})

	It("rejects invalid profiles", func() {
		Expect(profiles.Load(strings.NewReader("- name: x\n  alphabet: \"##\"\n  aspect: 0.5\n  cell_width: 8\n  cell_height: 14\n"))).
			To(MatchError(ErrDuplicateGlyph))
		Expect(profiles.Load(strings.NewReader("- name: x\n  alphabet: \"#.\"\n  aspect: 0\n  cell_width: 8\n  cell_height: 14\n"))).
			To(MatchError(ContainSubstring("aspect")))
		Expect(profiles.Load(strings.NewReader("- name: x\n  glyphs: \"#.\"\n"))).
			To(HaveOccurred())
	})
})
