package term_test

import (
	"os"

	"github.com/kevin-cantwell/asciimotion/internal/term"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("IsTerminal", func() {
	It("is false for regular files", func() {
		f, err := os.CreateTemp("", "asciimotion-term")
		Expect(err).NotTo(HaveOccurred())
		defer os.Remove(f.Name())
		defer f.Close()
		Expect(term.IsTerminal(f)).To(BeFalse())
	})
})
