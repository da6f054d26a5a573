package audio_test

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/kevin-cantwell/asciimotion/internal/audio"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Fit", func() {
	var (
		dir    string
		src    string
		dst    string
		format = beep.Format{SampleRate: 8000, NumChannels: 2, Precision: 2}
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "asciimotion-audio")
		Expect(err).NotTo(HaveOccurred())
		src = filepath.Join(dir, "src.wav")
		dst = filepath.Join(dir, "dst.wav")

		f, err := os.Create(src)
		Expect(err).NotTo(HaveOccurred())
		Expect(wav.Encode(f, beep.Silence(format.SampleRate.N(time.Second)), format)).To(Succeed())
		Expect(f.Close()).To(Succeed())
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	It("reads durations", func() {
		Expect(audio.Duration(src)).To(Equal(time.Second))
	})

	It("cuts long audio", func() {
		Expect(audio.Fit(src, dst, 500*time.Millisecond)).To(Succeed())
		Expect(audio.Duration(dst)).To(Equal(500 * time.Millisecond))
	})

	It("pads short audio with silence", func() {
		Expect(audio.Fit(src, dst, 2*time.Second)).To(Succeed())
		Expect(audio.Duration(dst)).To(Equal(2 * time.Second))
	})

	It("rejects empty durations", func() {
		Expect(audio.Fit(src, dst, 0)).To(MatchError(audio.ErrEmptyDuration))
	})

	It("fails on files that are not wav", func() {
		Expect(os.WriteFile(src, []byte("not a wav"), 0644)).To(Succeed())
		Expect(audio.Fit(src, dst, time.Second)).NotTo(Succeed())
	})
})
