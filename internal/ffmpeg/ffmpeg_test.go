package ffmpeg

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/kevin-cantwell/asciimotion"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ffmpeg round trip", func() {
	var dir string

	BeforeEach(func() {
		if _, err := exec.LookPath(FFprobe); err != nil || !Available() {
			Skip("ffmpeg and ffprobe are not installed")
		}
		var err error
		dir, err = os.MkdirTemp("", "asciimotion-ffmpeg")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		if dir != "" {
			os.RemoveAll(dir)
		}
	})

	It("encodes frames that decode back in order", func() {
		ctx := context.Background()
		path := filepath.Join(dir, "out.mp4")

		enc, err := Create(ctx, path, 33, 17, 10)
		Expect(err).NotTo(HaveOccurred())
		for i := 0; i < 5; i++ {
			img := image.NewRGBA(image.Rect(0, 0, 33, 17))
			draw.Draw(img, img.Bounds(), image.NewUniform(color.Gray{uint8(i * 50)}), image.Point{}, draw.Src)
			Expect(enc.WriteFrame(img)).To(Succeed())
		}
		Expect(enc.WriteFrame(image.NewRGBA(image.Rect(0, 0, 2, 2)))).NotTo(Succeed())
		Expect(enc.Close()).To(Succeed())

		info, err := Probe(ctx, path)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Width).To(Equal(34))
		Expect(info.Height).To(Equal(18))
		Expect(info.HasAudio).To(BeFalse())

		dec, err := Open(ctx, path, asciimotion.Window{})
		Expect(err).NotTo(HaveOccurred())
		defer dec.Close()
		var n int
		for {
			_, err := dec.Next()
			if err == io.EOF {
				break
			}
			Expect(err).NotTo(HaveOccurred())
			n++
		}
		Expect(n).To(Equal(5))

		err = Audio{}.Extract(ctx, path, asciimotion.Window{}, filepath.Join(dir, "a.wav"))
		Expect(err).To(MatchError(ErrNoAudio))
	})

	It("fails to decode missing files", func() {
		dec, err := Open(context.Background(), filepath.Join(dir, "missing.mp4"), asciimotion.Window{})
		Expect(err).NotTo(HaveOccurred())
		defer dec.Close()
		_, err = dec.Next()
		Expect(err).To(HaveOccurred())
		Expect(err).NotTo(Equal(io.EOF))
	})
})
