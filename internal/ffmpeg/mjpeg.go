package ffmpeg

import (
	"bufio"
	"bytes"
	"image"
	"image/jpeg"
	"io"
)

// MJPEGReader splits a stream of concatenated JPEG images, as written by
// ffmpeg's image2pipe muxer, into decoded frames. Every frame is returned in
// order; none are dropped.
type MJPEGReader struct {
	r   *bufio.Reader
	buf bytes.Buffer
}

func NewMJPEGReader(r io.Reader) *MJPEGReader {
	return &MJPEGReader{r: bufio.NewReaderSize(r, 64*1024)}
}

// Next returns the next frame, or io.EOF once the stream ends between
// frames. A stream that ends inside a frame gives io.ErrUnexpectedEOF.
func (mjpeg *MJPEGReader) Next() (image.Image, error) {
	mjpeg.buf.Reset()
	for {
		b, err := mjpeg.r.ReadByte()
		if err == io.EOF {
			if mjpeg.buf.Len() == 0 {
				return nil, io.EOF
			}
			return nil, io.ErrUnexpectedEOF
		}
		if err != nil {
			return nil, err
		}
		mjpeg.buf.WriteByte(b)

		// 0xffd9 is the end of image marker. Entropy coded data stuffs every
		// 0xff with a zero byte, so the pair cannot occur inside a frame.
		if b != 0xd9 || mjpeg.buf.Len() < 2 {
			continue
		}
		data := mjpeg.buf.Bytes()
		if data[len(data)-2] != 0xff {
			continue
		}
		return jpeg.Decode(&mjpeg.buf)
	}
}
