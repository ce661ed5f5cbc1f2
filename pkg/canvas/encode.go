package canvas

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/df07/go-ray-tracer/pkg/core"
)

// MaxPPMLineLength is the longest line EncodePPM writes
const MaxPPMLineLength = 70

// ChannelByte converts a color channel to 0-255. Values are clamped to [0, 1]
// and scaled by 256; anything within epsilon of 1 maps to 255.
func ChannelByte(v float64) uint8 {
	if core.FloatEquals(v, 1) {
		return 255
	}
	scaled := math.Round(256 * math.Max(0, math.Min(1, v)))
	if scaled > 255 {
		scaled = 255
	}
	return uint8(scaled)
}

// EncodePPM writes img as a plain-text PPM (P3). Every row starts on a new
// line and no line exceeds MaxPPMLineLength characters.
func EncodePPM(w io.Writer, img Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width(), img.Height()); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	line := make([]byte, 0, MaxPPMLineLength)
	for y := 0; y < img.Height(); y++ {
		line = line[:0]
		for x := 0; x < img.Width(); x++ {
			c := img.PixelAt(x, y)
			for _, v := range [3]float64{c.R, c.G, c.B} {
				token := strconv.Itoa(int(ChannelByte(v)))

				if len(line) > 0 && len(line)+1+len(token) > MaxPPMLineLength {
					if err := writeLine(bw, line); err != nil {
						return err
					}
					line = line[:0]
				}
				if len(line) > 0 {
					line = append(line, ' ')
				}
				line = append(line, token...)
			}
		}
		if err := writeLine(bw, line); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM data: %w", err)
	}
	return nil
}

func writeLine(w *bufio.Writer, line []byte) error {
	if _, err := w.Write(line); err != nil {
		return fmt.Errorf("failed to write PPM data: %w", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write PPM data: %w", err)
	}
	return nil
}

// ToRGBA converts img to an opaque RGBA image for PNG encoding, using the
// same channel mapping as the PPM encoder
func ToRGBA(img Image) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width(), img.Height()))
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			c := img.PixelAt(x, y)
			out.SetRGBA(x, y, color.RGBA{
				R: ChannelByte(c.R),
				G: ChannelByte(c.G),
				B: ChannelByte(c.B),
				A: 255,
			})
		}
	}
	return out
}
