package decode

import (
	"fmt"
	"image"
	"strings"
)

// Format is a raw pixel layout understood by the decoder.
type Format string

const (
	RGBA  Format = "rgba"
	BGRA  Format = "bgra"
	RGB24 Format = "rgb24"
	Gray  Format = "gray"
)

// ParseFormat reads a pixel format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f.BytesPerPixel() == 0 {
		return "", fmt.Errorf("unsupported pixel format %q", s)
	}
	return f, nil
}

// BytesPerPixel returns the packed size of a pixel, or 0 for unknown formats.
func (f Format) BytesPerPixel() int {
	switch f {
	case RGBA, BGRA:
		return 4
	case RGB24:
		return 3
	case Gray:
		return 1
	default:
		return 0
	}
}

// FrameSize returns the byte count of one tightly packed frame.
func (f Format) FrameSize(d Dimensions) int {
	return d.Width * d.Height * f.BytesPerPixel()
}

// Frame is one decoded picture. Pix is tightly packed, row after row.
type Frame struct {
	Seq    uint64
	Width  int
	Height int
	Format Format
	Pix    []byte
}

// Image converts the frame into an image.Image without retaining Pix.
func (f Frame) Image() image.Image {
	rect := image.Rect(0, 0, f.Width, f.Height)

	switch f.Format {
	case Gray:
		img := image.NewGray(rect)
		copy(img.Pix, f.Pix)
		return img
	case RGBA:
		img := image.NewNRGBA(rect)
		copy(img.Pix, f.Pix)
		return img
	}

	img := image.NewNRGBA(rect)
	bpp := f.Format.BytesPerPixel()
	for i, j := 0, 0; i+bpp <= len(f.Pix) && j+4 <= len(img.Pix); i, j = i+bpp, j+4 {
		switch f.Format {
		case BGRA:
			img.Pix[j], img.Pix[j+1], img.Pix[j+2], img.Pix[j+3] = f.Pix[i+2], f.Pix[i+1], f.Pix[i], f.Pix[i+3]
		case RGB24:
			img.Pix[j], img.Pix[j+1], img.Pix[j+2], img.Pix[j+3] = f.Pix[i], f.Pix[i+1], f.Pix[i+2], 0xFF
		}
	}
	return img
}
