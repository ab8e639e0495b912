package decode

import "math"

// FitDimensions scales src down to fit inside box, keeping the aspect ratio.
// Sides are rounded to even numbers and never drop below 2. A box side of 0 means unbounded.
func FitDimensions(src, box Dimensions) Dimensions {
	if !src.Valid() {
		return Dimensions{}
	}

	scale := 1.0
	if box.Width > 0 {
		scale = math.Min(scale, float64(box.Width)/float64(src.Width))
	}
	if box.Height > 0 {
		scale = math.Min(scale, float64(box.Height)/float64(src.Height))
	}

	return Dimensions{
		Width:  even(float64(src.Width) * scale),
		Height: even(float64(src.Height) * scale),
	}
}

func even(v float64) int {
	n := int(math.Floor(v))
	n -= n % 2
	if n < 2 {
		return 2
	}
	return n
}
