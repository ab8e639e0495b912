package decode

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/facetwall/facetwall/filesystem"
)

// ImageLoader loads still images, honouring EXIF orientation and shrinking
// anything larger than the bounding box.
type ImageLoader struct {
	Box Dimensions
}

// Load decodes the image at path.
func (l ImageLoader) Load(path string) (image.Image, error) {
	file, err := filesystem.API().Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	if (l.Box.Width > 0 && bounds.Dx() > l.Box.Width) || (l.Box.Height > 0 && bounds.Dy() > l.Box.Height) {
		fit := FitDimensions(Dimensions{Width: bounds.Dx(), Height: bounds.Dy()}, l.Box)
		img = imaging.Fit(img, fit.Width, fit.Height, imaging.Lanczos)
	}

	return img, nil
}
