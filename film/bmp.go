package film

import (
	"image"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// bmpSource is satisfied by any renderer that can produce a final image
// (Depthmap, Heatmap).
type bmpSource interface {
	Image() image.Image
}

// WriteBMP encodes src's rendered image to w in BMP format.
func WriteBMP(w io.Writer, src bmpSource) error {
	return bmp.Encode(w, src.Image())
}

// SaveBMP encodes src's rendered image and writes it to the file at path,
// creating or truncating it.
func SaveBMP(path string, src bmpSource) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteBMP(f, src)
}
