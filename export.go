package stellar

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// FormatFromPath returns the image format implied by a file extension:
// "png", "bmp" or "tiff".
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png", nil
	case ".bmp":
		return "bmp", nil
	case ".tif", ".tiff":
		return "tiff", nil
	default:
		return "", fmt.Errorf("%w: image %q", ErrUnsupportedFormat, path)
	}
}

// EncodeImage writes im to w in the named format.
func EncodeImage(w io.Writer, im image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, im)
	case "bmp":
		return bmp.Encode(w, im)
	case "tiff":
		return tiff.Encode(w, im, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: image format %q", ErrUnsupportedFormat, format)
	}
}

// SaveImage encodes im to path, picking the format from the extension.
func SaveImage(path string, im image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("stellar: create image: %w", err)
	}
	if err := EncodeImage(file, im, format); err != nil {
		file.Close()
		return fmt.Errorf("stellar: encode %s: %w", path, err)
	}
	return file.Close()
}

// Thumbnail scales im down to fit within maxWidth x maxHeight, keeping the
// aspect ratio. Images that already fit are returned unchanged.
func Thumbnail(im image.Image, maxWidth, maxHeight int) image.Image {
	if maxWidth <= 0 || maxHeight <= 0 {
		return im
	}
	return resize.Thumbnail(uint(maxWidth), uint(maxHeight), im, resize.Lanczos3)
}

// Resize scales im to exactly width x height. A zero dimension keeps the
// aspect ratio.
func Resize(im image.Image, width, height int) image.Image {
	return resize.Resize(uint(max(width, 0)), uint(max(height, 0)), im, resize.Bilinear)
}
