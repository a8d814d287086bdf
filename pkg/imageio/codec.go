package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/saylorsolutions/pixmask/pkg/pixmask"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

const (
	DefaultJPEGQuality = 95
)

var (
	ErrDecode = errors.New("failed to decode image")
	ErrEncode = errors.New("failed to encode image")
)

// Image is a decoded image file.
type Image struct {
	Path   string
	Format string
	Pixels *pixmask.PixelBuffer
}

// Options tune encoding.
type Options struct {
	// JPEGQuality is used for jpeg output, in the range [1, 100].
	// A zero value means DefaultJPEGQuality.
	JPEGQuality int
}

func (o Options) jpegQuality() int {
	switch {
	case o.JPEGQuality <= 0:
		return DefaultJPEGQuality
	case o.JPEGQuality > 100:
		return 100
	default:
		return o.JPEGQuality
	}
}

// Decode reads any registered image format from r and normalizes it to RGB.
// The returned string is the name of the decoded format.
func Decode(r io.Reader) (*pixmask.PixelBuffer, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return pixmask.FromImage(img), format, nil
}

// ReadFile will open and decode the image at path.
func ReadFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer func() {
		_ = f.Close()
	}()

	buf, format, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return &Image{
		Path:   path,
		Format: format,
		Pixels: buf,
	}, nil
}

// Encode writes buf to w in the given format.
func Encode(w io.Writer, buf *pixmask.PixelBuffer, format string, opts Options) error {
	if buf == nil {
		return fmt.Errorf("%w: nil pixel buffer", ErrEncode)
	}
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, buf)
	case FormatJPEG:
		err = jpeg.Encode(w, buf, &jpeg.Options{Quality: opts.jpegQuality()})
	case FormatBMP:
		err = bmp.Encode(w, buf)
	case FormatTIFF:
		err = tiff.Encode(w, buf, &tiff.Options{Compression: tiff.Deflate})
	case FormatGIF:
		err = gif.Encode(w, buf, nil)
	default:
		return fmt.Errorf("%w: %w '%s'", ErrEncode, ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}

// WriteFile encodes buf to path, in the format inferred from the path's extension.
// The image is written to a temporary file next to path and renamed into place, so a failed write leaves nothing behind.
func WriteFile(path string, buf *pixmask.PixelBuffer, opts Options) (err error) {
	format, err := FormatOf(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	dir, name := filepath.Split(path)
	if len(dir) == 0 {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, buf, format, opts); err != nil {
		return fmt.Errorf("%w (%s)", err, path)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}
