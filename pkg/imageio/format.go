package imageio

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Format names, matching the names registered with the image package.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
	FormatGIF  = "gif"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

var extFormats = map[string]string{
	".png":  FormatPNG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
	".gif":  FormatGIF,
}

// FormatOf infers the image format from the extension of path.
func FormatOf(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if len(ext) == 0 {
		return "", fmt.Errorf("%w: '%s' has no file extension", ErrUnsupportedFormat, path)
	}
	format, ok := extFormats[ext]
	if !ok {
		return "", fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, ext)
	}
	return format, nil
}

// IsSupported reports whether path has an extension that can be both read and written.
func IsSupported(path string) bool {
	_, err := FormatOf(path)
	return err == nil
}

// Extensions returns the supported file extensions in sorted order.
func Extensions() []string {
	exts := make([]string, 0, len(extFormats))
	for ext := range extFormats {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
