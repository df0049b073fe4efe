package image

import (
	"bytes"
	"fmt"
	stdimage "image"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"

	"boothdesk/shared/failure"
)

// Options bound the logo accepted for upload. Oversized dimensions are
// corrected by downscaling; an oversized file or a non-image is rejected.
type Options struct {
	MaxWidth     int
	MaxHeight    int
	JPEGQuality  int
	MaxSizeBytes int64
}

// Logo is a preprocessed upload candidate, re-encoded in its source format.
type Logo struct {
	Content []byte
	Format  string
	Width   int
	Height  int
}

// ValidFileType reports whether the filename extension is an accepted logo
// format.
func ValidFileType(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png", ".gif":
		return true
	default:
		return false
	}
}

// PrepareLogo validates and normalizes a logo before it goes to the backend:
// type and size checks, then a downscale to the configured bounds when the
// source is larger. Smaller images pass through untouched.
func PrepareLogo(raw []byte, filename string, opts Options) (*Logo, error) {
	if !ValidFileType(filename) {
		return nil, failure.Validation("Logo must be a jpg, png, or gif image.") // nolint:wrapcheck
	}

	if opts.MaxSizeBytes > 0 && int64(len(raw)) > opts.MaxSizeBytes {
		return nil, failure.Validation(fmt.Sprintf("Logo file must be smaller than %d MB.", opts.MaxSizeBytes/(1<<20))) // nolint:wrapcheck
	}

	img, format, err := stdimage.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, failure.Validation("Logo file is not a readable image.") // nolint:wrapcheck
	}

	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	if opts.MaxWidth > 0 && opts.MaxHeight > 0 && (width > opts.MaxWidth || height > opts.MaxHeight) {
		img = imaging.Fit(img, opts.MaxWidth, opts.MaxHeight, imaging.Lanczos)
		width = img.Bounds().Dx()
		height = img.Bounds().Dy()

		raw, err = encode(img, format, opts.JPEGQuality)
		if err != nil {
			return nil, err
		}
	}

	return &Logo{
		Content: raw,
		Format:  format,
		Width:   width,
		Height:  height,
	}, nil
}

func encode(img stdimage.Image, format string, quality int) ([]byte, error) {
	var encFormat imaging.Format

	switch format {
	case "jpeg":
		encFormat = imaging.JPEG
	case "png":
		encFormat = imaging.PNG
	case "gif":
		encFormat = imaging.GIF
	default:
		return nil, failure.Validation("Logo must be a jpg, png, or gif image.") // nolint:wrapcheck
	}

	opts := []imaging.EncodeOption{}
	if encFormat == imaging.JPEG && quality > 0 {
		opts = append(opts, imaging.JPEGQuality(quality))
	}

	buf := bytes.NewBuffer(nil)
	if err := imaging.Encode(buf, img, encFormat, opts...); err != nil {
		return nil, fmt.Errorf("failed to encode logo: %w", err)
	}

	return buf.Bytes(), nil
}
