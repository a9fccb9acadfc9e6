package classifier

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/common"
)

const (
	maxImageBytes = 10 * 1024 * 1024
	minDimension  = 100
	maxDimension  = 4000
)

// ImageMeta is what the header decode yields; no pixel data is loaded.
type ImageMeta struct {
	Format   string
	Width    int
	Height   int
	FileSize int
}

// ValidateImage enforces the upload preconditions: JPEG/PNG, both dimensions
// within [100,4000] and at most 10 MB.
func ValidateImage(data []byte) (*ImageMeta, error) {
	if len(data) > maxImageBytes {
		return nil, common.ValidationError("Image file too large. Maximum size is 10MB.")
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, common.ValidationError("Invalid image file: " + err.Error())
	}

	if format != "jpeg" && format != "png" {
		return nil, common.ValidationError("Unsupported image format. Please use JPEG or PNG.")
	}

	if cfg.Width < minDimension || cfg.Height < minDimension {
		return nil, common.ValidationError("Image too small. Minimum size is 100x100 pixels.")
	}

	if cfg.Width > maxDimension || cfg.Height > maxDimension {
		return nil, common.ValidationError("Image too large. Maximum size is 4000x4000 pixels.")
	}

	return &ImageMeta{
		Format:   format,
		Width:    cfg.Width,
		Height:   cfg.Height,
		FileSize: len(data),
	}, nil
}

// Quality grades an image for detection purposes from its resolution.
func (m *ImageMeta) Quality() string {
	switch {
	case m.Width >= 1000 && m.Height >= 1000:
		return "excellent"
	case m.Width >= 400 && m.Height >= 400:
		return "good"
	default:
		return "poor"
	}
}
