package artwork

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG format support
	_ "image/png"  // PNG format support

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/linernotes/liner/internal/domain"
)

// sampleSize is the edge length artwork is downscaled to before sampling.
// 64x64 keeps the histogram cheap while preserving the dominant hue.
const sampleSize = 64

// DominantExtractor derives the most represented color of an image by
// downscaling it and bucketing pixels into a coarse histogram.
type DominantExtractor struct {
	logger *zap.Logger
}

// NewDominantExtractor creates a dominant-color extractor.
func NewDominantExtractor(logger *zap.Logger) *DominantExtractor {
	return &DominantExtractor{logger: logger}
}

// Extract decodes the image and returns its dominant color. The returned
// value is the average of the pixels in the most populated bucket, so a
// mostly-red cover yields the cover's red rather than the bucket center.
func (e *DominantExtractor) Extract(data []byte) (domain.RGB, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return domain.RGB{}, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return domain.RGB{}, fmt.Errorf("invalid image dimensions: %dx%d", bounds.Dx(), bounds.Dy())
	}

	small := imaging.Resize(img, sampleSize, sampleSize, imaging.Lanczos)

	// 4 bits per channel: 4096 buckets
	type bucket struct {
		count   int
		r, g, b int
	}
	buckets := make(map[uint16]*bucket)

	for y := 0; y < sampleSize; y++ {
		for x := 0; x < sampleSize; x++ {
			r, g, b, _ := small.At(x, y).RGBA()
			r8, g8, b8 := int(r>>8), int(g>>8), int(b>>8)

			key := uint16(r8>>4)<<8 | uint16(g8>>4)<<4 | uint16(b8>>4)
			bk := buckets[key]
			if bk == nil {
				bk = &bucket{}
				buckets[key] = bk
			}
			bk.count++
			bk.r += r8
			bk.g += g8
			bk.b += b8
		}
	}

	var best *bucket
	var bestKey uint16
	for key, bk := range buckets {
		if best == nil || bk.count > best.count || (bk.count == best.count && key < bestKey) {
			best = bk
			bestKey = key
		}
	}

	color := domain.RGB{
		R: uint8(best.r / best.count),
		G: uint8(best.g / best.count),
		B: uint8(best.b / best.count),
	}

	e.logger.Debug("dominant color extracted",
		zap.Uint8("r", color.R),
		zap.Uint8("g", color.G),
		zap.Uint8("b", color.B),
		zap.Int("share", best.count))
	return color, nil
}
