package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/Shoaibzaak/docscreen/internal/domain/documents"
)

const (
	defaultMaxEdge = 1024
	defaultQuality = 85
)

// Normalizer re-encodes an uploaded raster buffer into the canonical form all
// downstream analyzers work from: bounded to MaxEdge on the longer side
// (aspect preserved, never upscaled) and JPEG-encoded at a fixed quality so
// pixel-level thresholds mean the same thing across heterogeneous inputs.
type Normalizer struct {
	MaxEdge int
	Quality int
}

func NewNormalizer() *Normalizer {
	return &Normalizer{MaxEdge: defaultMaxEdge, Quality: defaultQuality}
}

// Normalize decodes and re-encodes the buffer. A payload that cannot be
// decoded fails the whole analysis with documents.ErrDecode.
func (n *Normalizer) Normalize(data []byte) (*documents.NormalizedImage, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", documents.ErrDecode, err)
	}

	maxEdge := n.MaxEdge
	if maxEdge <= 0 {
		maxEdge = defaultMaxEdge
	}
	quality := n.Quality
	if quality <= 0 {
		quality = defaultQuality
	}

	b := src.Bounds()
	w, h := fitWithin(b.Dx(), b.Dy(), maxEdge)

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(out, out.Bounds(), src, b, draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("%w: re-encode: %v", documents.ErrDecode, err)
	}

	return &documents.NormalizedImage{
		Data:         buf.Bytes(),
		Width:        w,
		Height:       h,
		SourceFormat: format,
	}, nil
}

// fitWithin bounds (w,h) to a maxEdge square preserving aspect ratio. Images
// already inside the box keep their dimensions.
func fitWithin(w, h, maxEdge int) (int, int) {
	if w <= maxEdge && h <= maxEdge {
		return w, h
	}
	if w >= h {
		scaled := h * maxEdge / w
		if scaled < 1 {
			scaled = 1
		}
		return maxEdge, scaled
	}
	scaled := w * maxEdge / h
	if scaled < 1 {
		scaled = 1
	}
	return scaled, maxEdge
}
