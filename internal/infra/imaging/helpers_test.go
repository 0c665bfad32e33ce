package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Shoaibzaak/docscreen/internal/domain/documents"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, img image.Image, quality int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}))
	return buf.Bytes()
}

var grayWhite = color.Gray{Y: 255}

func flatGray(w, h int, level uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = level
	}
	return img
}

// quadrantNoise builds a size x size grayscale image whose four quadrants
// carry uniform noise of the given amplitudes around mid-gray.
func quadrantNoise(size int, amplitudes [4]int, seed int64) *image.Gray {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewGray(image.Rect(0, 0, size, size))
	half := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			q := 0
			if x >= half {
				q++
			}
			if y >= half {
				q += 2
			}
			amp := amplitudes[q]
			v := 128
			if amp > 0 {
				v += rng.Intn(2*amp+1) - amp
			}
			img.SetGray(x, y, color.Gray{Y: clampByte(v)})
		}
	}
	return img
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func hasFinding(findings []documents.Finding, ft documents.FindingType) bool {
	for _, f := range findings {
		if f.Type == ft {
			return true
		}
	}
	return false
}
