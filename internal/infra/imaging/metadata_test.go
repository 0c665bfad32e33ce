package imaging

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shoaibzaak/docscreen/internal/domain/documents"
)

// noisyNRGBA builds an incompressible truecolor image; withAlpha punches in a
// translucent pixel so the PNG encoder keeps the alpha channel.
func noisyNRGBA(w, h int, withAlpha bool, seed int64) *image.NRGBA {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
				A: 255,
			})
		}
	}
	if withAlpha {
		img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 10, B: 10, A: 128})
	}
	return img
}

func TestInspectLowResolution(t *testing.T) {
	a := NewMetadataAnalyzer(documents.DefaultTuning())

	findings, err := a.Inspect(encodePNG(t, flatGray(100, 100, 128)))
	require.NoError(t, err)

	assert.True(t, hasFinding(findings, documents.FindingLowResolution))
	// grayscale is outside the expected scan color spaces
	assert.True(t, hasFinding(findings, documents.FindingUnusualColorSpace))
	// a flat PNG compresses far below 0.1 bytes/pixel
	assert.True(t, hasFinding(findings, documents.FindingHighCompression))
}

func TestInspectCleanScanHasNoFindings(t *testing.T) {
	a := NewMetadataAnalyzer(documents.DefaultTuning())

	// large noisy truecolor image: big, opaque, incompressible
	findings, err := a.Inspect(encodePNG(t, noisyNRGBA(400, 300, false, 7)))
	require.NoError(t, err)

	assert.False(t, hasFinding(findings, documents.FindingLowResolution))
	assert.False(t, hasFinding(findings, documents.FindingHighCompression))
	assert.False(t, hasFinding(findings, documents.FindingAlphaChannel))
	assert.False(t, hasFinding(findings, documents.FindingUnusualColorSpace))
}

func TestInspectAlphaChannel(t *testing.T) {
	a := NewMetadataAnalyzer(documents.DefaultTuning())

	findings, err := a.Inspect(encodePNG(t, noisyNRGBA(300, 300, true, 7)))
	require.NoError(t, err)

	assert.True(t, hasFinding(findings, documents.FindingAlphaChannel))
}

func TestInspectLowDensityJPEG(t *testing.T) {
	a := NewMetadataAnalyzer(documents.DefaultTuning())

	base := encodeJPEG(t, noisyNRGBA(400, 300, false, 7), 90)

	// a plain Go-encoded JPEG declares no density at all
	findings, err := a.Inspect(base)
	require.NoError(t, err)
	assert.False(t, hasFinding(findings, documents.FindingLowDPI))

	findings, err = a.Inspect(withJFIFDensity(base, 1, 40))
	require.NoError(t, err)
	assert.True(t, hasFinding(findings, documents.FindingLowDPI))

	findings, err = a.Inspect(withJFIFDensity(base, 1, 300))
	require.NoError(t, err)
	assert.False(t, hasFinding(findings, documents.FindingLowDPI))
}

func TestInspectUndecodablePayload(t *testing.T) {
	a := NewMetadataAnalyzer(documents.DefaultTuning())

	_, err := a.Inspect([]byte{0x00, 0x01, 0x02})
	assert.ErrorIs(t, err, documents.ErrDecode)
}
