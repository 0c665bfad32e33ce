package imaging

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shoaibzaak/docscreen/internal/domain/documents"
)

func TestNormalizeBoundsLargeImages(t *testing.T) {
	n := NewNormalizer()

	out, err := n.Normalize(encodePNG(t, flatGray(2048, 1024, 128)))
	require.NoError(t, err)

	assert.Equal(t, 1024, out.Width)
	assert.Equal(t, 512, out.Height)
	assert.Equal(t, "png", out.SourceFormat)

	// the normalized form is always a decodable JPEG
	cfg, format, err := image.DecodeConfig(bytes.NewReader(out.Data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 1024, cfg.Width)
	assert.Equal(t, 512, cfg.Height)
}

func TestNormalizeNeverUpscales(t *testing.T) {
	n := NewNormalizer()

	out, err := n.Normalize(encodePNG(t, flatGray(300, 200, 128)))
	require.NoError(t, err)

	assert.Equal(t, 300, out.Width)
	assert.Equal(t, 200, out.Height)
}

func TestNormalizePortraitAspect(t *testing.T) {
	n := NewNormalizer()

	out, err := n.Normalize(encodePNG(t, flatGray(1000, 4000, 128)))
	require.NoError(t, err)

	assert.Equal(t, 1024, out.Height)
	assert.Equal(t, 256, out.Width)
}

func TestNormalizeAcceptsJPEGInput(t *testing.T) {
	n := NewNormalizer()

	out, err := n.Normalize(encodeJPEG(t, flatGray(640, 480, 90), 85))
	require.NoError(t, err)

	assert.Equal(t, "jpeg", out.SourceFormat)
	assert.Equal(t, 640, out.Width)
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	n := NewNormalizer()

	out, err := n.Normalize([]byte("not an image at all"))
	assert.ErrorIs(t, err, documents.ErrDecode)
	assert.Nil(t, out)
}
