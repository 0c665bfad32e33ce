package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withJFIFDensity splices a JFIF APP0 segment with the given units and
// density right after the SOI marker of an encoded JPEG.
func withJFIFDensity(jpegData []byte, units byte, density uint16) []byte {
	app0 := []byte{
		0xFF, 0xE0, // APP0
		0x00, 0x10, // segment length 16
		'J', 'F', 'I', 'F', 0x00,
		0x01, 0x02, // version
		units,
		byte(density >> 8), byte(density),
		byte(density >> 8), byte(density),
		0x00, 0x00, // no thumbnail
	}
	out := make([]byte, 0, len(jpegData)+len(app0))
	out = append(out, jpegData[:2]...)
	out = append(out, app0...)
	return append(out, jpegData[2:]...)
}

func TestJFIFDensityDPI(t *testing.T) {
	base := encodeJPEG(t, flatGray(64, 64, 200), 80)

	dpi, ok := jfifDensity(withJFIFDensity(base, 1, 150))
	require.True(t, ok)
	assert.InDelta(t, 150.0, dpi, 0.01)
}

func TestJFIFDensityDotsPerCm(t *testing.T) {
	base := encodeJPEG(t, flatGray(64, 64, 200), 80)

	dpi, ok := jfifDensity(withJFIFDensity(base, 2, 100))
	require.True(t, ok)
	assert.InDelta(t, 254.0, dpi, 0.01)
}

func TestJFIFDensityAbsent(t *testing.T) {
	base := encodeJPEG(t, flatGray(64, 64, 200), 80)

	// Go's encoder writes no APP0, and units=0 declares an aspect ratio only
	_, ok := jfifDensity(base)
	assert.False(t, ok)

	_, ok = jfifDensity(withJFIFDensity(base, 0, 1))
	assert.False(t, ok)
}

func TestJFIFDensityNotAJPEG(t *testing.T) {
	_, ok := jfifDensity([]byte("PNG or worse"))
	assert.False(t, ok)
}
