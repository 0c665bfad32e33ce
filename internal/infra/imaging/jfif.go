package imaging

import "encoding/binary"

// jfifDensity walks the JPEG segment chain looking for a JFIF APP0 header and
// returns the declared pixel density in DPI. Returns ok=false when the file
// carries no usable density (units byte 0 declares an aspect ratio only, and
// EXIF-only files have no APP0 at all).
func jfifDensity(data []byte) (float64, bool) {
	if len(data) < 4 || data[0] != 0xFF || data[1] != 0xD8 {
		return 0, false
	}
	i := 2
	for i+4 <= len(data) {
		if data[i] != 0xFF {
			return 0, false
		}
		marker := data[i+1]
		// Standalone markers carry no length.
		if marker == 0xD8 || (marker >= 0xD0 && marker <= 0xD7) {
			i += 2
			continue
		}
		// Entropy-coded data starts at SOS; no headers beyond it.
		if marker == 0xDA {
			return 0, false
		}
		length := int(binary.BigEndian.Uint16(data[i+2 : i+4]))
		if length < 2 || i+2+length > len(data) {
			return 0, false
		}
		if marker == 0xE0 {
			seg := data[i+4 : i+2+length]
			// "JFIF\0" + version(2) + units(1) + Xdensity(2) + Ydensity(2)
			if len(seg) >= 12 && string(seg[:5]) == "JFIF\x00" {
				units := seg[7]
				x := float64(binary.BigEndian.Uint16(seg[8:10]))
				switch units {
				case 1: // dots per inch
					return x, x > 0
				case 2: // dots per cm
					return x * 2.54, x > 0
				}
				return 0, false
			}
		}
		i += 2 + length
	}
	return 0, false
}
