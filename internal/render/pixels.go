package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// gridLines returns the pixel offsets of the separators drawn between cells
// of a grid n cells wide at the given scale. Scales below 4 get no lines.
func gridLines(n, scale int) []float32 {
	if n <= 1 || scale < 4 {
		return nil
	}
	lines := make([]float32, 0, n-1)
	for i := 1; i < n; i++ {
		lines = append(lines, float32(i*scale))
	}
	return lines
}
