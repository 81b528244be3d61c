package render

// FillRGBA unpacks 0xAARRGGBB colours into RGBA pixels in buf. Cells beyond
// len(buf)/4 are ignored.
func FillRGBA(buf []byte, colors []uint32) {
	n := len(colors)
	if limit := len(buf) / 4; n > limit {
		n = limit
	}
	for i := 0; i < n; i++ {
		c := colors[i]
		base := i * 4
		buf[base+0] = uint8(c >> 16)
		buf[base+1] = uint8(c >> 8)
		buf[base+2] = uint8(c)
		buf[base+3] = uint8(c >> 24)
	}
}

// FillMask paints cells for which mask returns true with the packed colour
// on and leaves the others fully transparent.
func FillMask(buf []byte, n int, on uint32, mask func(i int) bool) {
	if limit := len(buf) / 4; n > limit {
		n = limit
	}
	for i := 0; i < n; i++ {
		base := i * 4
		if mask(i) {
			buf[base+0] = uint8(on >> 16)
			buf[base+1] = uint8(on >> 8)
			buf[base+2] = uint8(on)
			buf[base+3] = uint8(on >> 24)
			continue
		}
		buf[base+0] = 0
		buf[base+1] = 0
		buf[base+2] = 0
		buf[base+3] = 0
	}
}
