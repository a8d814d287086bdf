package pixmask

// Apply will XOR every channel of every pixel in buf with key, in place.
// Calling Apply again with the same key restores the original buffer.
func Apply(buf *PixelBuffer, key Key) {
	if buf == nil {
		return
	}
	k := byte(key)
	for i := range buf.Pix {
		buf.Pix[i] ^= k
	}
}

// Transform returns a masked copy of buf, leaving buf unmodified.
// Transform(Transform(buf, key), key) is always equal to buf.
func Transform(buf *PixelBuffer, key Key) *PixelBuffer {
	if buf == nil {
		return nil
	}
	out := buf.Clone()
	Apply(out, key)
	return out
}
