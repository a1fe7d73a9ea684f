package sidescroll

// checksumOffset is where the checksummed payload of a CMF file begins:
// right after the magic signature and the checksum field itself.
const checksumOffset = 8

// Checksum computes the CMF payload checksum. Two 16-bit accumulators run
// over the bytes: a plain sum, and a sum weighted by the 1-based position of
// each byte. Both wrap on overflow. The result packs the plain sum in the
// high half and the weighted sum in the low half.
//
// It detects accidental corruption only.
func Checksum(payload []byte) uint32 {
	var sum, weighted, count uint16
	for _, b := range payload {
		count++
		sum += uint16(b)
		weighted += uint16(b) * count
	}
	return uint32(sum)<<16 | uint32(weighted)
}
