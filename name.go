package sidescroll

import "fmt"

// NameSize is the capacity in bytes of a resource name field.
const NameSize = 16

// ResourceName is a bounded resource identifier as stored in a map header.
// It never holds more than NameSize bytes and does not rely on a terminator.
type ResourceName struct {
	buf [NameSize]byte
	n   uint8
}

// NewResourceName returns a ResourceName holding s. It fails with ErrRange
// when s does not fit in NameSize bytes or contains a NUL byte.
func NewResourceName(s string) (ResourceName, error) {
	var rn ResourceName
	if len(s) > NameSize {
		return rn, fmt.Errorf("sidescroll: name %q is %d bytes, max %d: %w", s, len(s), NameSize, ErrRange)
	}
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return rn, fmt.Errorf("sidescroll: name %q contains a NUL byte: %w", s, ErrRange)
		}
	}
	rn.n = uint8(copy(rn.buf[:], s))
	return rn, nil
}

// resourceNameFromField reads a fixed-width header field. The name ends at
// the first NUL byte or at the end of the field.
func resourceNameFromField(field [NameSize]byte) ResourceName {
	rn := ResourceName{buf: field}
	for rn.n < NameSize && field[rn.n] != 0 {
		rn.n++
	}
	for i := int(rn.n); i < NameSize; i++ {
		rn.buf[i] = 0
	}
	return rn
}

// field returns the zero-padded header encoding of the name.
func (rn ResourceName) field() [NameSize]byte {
	return rn.buf
}

// String returns the name.
func (rn ResourceName) String() string {
	return string(rn.buf[:rn.n])
}

// Len returns the length of the name in bytes.
func (rn ResourceName) Len() int {
	return int(rn.n)
}

// IsZero reports whether the name is empty.
func (rn ResourceName) IsZero() bool {
	return rn.n == 0
}
