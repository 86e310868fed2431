package fourcc

import (
	"encoding/binary"
	"fmt"
)

// Errors
var (
	ErrShortInput = &CodeError{"input shorter than four bytes"}
)

// CodeError represents a four character code construction error
type CodeError struct {
	Message string
}

func (e *CodeError) Error() string {
	return e.Message
}

// FourCC is a four character code: four bytes stored in construction
// order, read either as four characters or as a big-endian 32-bit
// unsigned integer.
type FourCC [4]byte

// FromBytes creates a FourCC from the first four bytes of b.
// Bytes past the fourth are ignored. Returns ErrShortInput when b holds
// fewer than four bytes.
func FromBytes(b []byte) (FourCC, error) {
	if len(b) < 4 {
		return FourCC{}, fmt.Errorf("%w: got %d", ErrShortInput, len(b))
	}
	var fc FourCC
	copy(fc[:], b)
	return fc, nil
}

// FromString creates a FourCC from the first four bytes of s.
// The string is consumed as raw bytes, not runes: multi-byte UTF-8
// input contributes its encoded bytes and may be split mid-character.
// Returns ErrShortInput when s encodes to fewer than four bytes.
func FromString(s string) (FourCC, error) {
	if len(s) < 4 {
		return FourCC{}, fmt.Errorf("%w: got %d", ErrShortInput, len(s))
	}
	var fc FourCC
	copy(fc[:], s)
	return fc, nil
}

// FromUint32 creates a FourCC from the big-endian byte decomposition of n.
func FromUint32(n uint32) FourCC {
	var fc FourCC
	binary.BigEndian.PutUint32(fc[:], n)
	return fc
}

// Must returns fc and panics when err is non-nil. It wraps the fallible
// constructors in package-level declarations:
//
//	var riff = fourcc.Must(fourcc.FromString("RIFF"))
func Must(fc FourCC, err error) FourCC {
	if err != nil {
		panic(err)
	}
	return fc
}

// Bytes returns the stored bytes unchanged.
func (f FourCC) Bytes() [4]byte {
	return f
}

// Uint32 returns the code as a big-endian 32-bit unsigned integer, the
// inverse of FromUint32.
func (f FourCC) Uint32() uint32 {
	return binary.BigEndian.Uint32(f[:])
}

// IsValid reports whether all four bytes are printable ASCII graphic
// characters (0x21-0x7E). Control bytes, space, and bytes past 0x7E make
// a code invalid. Validity is recomputed from the bytes on every call.
func (f FourCC) IsValid() bool {
	for _, b := range f {
		if b < 0x21 || b > 0x7e {
			return false
		}
	}
	return true
}

// String renders the four bytes as a four-byte string with no
// delimiters. Bytes pass through verbatim, so the result is defined for
// invalid codes too; rendering never fails.
func (f FourCC) String() string {
	return string(f[:])
}

// Quoted renders the code wrapped in single quotes, e.g. 'RGBA', to
// distinguish FourCC values from plain strings in diagnostics.
func (f FourCC) Quoted() string {
	return "'" + string(f[:]) + "'"
}

// MarshalText implements encoding.TextMarshaler using the display form.
func (f FourCC) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same rule
// as FromBytes: first four bytes, ErrShortInput on short input.
func (f *FourCC) UnmarshalText(data []byte) error {
	fc, err := FromBytes(data)
	if err != nil {
		return err
	}
	*f = fc
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler; the wire form is
// the four stored bytes.
func (f FourCC) MarshalBinary() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler with the same
// rule as FromBytes.
func (f *FourCC) UnmarshalBinary(data []byte) error {
	return f.UnmarshalText(data)
}
