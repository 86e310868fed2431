package fourcc

import "bytes"

// Comparison is lexicographic over the four stored bytes: unsigned
// byte-wise, first differing byte decides. Foreign representations are
// normalized through the matching constructor first, so ordering and
// equality agree across bytes, strings, and integers by construction.

// Compare returns -1, 0, or 1 ordering f against o.
func (f FourCC) Compare(o FourCC) int {
	return bytes.Compare(f[:], o[:])
}

// Less reports whether f orders before o.
func (f FourCC) Less(o FourCC) bool {
	return f.Compare(o) < 0
}

// Equal reports whether f and o hold identical bytes.
func (f FourCC) Equal(o FourCC) bool {
	return f == o
}

// EqualBytes reports whether f equals the code built from b.
// Short input equals no code.
func (f FourCC) EqualBytes(b []byte) bool {
	o, err := FromBytes(b)
	return err == nil && f == o
}

// EqualString reports whether f equals the code built from s.
// Short input equals no code.
func (f FourCC) EqualString(s string) bool {
	o, err := FromString(s)
	return err == nil && f == o
}

// EqualUint32 reports whether f equals the code built from n.
func (f FourCC) EqualUint32(n uint32) bool {
	return f == FromUint32(n)
}

// CompareBytes orders f against the code built from b. Returns
// ErrShortInput when b cannot be normalized to a code.
func (f FourCC) CompareBytes(b []byte) (int, error) {
	o, err := FromBytes(b)
	if err != nil {
		return 0, err
	}
	return f.Compare(o), nil
}

// CompareString orders f against the code built from s. Returns
// ErrShortInput when s cannot be normalized to a code.
func (f FourCC) CompareString(s string) (int, error) {
	o, err := FromString(s)
	if err != nil {
		return 0, err
	}
	return f.Compare(o), nil
}

// CompareUint32 orders f against the code built from n.
func (f FourCC) CompareUint32(n uint32) int {
	return f.Compare(FromUint32(n))
}
