// Package fourcc implements the four character code (FourCC) value type.
//
// A FourCC is a 32-bit identifier conventionally rendered as four ASCII
// characters (e.g. "RGBA"). Media containers, chunked binary formats, and
// codec registries use FourCC values as tags; this package provides the
// tag type those formats share.
//
// # Representation
//
// A FourCC is exactly four bytes, stored in the order given at
// construction:
//
//	[b0][b1][b2][b3]
//
// Two views are defined over the same bytes:
//   - Textual: each byte read as one character. The code is valid when
//     every byte is a printable ASCII graphic character (0x21-0x7E).
//   - Numeric: the four bytes as a single 32-bit unsigned integer in
//     big-endian order (b0 is the most significant byte).
//
// The views are always consistent: bytes -> integer -> bytes is the
// identity, and equality, ordering, and map-key behavior depend only on
// the stored bytes regardless of which representation a value was built
// from.
//
// # Usage
//
// Building and inspecting a code:
//
//	rgba, err := fourcc.FromString("RGBA")
//	if err != nil {
//	    return err
//	}
//
//	rgba.Uint32()  // 1380401729
//	rgba.IsValid() // true
//	rgba.String()  // "RGBA"
//	rgba.Quoted()  // "'RGBA'"
//
// FourCC is a comparable fixed-size array type: values are copied, never
// shared, and can be used directly as map keys. Two codes built from
// different representations of the same bytes are interchangeable as
// keys.
//
// The only failure mode is construction from fewer than four bytes,
// reported as ErrShortInput. Every other operation is total, including
// rendering of invalid codes.
package fourcc
