package fourcc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	rgba := Must(FromString("RGBA"))
	argb := Must(FromString("ARGB"))

	assert.Equal(t, 0, rgba.Compare(rgba))
	assert.Equal(t, 1, rgba.Compare(argb))
	assert.Equal(t, -1, argb.Compare(rgba))

	assert.True(t, argb.Less(rgba))
	assert.False(t, rgba.Less(argb))
	assert.False(t, rgba.Less(rgba))

	assert.True(t, rgba.Equal(rgba))
	assert.False(t, rgba.Equal(argb))
}

func TestCompare_UnsignedByteOrder(t *testing.T) {
	// 0x80 must order above 0x7F: comparison is over unsigned bytes.
	low := FourCC{0x7F, 0x00, 0x00, 0x00}
	high := FourCC{0x80, 0x00, 0x00, 0x00}
	assert.True(t, low.Less(high))

	// First differing byte decides.
	a := FourCC{'a', 'a', 'a', 'z'}
	b := FourCC{'a', 'a', 'b', 'a'}
	assert.True(t, a.Less(b))
}

func TestEqualForeign(t *testing.T) {
	rgba := Must(FromString("RGBA"))

	assert.True(t, rgba.EqualBytes([]byte{0x52, 0x47, 0x42, 0x41}))
	assert.True(t, rgba.EqualBytes([]byte("RGBA with a tail")))
	assert.True(t, rgba.EqualString("RGBA"))
	assert.True(t, rgba.EqualUint32(rgbaUint32))

	assert.False(t, rgba.EqualBytes([]byte("ARGB")))
	assert.False(t, rgba.EqualString("ARGB"))
	assert.False(t, rgba.EqualUint32(argbUint32))

	// Short input equals no code, including the zero code.
	assert.False(t, rgba.EqualBytes([]byte("RGB")))
	assert.False(t, rgba.EqualString(""))
	assert.False(t, FourCC{}.EqualBytes(nil))
	assert.False(t, FourCC{}.EqualString(""))
}

func TestCompareForeign(t *testing.T) {
	rgba := Must(FromString("RGBA"))

	// Ordering agrees across every representation of the same value.
	n, err := rgba.CompareString("ARGB")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = rgba.CompareBytes([]byte("ARGB"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t, 1, rgba.CompareUint32(argbUint32))
	assert.Equal(t, 0, rgba.CompareUint32(rgbaUint32))

	n, err = rgba.CompareString("RGBZ")
	require.NoError(t, err)
	assert.Equal(t, -1, n)

	_, err = rgba.CompareString("RGB")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShortInput))

	_, err = rgba.CompareBytes(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShortInput))
}

func TestCompare_Transitive(t *testing.T) {
	a := Must(FromString("ARGB"))
	b := Must(FromString("BGRA"))
	c := Must(FromString("RGBA"))

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.True(t, a.Less(c))

	// The same chain holds through the integer view.
	assert.Equal(t, -1, a.CompareUint32(b.Uint32()))
	assert.Equal(t, -1, b.CompareUint32(c.Uint32()))
	assert.Equal(t, -1, a.CompareUint32(c.Uint32()))
}
