package bitset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeader_PackRoundTrip(t *testing.T) {
	h := Header{size: 0xdeadbeef, flags: FlagActive | FlagCanBeFreed, tag: 0xabcd}
	w := h.Pack()

	assert.Equal(t, uint64(0xabcd_0005_deadbeef), w)
	assert.Equal(t, h, UnpackHeader(w))
}

func TestHeader_FromBitset(t *testing.T) {
	s := New(70)
	s.SetFlag(FlagCompressed)
	s.SetTag(7)

	h := s.Header()
	assert.Equal(t, 2, h.Size())
	assert.Equal(t, FlagCompressed, h.Flags())
	assert.Equal(t, uint16(7), h.Tag())
}

func TestFlags_String(t *testing.T) {
	assert.Equal(t, "none", Flags(0).String())
	assert.Equal(t, "active", FlagActive.String())
	assert.Equal(t, "active|can-be-freed", (FlagActive | FlagCanBeFreed).String())
	assert.Equal(t, "compressed|0x10", (FlagCompressed | 0x10).String())
}

func TestFlags_SetClear(t *testing.T) {
	s := New(8)
	assert.False(t, s.HasFlag(FlagActive))

	s.SetFlag(FlagActive)
	s.SetFlag(FlagCompressed)
	assert.True(t, s.HasFlag(FlagActive|FlagCompressed))
	assert.False(t, s.HasFlag(FlagCanBeFreed))

	s.ClearFlag(FlagActive)
	assert.Equal(t, FlagCompressed, s.Flags())
}

func TestTag_IncDecWrap(t *testing.T) {
	s := New(8)
	s.DecTag()
	assert.Equal(t, uint16(math.MaxUint16), s.Tag())

	s.IncTag()
	assert.Equal(t, uint16(0), s.Tag())

	s.SetTag(41)
	s.IncTag()
	assert.Equal(t, uint16(42), s.Tag())
}

func TestTagOrd(t *testing.T) {
	s := Of(100, 1, 50, 99)
	s.TagOrd()
	assert.Equal(t, uint16(3), s.Tag())
}

func TestTagOrd_Saturates(t *testing.T) {
	s := NewUniverse(math.MaxUint16 + 10)
	s.TagOrd()
	assert.Equal(t, uint16(math.MaxUint16), s.Tag())
}
