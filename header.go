package bitset

import (
	"fmt"
	"strings"
)

// Flags are advisory state bits carried in a bitset header. No operation in
// this package reads or enforces them.
type Flags uint16

const (
	// FlagActive marks a set as live in the caller's working collection.
	FlagActive Flags = 1 << iota
	// FlagCompressed marks a set whose contents are held in compressed form.
	FlagCompressed
	// FlagCanBeFreed marks a set whose storage may be released.
	FlagCanBeFreed
)

// Has reports whether every bit of flag is set in f.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// String renders f as "active|compressed", or "none".
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	if f.Has(FlagActive) {
		parts = append(parts, "active")
	}
	if f.Has(FlagCompressed) {
		parts = append(parts, "compressed")
	}
	if f.Has(FlagCanBeFreed) {
		parts = append(parts, "can-be-freed")
	}
	if rest := f &^ (FlagActive | FlagCompressed | FlagCanBeFreed); rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint16(rest)))
	}
	return strings.Join(parts, "|")
}

// Header is the metadata record kept alongside a bitset's data words:
// the number of data words, advisory flags and a 16-bit tag.
type Header struct {
	size  uint32
	flags Flags
	tag   uint16
}

// Size returns the number of data words.
func (h Header) Size() int { return int(h.size) }

// Flags returns the advisory flags.
func (h Header) Flags() Flags { return h.flags }

// Tag returns the tag.
func (h Header) Tag() uint16 { return h.tag }

// Pack encodes h into one storage word: size in bits 0-31, flags in bits
// 32-47 and tag in bits 48-63.
func (h Header) Pack() uint64 {
	return uint64(h.size) | uint64(h.flags)<<32 | uint64(h.tag)<<48
}

// UnpackHeader decodes a word produced by Header.Pack.
func UnpackHeader(w uint64) Header {
	return Header{
		size:  uint32(w),
		flags: Flags(w >> 32),
		tag:   uint16(w >> 48),
	}
}
