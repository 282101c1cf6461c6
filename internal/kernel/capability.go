package kernel

import (
	"os"
	"runtime"
	"strings"
)

// ISA identifies the kernel family selected for the current CPU.
type ISA uint8

const (
	// Generic is the plain Go loop with no unrolling.
	Generic ISA = iota
	// POPCNT is x86-64 with hardware population count.
	POPCNT
	// NEON is ARM64 Advanced SIMD.
	NEON
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case POPCNT:
		return "popcnt"
	case NEON:
		return "neon"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "popcnt":
		return POPCNT, true
	case "neon":
		return NEON, true
	default:
		return Generic, false
	}
}

// EnvOverride names the environment variable consulted at init.
const EnvOverride = "BITSET_KERNEL"

var (
	activeISA   ISA
	hasOverride bool

	// CPU feature flags, set by platform-specific init.
	hasPOPCNT bool
	hasASIMD  bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv(EnvOverride); override != "" {
		if isa, ok := ParseISA(override); ok && isISAAvailable(isa) {
			hasOverride = true
			activeISA = isa
			bind(isa)
			return
		}
	}

	activeISA = selectBestISA()
	bind(activeISA)
}

func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case POPCNT:
		return hasPOPCNT
	case NEON:
		return hasASIMD
	default:
		return false
	}
}

func selectBestISA() ISA {
	switch runtime.GOARCH {
	case "amd64":
		if hasPOPCNT {
			return POPCNT
		}
	case "arm64":
		if hasASIMD {
			return NEON
		}
	}
	return Generic
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if BITSET_KERNEL selected the active ISA.
func IsOverridden() bool {
	return hasOverride
}

// HasPOPCNT returns true if x86-64 POPCNT is available.
func HasPOPCNT() bool {
	return hasPOPCNT
}

// HasASIMD returns true if ARM64 NEON is available.
func HasASIMD() bool {
	return hasASIMD
}
