package numeric

import "github.com/cwbudde/algo-vecmath/cpu"

// SIMDLevel names the kernel family algo-vecmath dispatches to on this CPU.
func SIMDLevel() string {
	f := cpu.DetectFeatures()
	switch {
	case f.ForceGeneric:
		return "generic"
	case f.HasAVX2:
		return "avx2"
	case f.HasSSE2:
		return "sse2"
	case f.HasNEON:
		return "neon"
	default:
		return "generic"
	}
}

// Architecture returns the GOARCH reported by feature detection.
func Architecture() string {
	return cpu.DetectFeatures().Architecture
}
