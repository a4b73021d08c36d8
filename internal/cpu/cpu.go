// Package cpu reports processor capabilities for diagnostics output.
package cpu

import (
	"runtime"

	xcpu "golang.org/x/sys/cpu"
)

// Features describes the SIMD capabilities of the current processor. The
// transforms in this module are scalar; the report exists so benchmark
// output can be compared across machines.
type Features struct {
	HasAVX2      bool
	HasAVX512    bool
	HasSSE2      bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasAVX2:      xcpu.X86.HasAVX2,
		HasAVX512:    xcpu.X86.HasAVX512,
		HasSSE2:      xcpu.X86.HasSSE2,
		HasNEON:      xcpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
