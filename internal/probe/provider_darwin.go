//go:build darwin

package probe

import "fmt"

type darwinProvider struct{}

func newProvider() Provider { return darwinProvider{} }

// CPUModel queries the CPU brand string through sysctl
func (darwinProvider) CPUModel() string {
	out, err := runCommand("sysctl", "-n", "machdep.cpu.brand_string")
	if err != nil {
		return ""
	}
	return out
}

// Memory returns raw vm_stat output; callers render it untouched
func (darwinProvider) Memory() (MemorySnapshot, error) {
	out, err := runCommand("vm_stat")
	if err != nil {
		return MemorySnapshot{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return MemorySnapshot{RawDump: out}, nil
}
