//go:build windows

package probe

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/mem"
)

type windowsProvider struct{}

func newProvider() Provider { return windowsProvider{} }

// CPUModel has no native source here; the model line is simply omitted
func (windowsProvider) CPUModel() string { return "" }

// Memory reads the native memory status (GlobalMemoryStatusEx) via gopsutil
func (windowsProvider) Memory() (MemorySnapshot, error) {
	stat, err := mem.VirtualMemory()
	if err != nil {
		return MemorySnapshot{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var used uint64
	if stat.Total > stat.Available {
		used = stat.Total - stat.Available
	}
	return MemorySnapshot{Total: stat.Total, Used: used, Available: stat.Available}, nil
}
