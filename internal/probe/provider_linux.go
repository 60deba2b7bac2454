//go:build linux

package probe

import (
	"fmt"
	"os"
)

type linuxProvider struct{}

func newProvider() Provider { return linuxProvider{} }

// CPUModel scans /proc/cpuinfo for the first model name entry
func (linuxProvider) CPUModel() string {
	file, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return ""
	}
	defer file.Close()

	return scanCPUModel(file)
}

// Memory parses /proc/meminfo into a structured snapshot
func (linuxProvider) Memory() (MemorySnapshot, error) {
	file, err := os.Open("/proc/meminfo")
	if err != nil {
		return MemorySnapshot{}, fmt.Errorf("failed to open /proc/meminfo: %w", err)
	}
	defer file.Close()

	total, available := parseMemInfo(file)
	var used uint64
	if total > available {
		used = total - available
	}
	return MemorySnapshot{Total: total, Used: used, Available: available}, nil
}
