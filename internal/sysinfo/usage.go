package sysinfo

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/disk"

	"github.com/sunshine-JLU/nanobot/internal/conf"
	"github.com/sunshine-JLU/nanobot/internal/probe"
)

// MemorySection returns the physical memory block. A structured snapshot
// renders Total/Used/Available/Usage lines; a raw snapshot (the vm_stat
// path) is emitted truncated and unparsed.
func MemorySection(p probe.Provider) string {
	snap, err := p.Memory()
	if err != nil {
		if errors.Is(err, probe.ErrUnavailable) {
			return "=== Memory Information ===\nUnable to retrieve memory info"
		}
		return fmt.Sprintf("=== Memory Information ===\nError: %s", err)
	}

	if !snap.Structured() {
		return "=== Memory Information ===\n" + truncate(snap.RawDump, conf.GetRawDumpLimit())
	}

	return renderMemory(MemoryFacts{
		Total:       snap.Total,
		Used:        snap.Used,
		Available:   snap.Available,
		UsedPercent: percent(snap.Used, snap.Total),
	})
}

func renderMemory(f MemoryFacts) string {
	return fmt.Sprintf("=== Memory Information ===\nTotal: %s\nUsed: %s\nAvailable: %s\nUsage: %.1f%%",
		formatGB(f.Total), formatGB(f.Used), formatGB(f.Available), f.UsedPercent)
}

// DiskSection returns capacity of the volume holding path. On Windows the
// configured secondary volume is appended when its query succeeds; a
// failing secondary query is silently dropped.
func DiskSection(path string) string {
	primary, err := gatherDiskFacts(path)
	if err != nil {
		return fmt.Sprintf("=== Disk Information ===\nError: %s", err)
	}

	parts := []string{
		"=== Disk Information ===",
		"Current directory: " + primary.Path,
		renderDiskBody(primary),
	}

	if runtime.GOOS == "windows" {
		volume := conf.GetSecondaryVolume()
		if volume != "" && volume != primary.Path {
			if secondary, err := gatherDiskFacts(volume); err == nil {
				parts = append(parts, "", volumeHeader(volume), renderDiskBody(secondary))
			}
		}
	}
	return strings.Join(parts, "\n")
}

func gatherDiskFacts(path string) (DiskFacts, error) {
	stat, err := disk.Usage(path)
	if err != nil {
		return DiskFacts{}, fmt.Errorf("failed to get disk usage for path %s: %w", path, err)
	}

	return DiskFacts{
		Path:        path,
		Total:       stat.Total,
		Used:        stat.Used,
		Free:        stat.Free,
		UsedPercent: percent(stat.Used, stat.Total),
	}, nil
}

func renderDiskBody(f DiskFacts) string {
	return fmt.Sprintf("Total: %s\nUsed: %s (%.1f%%)\nFree: %s",
		formatGB(f.Total), formatGB(f.Used), f.UsedPercent, formatGB(f.Free))
}

func volumeHeader(volume string) string {
	return strings.TrimSuffix(volume, `\`) + " Drive:"
}
