// Package sysinfo gathers host facts (OS identity, CPU, memory, disk) and
// renders them as banner-headed text sections. Every fact is queried fresh
// per call; a dead data source degrades its own section and nothing else.
package sysinfo

import (
	"fmt"
	"strings"

	"github.com/sunshine-JLU/nanobot/internal/probe"
)

// Categories lists the valid report selectors in report order
var Categories = []string{"all", "os", "cpu", "memory", "disk"}

// Render builds the report for the given selector. Matching is
// case-insensitive and an empty selector means "all"; anything outside
// the known set comes back as a descriptive error string, never a fault.
func Render(infoType string, p probe.Provider, cwd string) string {
	switch strings.ToLower(infoType) {
	case "", "all":
		return fullReport(p, cwd)
	case "os":
		return OSSection()
	case "cpu":
		return CPUSection(p)
	case "memory":
		return MemorySection(p)
	case "disk":
		return DiskSection(cwd)
	default:
		return fmt.Sprintf("Error: Unknown info_type '%s'. Use: all, os, cpu, memory, or disk", infoType)
	}
}

func fullReport(p probe.Provider, cwd string) string {
	parts := []string{
		"=== System Information ===",
		"",
		OSSection(),
		"",
		CPUSection(p),
		"",
		MemorySection(p),
		"",
		DiskSection(cwd),
	}
	return strings.Join(parts, "\n")
}
