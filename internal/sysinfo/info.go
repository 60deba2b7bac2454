package sysinfo

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"

	"github.com/sunshine-JLU/nanobot/internal/probe"
)

// OSSection returns the operating system identity block. Identity calls
// cannot meaningfully fail: fields the platform does not supply are
// omitted rather than reported as errors.
func OSSection() string {
	return renderOS(gatherOSFacts())
}

func gatherOSFacts() OSFacts {
	facts := OSFacts{
		System:  titleGOOS(runtime.GOOS),
		Machine: runtime.GOARCH,
	}

	hostInfo, err := host.Info()
	if err != nil {
		return facts
	}

	facts.Release = hostInfo.KernelVersion
	facts.Version = strings.TrimSpace(hostInfo.Platform + " " + hostInfo.PlatformVersion)
	if hostInfo.KernelArch != "" {
		facts.Machine = hostInfo.KernelArch
	}
	facts.Processor = hostInfo.KernelArch
	return facts
}

func renderOS(f OSFacts) string {
	var b strings.Builder
	b.WriteString("=== OS Information ===")
	writeField(&b, "System", f.System)
	writeField(&b, "Release", f.Release)
	writeField(&b, "Version", f.Version)
	writeField(&b, "Machine", f.Machine)
	writeField(&b, "Processor", f.Processor)
	return b.String()
}

// CPUSection returns the CPU block: the logical core count, plus the
// model line only when the platform probe found one
func CPUSection(p probe.Provider) string {
	facts := gatherCPUFacts(p)

	var b strings.Builder
	b.WriteString("=== CPU Information ===\n")
	if facts.LogicalCores > 0 {
		b.WriteString(fmt.Sprintf("CPU Count (logical): %d", facts.LogicalCores))
	} else {
		b.WriteString("CPU Count (logical): Unknown")
	}
	if facts.Model != "" {
		b.WriteString("\nCPU Model: " + facts.Model)
	}
	return b.String()
}

func gatherCPUFacts(p probe.Provider) CPUFacts {
	var facts CPUFacts
	if count, err := cpu.Counts(true); err == nil {
		facts.LogicalCores = count
	}
	facts.Model = p.CPUModel()
	return facts
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString("\n")
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
}

func titleGOOS(goos string) string {
	switch goos {
	case "linux":
		return "Linux"
	case "darwin":
		return "Darwin"
	case "windows":
		return "Windows"
	case "":
		return ""
	}
	return strings.ToUpper(goos[:1]) + goos[1:]
}
