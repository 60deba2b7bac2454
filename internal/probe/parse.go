package probe

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// scanCPUModel returns the first "model name" value in /proc/cpuinfo-style
// input, or "" when none is present
func scanCPUModel(r io.Reader) string {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		parts := strings.SplitN(scanner.Text(), ":", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.ToLower(strings.TrimSpace(parts[0])) == "model name" {
			return strings.TrimSpace(parts[1])
		}
	}
	return ""
}

// parseMemInfo reads /proc/meminfo-style input and returns total and
// available physical memory in bytes. MemAvailable is preferred; kernels
// without it fall back to MemFree.
func parseMemInfo(r io.Reader) (total, available uint64) {
	var memFree uint64
	seenAvailable := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		valueKB, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		switch strings.TrimSuffix(fields[0], ":") {
		case "MemTotal":
			total = valueKB * 1024
		case "MemAvailable":
			available = valueKB * 1024
			seenAvailable = true
		case "MemFree":
			memFree = valueKB * 1024
		}
	}

	if !seenAvailable {
		available = memFree
	}
	return total, available
}
