package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		used     uint64
		total    uint64
		expected float64
	}{
		{"zero total", 0, 0, 0},
		{"zero total nonzero used", 100, 0, 0},
		{"quarter", 1 << 30, 4 << 30, 25},
		{"full", 10, 10, 100},
		{"empty", 0, 10, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.expected, percent(tt.used, tt.total), 0.001)
		})
	}
}

func TestFormatGB(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.00 GB", formatGB(0))
	assert.Equal(t, "1.00 GB", formatGB(1<<30))
	assert.Equal(t, "1.50 GB", formatGB(3<<29))
	assert.Equal(t, "0.25 GB", formatGB(1<<28))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", truncate("abcdef", 3))
	assert.Equal(t, "abcdef", truncate("abcdef", 10))
	assert.Equal(t, "abcdef", truncate("abcdef", 6))
	assert.Equal(t, "abcdef", truncate("abcdef", 0))
}

func TestRenderOSOmitsEmptyFields(t *testing.T) {
	t.Parallel()

	out := renderOS(OSFacts{System: "Linux", Machine: "x86_64"})
	assert.Contains(t, out, "System: Linux")
	assert.Contains(t, out, "Machine: x86_64")
	assert.NotContains(t, out, "Release:")
	assert.NotContains(t, out, "Version:")
	assert.NotContains(t, out, "Processor:")
}

func TestRenderMemory(t *testing.T) {
	t.Parallel()

	out := renderMemory(MemoryFacts{
		Total:       16 << 30,
		Used:        4 << 30,
		Available:   12 << 30,
		UsedPercent: 25,
	})
	assert.Equal(t, "=== Memory Information ===\nTotal: 16.00 GB\nUsed: 4.00 GB\nAvailable: 12.00 GB\nUsage: 25.0%", out)
}

func TestVolumeHeader(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "C: Drive:", volumeHeader(`C:\`))
	assert.Equal(t, "D: Drive:", volumeHeader("D:"))
}

func TestTitleGOOS(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Linux", titleGOOS("linux"))
	assert.Equal(t, "Darwin", titleGOOS("darwin"))
	assert.Equal(t, "Windows", titleGOOS("windows"))
	assert.Equal(t, "Freebsd", titleGOOS("freebsd"))
	assert.Equal(t, "", titleGOOS(""))
}
