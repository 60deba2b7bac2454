// Package probe reads raw platform facts (CPU identity, physical memory)
// from whichever source is authoritative for the running OS family.
package probe

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/sunshine-JLU/nanobot/internal/conf"
)

// ErrUnavailable marks a memory source that could not be queried at all,
// as opposed to one that failed mid-parse.
var ErrUnavailable = errors.New("memory info unavailable")

// MemorySnapshot holds one reading of physical memory. Either the byte
// counts are populated or RawDump carries unparsed utility output.
type MemorySnapshot struct {
	Total     uint64
	Used      uint64
	Available uint64
	RawDump   string
}

// Structured reports whether the snapshot carries parsed byte counts
func (s MemorySnapshot) Structured() bool {
	return s.RawDump == ""
}

// Provider reads platform facts for one OS family. Implementations never
// log and never fail loudly: an unknown CPU model is an empty string, a
// dead memory source is an error the caller renders as text.
type Provider interface {
	CPUModel() string
	Memory() (MemorySnapshot, error)
}

var defaultProvider Provider = newProvider()

// Default returns the Provider selected for the running platform
func Default() Provider {
	return defaultProvider
}

// runCommand runs an external utility under the configured probe timeout
// and returns its trimmed stdout
func runCommand(name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), conf.GetProbeTimeout())
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
