//go:build !linux && !darwin && !windows

package probe

type fallbackProvider struct{}

func newProvider() Provider { return fallbackProvider{} }

func (fallbackProvider) CPUModel() string { return "" }

func (fallbackProvider) Memory() (MemorySnapshot, error) {
	return MemorySnapshot{}, ErrUnavailable
}
