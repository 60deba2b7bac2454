package conf

import (
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/spf13/cast"
	"os"
	"sync"
	"time"
)

var (
	Path string       // Config path
	mu   sync.RWMutex // Protects access to Conf
	Conf = Config{    // Default values
		Probe: Probe{
			Timeout:      "2s",
			RawDumpLimit: 500,
		},
		Disk: Disk{
			SecondaryVolume: `C:\`,
		},
	}
)

// LoadConfig Set Path and load config into memory
// Run this at start
func LoadConfig(path string) error {
	Path = path
	err := Update()
	if err != nil {
		if os.IsNotExist(err) {
			f, err := os.OpenFile(path, os.O_CREATE, 0644)
			defer f.Close()
			if err == nil {
				return nil
			}
		}
		return fmt.Errorf("failed to load config")
	}
	return nil
}

// Update reads the config file and loads it into the global Conf variable
func Update() (err error) {
	mu.Lock()
	defer mu.Unlock()

	if _, err = os.Stat(Path); err != nil {
		return err
	}
	_, err = toml.DecodeFile(Path, &Conf)
	if err != nil {
		return fmt.Errorf("failed to update global config %w", err)
	}
	return nil
}

// Write saves the provided config to the TOML file at the global Path
func Write(conf Config) (err error) {
	mu.Lock()
	defer mu.Unlock()

	f, err := os.Create(Path)
	if err != nil {
		return fmt.Errorf("failed to create config file %w", err)
	}
	defer f.Close()
	err = toml.NewEncoder(f).Encode(conf)
	if err != nil {
		return fmt.Errorf("failed to write config file %w", err)
	}

	// Update global config after successful write
	Conf = conf
	return nil
}

// Read returns a copy of the current configuration
func Read() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Conf
}

// GetProbeTimeout returns the subprocess probe timeout in a thread-safe manner
func GetProbeTimeout() time.Duration {
	mu.RLock()
	defer mu.RUnlock()

	d := cast.ToDuration(Conf.Probe.Timeout)
	if d <= 0 {
		d = 2 * time.Second
	}
	return d
}

// GetRawDumpLimit returns the maximum length of raw utility output kept in a report
func GetRawDumpLimit() int {
	mu.RLock()
	defer mu.RUnlock()

	if Conf.Probe.RawDumpLimit <= 0 {
		return 500
	}
	return Conf.Probe.RawDumpLimit
}

// GetDiskPath returns the configured report path, empty meaning the working directory
func GetDiskPath() string {
	mu.RLock()
	defer mu.RUnlock()
	return Conf.Disk.Path
}

// GetSecondaryVolume returns the extra volume root reported on Windows
func GetSecondaryVolume() string {
	mu.RLock()
	defer mu.RUnlock()
	return Conf.Disk.SecondaryVolume
}
