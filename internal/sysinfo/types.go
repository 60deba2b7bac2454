package sysinfo

// OSFacts represents operating system identity
type OSFacts struct {
	System    string
	Release   string
	Version   string
	Machine   string
	Processor string
}

// CPUFacts represents processor facts
type CPUFacts struct {
	LogicalCores int
	Model        string
}

// MemoryFacts represents physical memory utilization
type MemoryFacts struct {
	Total       uint64
	Used        uint64
	Available   uint64
	UsedPercent float64
}

// DiskFacts represents filesystem capacity for one path
type DiskFacts struct {
	Path        string
	Total       uint64
	Used        uint64
	Free        uint64
	UsedPercent float64
}
