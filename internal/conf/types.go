package conf

type Config struct {
	Probe
	Disk
}

type Probe struct {
	Timeout      string
	RawDumpLimit int
}

type Disk struct {
	Path            string
	SecondaryVolume string
}
