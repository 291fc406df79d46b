package model

// Flags represents the command line flags of the resolve command.
type Flags struct {
	MetadataPath   string
	ExecutablePath string
	Version        bool
	Output         string
	Store          bool
	DBPath         string
	LogLevel       string
	LogFormat      string
	NoBanner       bool
}

// CheckFlags represents the command line flags of the check command.
type CheckFlags struct {
	Flags
	Latest        string
	LatestConfig  string
	FirmwareLeft  string
	FirmwareRight string
}
