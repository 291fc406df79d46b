package flag

import (
	"os"

	"github.com/spf13/pflag"

	"github.com/terrafirma2021/makcu-version/model"
)

const (
	envLogLevel  = "MAKCU_VERSION_LOG_LEVEL"
	envLogFormat = "MAKCU_VERSION_LOG_FORMAT"
	envDBPath    = "MAKCU_VERSION_DB_PATH"
)

// NewService creates a new flag service.
func NewService() Service {
	return &service{}
}

// GetParsedFlags parses and returns the command-line flags of the resolve command.
func (s *service) GetParsedFlags() (model.Flags, error) {
	flags := bindCommon(pflag.CommandLine)
	version := pflag.BoolP("version", "v", false, "Show version information of this tool")

	pflag.Parse()

	flags.version = *version
	return flags.get(), nil
}

// GetParsedCheckFlags parses the flags of the check command from args.
func (s *service) GetParsedCheckFlags(args []string) (model.CheckFlags, error) {
	fs := pflag.NewFlagSet("check", pflag.ContinueOnError)
	flags := bindCommon(fs)
	latest := fs.String("latest", "", "Latest published version to compare against")
	latestConfig := fs.String("latest-config", "", "Path to a published config.json to compare against")
	firmwareLeft := fs.String("firmware-left", "", "Installed left-side firmware version")
	firmwareRight := fs.String("firmware-right", "", "Installed right-side firmware version")

	if err := fs.Parse(args); err != nil {
		return model.CheckFlags{}, err
	}

	return model.CheckFlags{
		Flags:         flags.get(),
		Latest:        *latest,
		LatestConfig:  *latestConfig,
		FirmwareLeft:  *firmwareLeft,
		FirmwareRight: *firmwareRight,
	}, nil
}

type commonFlags struct {
	metadata   *string
	executable *string
	output     *string
	store      *bool
	dbPath     *string
	logLevel   *string
	logFormat  *string
	noBanner   *bool
	version    bool
}

func bindCommon(fs *pflag.FlagSet) *commonFlags {
	return &commonFlags{
		metadata:   fs.StringP("metadata", "m", "", "Path to the bundled config.json (default: beside the executable)"),
		executable: fs.StringP("executable", "e", "", "Executable path to inspect (default: the running process)"),
		output:     fs.StringP("output", "o", "table", "Output format (table, json, or plain)"),
		store:      fs.Bool("store", false, "Record the result in the local SQLite history"),
		dbPath:     fs.String("db-path", os.Getenv(envDBPath), "Custom SQLite database path (default ~/.makcu-version/history.db)"),
		logLevel:   fs.String("log-level", envOr(envLogLevel, "warn"), "Set the log level (debug, info, warn, error)"),
		logFormat:  fs.String("log-format", envOr(envLogFormat, "text"), "Set the log format (text, logfmt, json)"),
		noBanner:   fs.Bool("no-banner", false, "Do not print the title banner"),
	}
}

func (c *commonFlags) get() model.Flags {
	return model.Flags{
		MetadataPath:   *c.metadata,
		ExecutablePath: *c.executable,
		Version:        c.version,
		Output:         *c.output,
		Store:          *c.store,
		DBPath:         *c.dbPath,
		LogLevel:       *c.logLevel,
		LogFormat:      *c.logFormat,
		NoBanner:       *c.noBanner,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
