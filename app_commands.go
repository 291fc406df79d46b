package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/terrafirma2021/makcu-version/model"
	"github.com/terrafirma2021/makcu-version/service/flag"
	"github.com/terrafirma2021/makcu-version/service/output"
	"github.com/terrafirma2021/makcu-version/service/resolver"
	"github.com/terrafirma2021/makcu-version/service/storage"
	"github.com/terrafirma2021/makcu-version/service/updatecheck"
	"github.com/terrafirma2021/makcu-version/service/versioning"
)

func newOutput(format string, w io.Writer) output.Service {
	if w == os.Stdout {
		return output.NewService(format)
	}
	return output.NewServiceWriter(format, w)
}

func runCheckCommand(args []string, w io.Writer) error {
	flags, err := flag.NewService().GetParsedCheckFlags(args)
	if err != nil {
		return err
	}
	if err := setupLogging(flags.LogLevel, flags.LogFormat); err != nil {
		return err
	}
	if _, err := output.ParseFormat(flags.Output); err != nil {
		return err
	}

	out := newOutput(flags.Output, w)
	if w == os.Stdout {
		drawBanner(flags.Flags)
	}

	checker := updatecheck.NewService(resolver.NewService(resolver.Options{
		MetadataPath:   flags.MetadataPath,
		ExecutablePath: flags.ExecutablePath,
	}), nil)

	out.StartSpinner("Checking for updates...")
	report, err := checker.Check(context.Background(), checkInput(flags))
	out.StopSpinner()
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}

	if err := out.RenderUpdate(report); err != nil {
		return fmt.Errorf("failed to render update report: %w", err)
	}

	if !flags.Store {
		return nil
	}

	store, err := openStorage(flags.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	return storeCheck(context.Background(), store, report)
}

func checkInput(flags model.CheckFlags) updatecheck.Input {
	input := updatecheck.Input{
		LatestVersion: flags.Latest,
		LatestConfig:  flags.LatestConfig,
	}

	installed := map[string]string{}
	if flags.FirmwareLeft != "" {
		installed["left"] = flags.FirmwareLeft
	}
	if flags.FirmwareRight != "" {
		installed["right"] = flags.FirmwareRight
	}
	if len(installed) > 0 {
		input.InstalledFirmware = installed
	}

	return input
}

func storeCheck(ctx context.Context, store storage.Service, report model.UpdateReport) error {
	id, err := store.SaveCheck(ctx, storage.SaveCheckInput{
		CurrentVersion:  report.CurrentVersion,
		CurrentSource:   string(report.CurrentSource),
		LatestVersion:   report.LatestVersion,
		UpdateAvailable: report.UpdateAvailable,
		Direction:       string(report.Direction),
		ToolVersion:     version,
	})
	if err != nil {
		return fmt.Errorf("failed to store update check: %w", err)
	}
	slog.Info("update check stored", "id", id, "db", store.Path())

	return nil
}

func runNameCommand(args []string, w io.Writer) error {
	fs := pflag.NewFlagSet("name", pflag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return fmt.Errorf("usage: makcu-version name <major.minor>")
	}

	name, err := versioning.ExecutableName(rest[0])
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, name)
	return err
}

// bindLogFlags adds --log-level and --log-format to a storage sub-command.
func bindLogFlags(fs *pflag.FlagSet) (level, format *string) {
	level = fs.String("log-level", envOr("MAKCU_VERSION_LOG_LEVEL", "warn"), "Set the log level (debug, info, warn, error)")
	format = fs.String("log-format", envOr("MAKCU_VERSION_LOG_FORMAT", "text"), "Set the log format (text, logfmt, json)")
	return level, format
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func runHistoryCommand(args []string, w io.Writer) error {
	fs := pflag.NewFlagSet("history", pflag.ContinueOnError)
	dbPath := fs.String("db-path", os.Getenv("MAKCU_VERSION_DB_PATH"), "SQLite database path")
	kind := fs.String("kind", "resolutions", "History to list (resolutions or checks)")
	limit := fs.Int("limit", 20, "Number of rows to list")
	format := fs.StringP("output", "o", "table", "Output format (table, json, or plain)")
	logLevel, logFormat := bindLogFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := setupLogging(*logLevel, *logFormat); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 || rest[0] != "list" {
		return fmt.Errorf("usage: makcu-version history list [--kind resolutions|checks] [--limit N]")
	}
	if _, err := output.ParseFormat(*format); err != nil {
		return err
	}

	store, err := openStorage(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := newOutput(*format, w)

	switch *kind {
	case "resolutions":
		records, err := store.GetRecentResolutions(*limit)
		if err != nil {
			return err
		}
		return out.RenderResolutionHistory(records)
	case "checks":
		records, err := store.GetRecentChecks(*limit)
		if err != nil {
			return err
		}
		return out.RenderCheckHistory(records)
	default:
		return fmt.Errorf("unsupported history kind: %s", *kind)
	}
}

func runDBCommand(args []string, w io.Writer) error {
	fs := pflag.NewFlagSet("db", pflag.ContinueOnError)
	dbPath := fs.String("db-path", os.Getenv("MAKCU_VERSION_DB_PATH"), "SQLite database path")
	olderThan := fs.Int("older-than", 30, "Purge history older than N days")
	logLevel, logFormat := bindLogFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := setupLogging(*logLevel, *logFormat); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: makcu-version db <vacuum|purge> [--db-path ...]")
	}

	store, err := openStorage(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch rest[0] {
	case "vacuum":
		return store.Vacuum(context.Background())
	case "purge":
		count, err := store.PurgeOlderThan(context.Background(), *olderThan)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "Purged %d records\n", count)
		return err
	default:
		return fmt.Errorf("unsupported db command: %s", rest[0])
	}
}
