// Package main is the entry point for the makcu-version application.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/terrafirma2021/makcu-version/model"
	"github.com/terrafirma2021/makcu-version/service/flag"
	"github.com/terrafirma2021/makcu-version/service/output"
	"github.com/terrafirma2021/makcu-version/service/resolver"
	"github.com/terrafirma2021/makcu-version/service/storage"
	"github.com/terrafirma2021/makcu-version/shared/banner"
	jsonoutput "github.com/terrafirma2021/makcu-version/shared/json_output"
	"github.com/terrafirma2021/makcu-version/shared/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// openStorage opens the history database. Replaced in tests.
var openStorage = storage.NewService

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "check":
			return runCheckCommand(os.Args[2:], os.Stdout)
		case "name":
			return runNameCommand(os.Args[2:], os.Stdout)
		case "history":
			return runHistoryCommand(os.Args[2:], os.Stdout)
		case "db":
			return runDBCommand(os.Args[2:], os.Stdout)
		}
	}

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := setupLogging(flags.LogLevel, flags.LogFormat); err != nil {
		return err
	}

	if flags.Version {
		return printToolVersion(os.Stdout, flags.Output, toolVersion())
	}

	if _, err := output.ParseFormat(flags.Output); err != nil {
		return err
	}
	drawBanner(flags)

	return runResolve(context.Background(), flags, output.NewService(flags.Output))
}

// setupLogging installs the default slog logger on stderr.
func setupLogging(level, format string) error {
	handler, err := logging.CreateHandlerWithStrings(os.Stderr, level, format)
	if err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}
	slog.SetDefault(slog.New(handler))

	return nil
}

func drawBanner(flags model.Flags) {
	if flags.NoBanner || flags.Output != string(output.FormatTable) || !banner.ShouldDraw() {
		return
	}
	banner.DrawBannerTitle(os.Stdout)
}

// runResolve resolves the current version, renders it and optionally records it.
func runResolve(ctx context.Context, flags model.Flags, out output.Service) error {
	res := resolver.NewService(resolver.Options{
		MetadataPath:   flags.MetadataPath,
		ExecutablePath: flags.ExecutablePath,
	}).Resolve()

	if err := out.RenderResolution(res); err != nil {
		return fmt.Errorf("failed to render resolution: %w", err)
	}

	if !flags.Store {
		return nil
	}

	store, err := openStorage(flags.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	id, err := store.SaveResolution(ctx, storage.SaveResolutionInput{
		Version:        res.Version,
		Source:         string(res.Source),
		MetadataPath:   res.MetadataPath,
		ExecutablePath: res.ExecutablePath,
		ToolVersion:    version,
	})
	if err != nil {
		return fmt.Errorf("failed to store resolution: %w", err)
	}
	slog.Info("resolution stored", "id", id, "db", store.Path())

	return nil
}

// toolVersion reports the linker-injected build info, falling back to the
// module build info for `go install` builds.
func toolVersion() model.VersionInfo {
	info := model.VersionInfo{Version: version, Commit: commit, Date: date}
	if info.Version != "dev" {
		return info
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "none" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "unknown" {
				info.Date = s.Value
			}
		}
	}

	return info
}

func printToolVersion(w io.Writer, format string, info model.VersionInfo) error {
	if format == string(output.FormatJSON) {
		return jsonoutput.PrintJSON(w, info)
	}

	_, err := fmt.Fprintf(w, "makcu-version %s (commit %s, built %s)\n", info.Version, info.Commit, info.Date)
	return err
}
