package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/terrafirma2021/makcu-version/model"
	"github.com/terrafirma2021/makcu-version/service/output"
)

func TestRunResolveStoresResult(t *testing.T) {
	dir := t.TempDir()
	store := &mockStorage{}
	useMockStorage(t, store)

	var buf bytes.Buffer
	flags := model.Flags{
		MetadataPath:   filepath.Join(dir, "config.json"),
		ExecutablePath: filepath.Join(dir, "MAKCU_3_1.exe"),
		Output:         "plain",
		Store:          true,
	}
	if err := runResolve(context.Background(), flags, output.NewServiceWriter(flags.Output, &buf)); err != nil {
		t.Fatalf("runResolve failed: %v", err)
	}

	if got := strings.TrimSpace(buf.String()); got != "3.1" {
		t.Fatalf("unexpected version: %q", got)
	}
	if len(store.savedRes) != 1 || store.savedRes[0].Source != string(model.SourceExecutable) {
		t.Fatalf("resolution not stored: %+v", store.savedRes)
	}
}

func TestRunResolveMetadataWins(t *testing.T) {
	dir := t.TempDir()
	meta := writeConfig(t, dir, `{"version": "2.5"}`)

	var buf bytes.Buffer
	flags := model.Flags{
		MetadataPath:   meta,
		ExecutablePath: filepath.Join(dir, "MAKCU_3_1.exe"),
		Output:         "json",
	}
	if err := runResolve(context.Background(), flags, output.NewServiceWriter(flags.Output, &buf)); err != nil {
		t.Fatalf("runResolve failed: %v", err)
	}

	var res model.Resolution
	if err := json.Unmarshal(buf.Bytes(), &res); err != nil {
		t.Fatalf("invalid json output: %v", err)
	}
	if res.Version != "2.5" || res.Source != model.SourceMetadata {
		t.Fatalf("unexpected resolution: %+v", res)
	}
}

func TestPrintToolVersion(t *testing.T) {
	info := model.VersionInfo{Version: "v1.2.0", Commit: "abc123", Date: "2026-10-01"}

	var buf bytes.Buffer
	if err := printToolVersion(&buf, "table", info); err != nil {
		t.Fatalf("printToolVersion failed: %v", err)
	}
	if got := buf.String(); got != "makcu-version v1.2.0 (commit abc123, built 2026-10-01)\n" {
		t.Fatalf("unexpected text: %q", got)
	}

	buf.Reset()
	if err := printToolVersion(&buf, "json", info); err != nil {
		t.Fatalf("printToolVersion json failed: %v", err)
	}
	var decoded model.VersionInfo
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded != info {
		t.Fatalf("unexpected json info: %+v", decoded)
	}
}

func TestToolVersionKeepsInjectedValues(t *testing.T) {
	prev := version
	version = "v9.9.9"
	t.Cleanup(func() { version = prev })

	if got := toolVersion(); got.Version != "v9.9.9" {
		t.Fatalf("unexpected version: %+v", got)
	}
}

func TestSetupLoggingRejectsUnknownLevel(t *testing.T) {
	if err := setupLogging("loud", "text"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
