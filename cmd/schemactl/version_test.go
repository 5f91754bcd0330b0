package main

import (
	"runtime/debug"
	"testing"
)

func TestResolveBuild(t *testing.T) {
	bi := &debug.BuildInfo{
		GoVersion: "go1.25.3",
		Main:      debug.Module{Path: "github.com/joshuapare/schemakit/cmd/schemactl", Version: "v0.2.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	got := resolveBuild(bi, "", "", "")
	want := buildInfo{Version: "v0.2.0", Commit: "abc123", Date: "2026-10-01T12:00:00Z", GoVersion: "go1.25.3", Modified: true}
	if got != want {
		t.Fatalf("resolveBuild = %+v, want %+v", got, want)
	}

	got = resolveBuild(bi, "v1.0.0", "deadbeef", "today")
	if got.Version != "v1.0.0" || got.Commit != "deadbeef" || got.Date != "today" {
		t.Fatalf("link-time values not applied: %+v", got)
	}

	got = resolveBuild(nil, "", "", "")
	if got.Version != "(devel)" || got.Commit != "unknown" {
		t.Fatalf("missing build info: %+v", got)
	}
}

func TestVersionCommand(t *testing.T) {
	resetFlags(true)
	out, err := captureOutput(t, runVersion)
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	assertJSON(t, out)
	assertContains(t, out, []string{`"version"`, `"commit"`})
}
