package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testGamedata = `
[[class]]
name = "CBaseEntity"
chain_offset = 0x10

  [[class.member]]
  name = "m_iHealth"
  offset = 0x34
  networked = true

  [[class.member]]
  name = "m_flSimulationTime"
  offset = 0x40

[[class]]
name = "CCSGameRules"

  [[class.member]]
  name = "m_bIsValveDS"
  offset = 0x8
  networked = true
`

// testSchemaPath writes the shared gamedata fixture and returns its path.
func testSchemaPath(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gamedata.toml")
	if err := os.WriteFile(path, []byte(testGamedata), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// resetFlags restores global flags between cases.
func resetFlags(json bool) {
	quiet = false
	verbose = false
	jsonOut = json
	configPath = ""
	configDir = ""
	configName = "schemakit"
	blacklistCheck = ""
	notifyChained = false
	notifyReadOnly = false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}
