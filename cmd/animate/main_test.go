package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const goodScene = `id: cli-test
title: CLI Test
entities:
  - name: dot
    frames:
      - art: "*"
    position: {x: 1, y: 1}
`

const badScene = `id: broken
entities:
  - name: dot
    position: {x: 1, y: 1}
`

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeScene(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	for _, id := range []string{"aquarium", "convoy", "fireworks", "pilot"} {
		if !strings.Contains(out, id) {
			t.Errorf("list output missing %q:\n%s", id, out)
		}
	}
}

func TestSnapshot(t *testing.T) {
	path := writeScene(t, "dot.yaml", goodScene)
	out, err := execute(t, "snapshot", path, "--frames", "1", "--width", "5", "--height", "3", "--color=false", "--border=false")
	if err != nil {
		t.Fatalf("snapshot error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("snapshot lines = %d, expected 3:\n%s", len(lines), out)
	}
	if lines[1] != " *   " {
		t.Errorf("snapshot row 1 = %q, expected %q", lines[1], " *   ")
	}
}

func TestSnapshotBorder(t *testing.T) {
	path := writeScene(t, "dot.yaml", goodScene)
	out, err := execute(t, "snapshot", path, "--frames", "1", "--width", "5", "--height", "3", "--color=false", "--border")
	if err != nil {
		t.Fatalf("snapshot error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("snapshot lines = %d, expected 5:\n%s", len(lines), out)
	}
	if lines[2] != "│ *   │" {
		t.Errorf("snapshot row 2 = %q, expected %q", lines[2], "│ *   │")
	}
}

func TestSnapshotStockIsReproducible(t *testing.T) {
	args := []string{"snapshot", "aquarium", "--frames", "30", "--width", "60", "--height", "16", "--seed", "42", "--color=false"}
	first, err := execute(t, args...)
	if err != nil {
		t.Fatalf("snapshot error = %v", err)
	}
	second, err := execute(t, args...)
	if err != nil {
		t.Fatalf("snapshot error = %v", err)
	}
	if first != second {
		t.Errorf("snapshot with a fixed seed differs between runs")
	}
}

func TestSnapshotUnknownScene(t *testing.T) {
	if _, err := execute(t, "snapshot", "no-such-scene"); err == nil {
		t.Error("snapshot of unknown scene should fail")
	}
}

func TestValidate(t *testing.T) {
	good := writeScene(t, "good.yaml", goodScene)
	bad := writeScene(t, "bad.yaml", badScene)

	out, err := execute(t, "validate", good)
	if err != nil {
		t.Fatalf("validate good error = %v", err)
	}
	if !strings.Contains(out, "ok") || !strings.Contains(out, "cli-test") {
		t.Errorf("validate output = %q, expected ok line for cli-test", out)
	}

	out, err = execute(t, "validate", good, bad)
	if err == nil {
		t.Fatal("validate with a bad file should fail")
	}
	if !strings.Contains(out, "FAIL "+bad) {
		t.Errorf("validate output missing FAIL line:\n%s", out)
	}
}

func TestInvalidFPSFlag(t *testing.T) {
	if _, err := execute(t, "list", "--fps", "0"); err == nil {
		t.Error("list --fps 0 should fail settings validation")
	}
}
