package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseSteps(t *testing.T) {
	t.Parallel()

	if steps, err := parseSteps(nil); err != nil || steps != 1 {
		t.Fatalf("expected default of 1 step, got %d err=%v", steps, err)
	}
	if steps, err := parseSteps([]string{" 3 "}); err != nil || steps != 3 {
		t.Fatalf("expected 3 steps, got %d err=%v", steps, err)
	}
	if _, err := parseSteps([]string{"0"}); err == nil {
		t.Fatalf("expected error for zero steps")
	}
	if _, err := parseSteps([]string{"abc"}); err == nil {
		t.Fatalf("expected error for non-numeric steps")
	}
}

func TestParseVersionRejectsNegative(t *testing.T) {
	t.Parallel()

	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected error for negative version")
	}
	if v, err := parseVersion("1"); err != nil || v != 1 {
		t.Fatalf("unexpected version parse result: %d err=%v", v, err)
	}
}

func TestResolveMigrationsDirPrefersFlag(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MIGRATIONS_DIR", "")
	t.Setenv("MIGRATIONS_PATH", "")

	got, err := resolveMigrationsDir(dir)
	if err != nil {
		t.Fatalf("resolve dir: %v", err)
	}
	want, _ := filepath.Abs(dir)
	if got != want {
		t.Fatalf("unexpected dir: want %s got %s", want, got)
	}
}

func TestResolveMigrationsDirSkipsFiles(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	t.Setenv("MIGRATIONS_DIR", file)
	t.Setenv("MIGRATIONS_PATH", "")
	t.Chdir(t.TempDir())

	if _, err := resolveMigrationsDir(""); err == nil {
		t.Fatalf("expected error when no directory candidate exists")
	}
}
