package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/importer"
	"github.com/sugerdarco/IPL-Data-Platform/internal/usecase"
)

func TestPrintStages(t *testing.T) {
	var buf bytes.Buffer
	printStages(&buf, []usecase.StageResult{
		{Stage: "teams", Written: 10, Duration: 12 * time.Millisecond},
		{Stage: "players", Skipped: true, Existing: 243},
	})

	out := buf.String()
	if !strings.Contains(out, "STAGE") {
		t.Fatalf("expected header, got %q", out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[1], "loaded") || !strings.Contains(lines[2], "skipped") {
		t.Fatalf("unexpected stage lines: %q", out)
	}
}

func TestPrintCounts_SortedByTable(t *testing.T) {
	var buf bytes.Buffer
	printCounts(&buf, importer.Counts{
		importer.TableTeams:   10,
		importer.TableMatches: 74,
	})

	out := buf.String()
	if strings.Index(out, "matches") > strings.Index(out, "teams") {
		t.Fatalf("expected tables sorted, got %q", out)
	}
	if !strings.Contains(out, "74") {
		t.Fatalf("expected match count, got %q", out)
	}
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	root := newRootCommand(&bytes.Buffer{})
	for _, name := range []string{"run", "status"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("expected %s subcommand, got %v (%v)", name, cmd, err)
		}
	}

	run, _, _ := root.Find([]string{"run"})
	for _, flag := range []string{"data-dir", "season"} {
		if run.Flags().Lookup(flag) == nil {
			t.Fatalf("expected --%s flag", flag)
		}
	}
}
