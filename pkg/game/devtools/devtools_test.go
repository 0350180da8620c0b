package devtools

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cavegen/pkg/game/generator"
)

func sampleMap(t *testing.T) *generator.Map {
	t.Helper()
	cfg := generator.DefaultConfig()
	cfg.Seed = "devtools"
	cfg.UseRandomSeed = false
	g, err := generator.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	m, err := g.Generate()
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestDumpMap(t *testing.T) {
	m := sampleMap(t)
	var buf bytes.Buffer
	if err := DumpMap(&buf, m); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"--- Metadata ---",
		`seed: "devtools"`,
		"width: 64",
		"height: 36",
		"--- Legend (cell symbols) ---",
		". = passable  # = blocked",
		"--- Rooms (",
		"--- Passages (",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump lacks %q", want)
		}
	}
	for _, line := range m.Grid.Lines() {
		if !strings.Contains(out, line+"\n") {
			t.Fatalf("dump lacks grid row %q", line)
		}
	}
	if got := strings.Count(out, "  id: "); got != len(m.Rooms) {
		t.Errorf("dump lists %d rooms, want %d", got, len(m.Rooms))
	}
}

func TestDumpMap_NoMap(t *testing.T) {
	if err := DumpMap(&bytes.Buffer{}, nil); !errors.Is(err, ErrNoMap) {
		t.Errorf("err = %v", err)
	}
	if _, err := DumpMapToFile(&generator.Map{}, ""); !errors.Is(err, ErrNoMap) {
		t.Errorf("err = %v", err)
	}
}

func TestDumpMapToFile(t *testing.T) {
	m := sampleMap(t)
	path := filepath.Join(t.TempDir(), "cave.txt")
	got, err := DumpMapToFile(m, path)
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := DumpMap(&buf, m); err != nil {
		t.Fatal(err)
	}
	if string(data) != buf.String() {
		t.Error("file content differs from DumpMap output")
	}
}

func TestSaveScreenshotHTML(t *testing.T) {
	m := sampleMap(t)
	dir := t.TempDir()
	now := time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)

	path, err := SaveScreenshotHTML(m, dir, now)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "screenshot-20240301-123045.html" {
		t.Errorf("filename = %q", filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if got := strings.Count(out, `<div class="map-row">`); got != m.Grid.Height() {
		t.Errorf("rows = %d, want %d", got, m.Grid.Height())
	}
	if !strings.Contains(out, `class="floor-main"`) {
		t.Error("main room not highlighted")
	}
	if len(m.Passages) > 0 && !strings.Contains(out, `class="endpoint"`) {
		t.Error("passage endpoints not highlighted")
	}
}
