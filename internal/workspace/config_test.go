package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openclaw/clawctl/internal/testutil/testlog"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workspace.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	testlog.Start(t)
	cfg := DefaultConfig()
	if !strings.HasSuffix(cfg.Root, filepath.Join(".openclaw", "workspace")) {
		t.Fatalf("unexpected root: %q", cfg.Root)
	}
	if cfg.VersionFile != filepath.Join(cfg.Root, "VERSION") {
		t.Fatalf("unexpected version file: %q", cfg.VersionFile)
	}
	if cfg.BoardFile != filepath.Join(cfg.Root, "task-board.json") {
		t.Fatalf("unexpected board file: %q", cfg.BoardFile)
	}
	if filepath.Base(cfg.StagingFile) != "tasks_updated.json" {
		t.Fatalf("unexpected staging file: %q", cfg.StagingFile)
	}
	if cfg.PanelPort != 8773 {
		t.Fatalf("unexpected panel port: %d", cfg.PanelPort)
	}
	if cfg.ReservedPortMin != 8760 || cfg.ReservedPortMax != 8799 {
		t.Fatalf("unexpected reserved range: %d-%d", cfg.ReservedPortMin, cfg.ReservedPortMax)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadOverlaysOntoDefaults(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `
root = "/srv/claw"
panel_port = 8700
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Root != "/srv/claw" {
		t.Fatalf("unexpected root: %q", cfg.Root)
	}
	if cfg.VersionFile != filepath.Join("/srv/claw", "VERSION") {
		t.Fatalf("version file not re-rooted: %q", cfg.VersionFile)
	}
	if cfg.BoardFile != filepath.Join("/srv/claw", "task-board.json") {
		t.Fatalf("board file not re-rooted: %q", cfg.BoardFile)
	}
	if cfg.PanelPort != 8700 {
		t.Fatalf("panel port override lost: %d", cfg.PanelPort)
	}
	// Untouched keys keep their defaults.
	if cfg.ReservedPortMin != 8760 {
		t.Fatalf("unexpected reserved min: %d", cfg.ReservedPortMin)
	}
}

func TestLoadResolvesRelativePathsUnderRoot(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `
root = "/srv/claw"
version_file = "release/VERSION"
board_file = "/var/board/task-board.json"
staging_file = "incoming/tasks.json"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.VersionFile != filepath.Join("/srv/claw", "release", "VERSION") {
		t.Fatalf("unexpected version file: %q", cfg.VersionFile)
	}
	if cfg.BoardFile != "/var/board/task-board.json" {
		t.Fatalf("absolute board file rewritten: %q", cfg.BoardFile)
	}
	if cfg.StagingFile != filepath.Join("/srv/claw", "incoming", "tasks.json") {
		t.Fatalf("unexpected staging file: %q", cfg.StagingFile)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		name    string
		content string
	}{
		{"panel port out of range", "panel_port = 0"},
		{"inverted reserved range", "reserved_port_min = 9000\nreserved_port_max = 8000"},
		{"not toml", "{\"json\": true}"},
	}
	for _, tc := range cases {
		if _, err := Load(writeConfig(t, tc.content)); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	testlog.Start(t)
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestResolveEmptyPathUsesDefaults(t *testing.T) {
	testlog.Start(t)
	cfg, err := Resolve("  ")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestWriteTemplateRefusesOverwrite(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "workspace.toml")
	if err := WriteTemplate(path, false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	if err := WriteTemplate(path, false); err == nil {
		t.Fatalf("expected overwrite refusal")
	}
	if err := WriteTemplate(path, true); err != nil {
		t.Fatalf("forced overwrite: %v", err)
	}
	// The shipped template must load cleanly.
	if _, err := Load(path); err != nil {
		t.Fatalf("template does not load: %v", err)
	}
}
