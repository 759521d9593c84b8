package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config carries the workspace paths and ports shared by the clawctl tools.
type Config struct {
	Root            string
	VersionFile     string
	BoardFile       string
	StagingFile     string
	PanelPort       int
	ReservedPortMin int
	ReservedPortMax int
}

// fileConfig is the on-disk TOML shape. Relative file entries resolve under root.
type fileConfig struct {
	Root            string `toml:"root"`
	VersionFile     string `toml:"version_file"`
	BoardFile       string `toml:"board_file"`
	StagingFile     string `toml:"staging_file"`
	PanelPort       int    `toml:"panel_port"`
	ReservedPortMin int    `toml:"reserved_port_min"`
	ReservedPortMax int    `toml:"reserved_port_max"`
}

// DefaultConfig reproduces the fixed paths the original tooling hardcoded:
// ~/.openclaw/workspace for persistent files, the system temp dir for staging.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	root := filepath.Join(home, ".openclaw", "workspace")
	return Config{
		Root:            root,
		VersionFile:     filepath.Join(root, "VERSION"),
		BoardFile:       filepath.Join(root, "task-board.json"),
		StagingFile:     filepath.Join(os.TempDir(), "tasks_updated.json"),
		PanelPort:       8773,
		ReservedPortMin: 8760,
		ReservedPortMax: 8799,
	}
}

// Load overlays a TOML file onto the defaults. Only keys present in the file
// override; relative paths are resolved against the configured root.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load workspace config: %w", err)
	}

	if meta.IsDefined("root") {
		root := expandHome(strings.TrimSpace(raw.Root))
		if root != "" {
			cfg.Root = root
			cfg.VersionFile = filepath.Join(root, "VERSION")
			cfg.BoardFile = filepath.Join(root, "task-board.json")
		}
	}
	if meta.IsDefined("version_file") {
		cfg.VersionFile = resolveUnder(cfg.Root, raw.VersionFile)
	}
	if meta.IsDefined("board_file") {
		cfg.BoardFile = resolveUnder(cfg.Root, raw.BoardFile)
	}
	if meta.IsDefined("staging_file") {
		cfg.StagingFile = resolveUnder(cfg.Root, raw.StagingFile)
	}
	if meta.IsDefined("panel_port") {
		cfg.PanelPort = raw.PanelPort
	}
	if meta.IsDefined("reserved_port_min") {
		cfg.ReservedPortMin = raw.ReservedPortMin
	}
	if meta.IsDefined("reserved_port_max") {
		cfg.ReservedPortMax = raw.ReservedPortMax
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve returns the defaults when no config path is given.
func Resolve(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultConfig(), nil
	}
	return Load(path)
}

func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.Root) == "" {
		return fmt.Errorf("workspace config missing root")
	}
	if strings.TrimSpace(cfg.VersionFile) == "" {
		return fmt.Errorf("workspace config missing version file")
	}
	if strings.TrimSpace(cfg.BoardFile) == "" {
		return fmt.Errorf("workspace config missing board file")
	}
	if strings.TrimSpace(cfg.StagingFile) == "" {
		return fmt.Errorf("workspace config missing staging file")
	}
	if err := validatePort("panel_port", cfg.PanelPort); err != nil {
		return err
	}
	if err := validatePort("reserved_port_min", cfg.ReservedPortMin); err != nil {
		return err
	}
	if err := validatePort("reserved_port_max", cfg.ReservedPortMax); err != nil {
		return err
	}
	if cfg.ReservedPortMin > cfg.ReservedPortMax {
		return fmt.Errorf(
			"workspace config reserved range inverted: %d > %d",
			cfg.ReservedPortMin, cfg.ReservedPortMax,
		)
	}
	return nil
}

func validatePort(name string, port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("workspace config %s out of range: %d", name, port)
	}
	return nil
}

func resolveUnder(root string, path string) string {
	resolved := expandHome(strings.TrimSpace(path))
	if resolved == "" || filepath.IsAbs(resolved) {
		return resolved
	}
	return filepath.Join(root, resolved)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~"+string(os.PathSeparator)) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
