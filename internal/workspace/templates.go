package workspace

import (
	"fmt"
	"os"
)

func Template() string {
	return configTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(configTemplate), 0o600)
}

const configTemplate = `# clawctl workspace configuration
# Relative file entries resolve under root.
root = "~/.openclaw/workspace"
version_file = "VERSION"
board_file = "task-board.json"
staging_file = "/tmp/tasks_updated.json"
panel_port = 8773
reserved_port_min = 8760
reserved_port_max = 8799
`
