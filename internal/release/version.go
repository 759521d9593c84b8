package release

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// DefaultVersion is what the tools display when no version has been recorded.
const DefaultVersion = "0.0.0"

// Version is the workspace version with an explicit presence marker, so a
// missing VERSION file is distinguishable from a literal "0.0.0".
type Version struct {
	Value    string
	Recorded bool
}

// Display renders the version for console output.
func (v Version) Display() string {
	if !v.Recorded {
		return DefaultVersion
	}
	return v.Value
}

// Read loads the trimmed version string from path. A missing file yields an
// unrecorded version and no error; any other read failure is surfaced.
func Read(path string) (Version, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Version{}, nil
	}
	if err != nil {
		return Version{}, fmt.Errorf("read version file (%s): %w", path, err)
	}
	return Version{Value: strings.TrimSpace(string(data)), Recorded: true}, nil
}
