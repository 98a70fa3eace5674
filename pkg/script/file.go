package script

import (
	"os"

	"github.com/pkg/errors"
)

// ErrScriptNotFound is returned when the script path does not resolve to a file.
var ErrScriptNotFound = errors.New("script not found")

// ReadFile reads the script at path. A missing file yields an error wrapping
// ErrScriptNotFound.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(ErrScriptNotFound, "SQL file not found: %s", path)
		}

		return "", errors.Wrapf(err, "failed to read script: %s", path)
	}

	return string(data), nil
}
