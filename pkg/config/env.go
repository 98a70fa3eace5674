package config

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/pseudomuto/storekeeper/pkg/consts"
)

// LookupFunc resolves an environment variable. It has the signature of
// os.LookupEnv.
type LookupFunc func(string) (string, bool)

var varRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Expand replaces every ${VAR} reference in s using lookup. A reference to an
// undefined variable is an error. Bare $VAR references are left untouched.
func Expand(s string, lookup LookupFunc) (string, error) {
	var missing string

	out := varRef.ReplaceAllStringFunc(s, func(ref string) string {
		name := varRef.FindStringSubmatch(ref)[1]
		if v, ok := lookup(name); ok {
			return v
		}

		if missing == "" {
			missing = name
		}
		return ref
	})

	if missing != "" {
		return "", errors.Errorf("undefined environment variable: %s", missing)
	}

	return out, nil
}

// dotenvLookup returns a LookupFunc that consults lookup first and then the
// .env file in dir, if one exists.
func dotenvLookup(dir string, lookup LookupFunc) (LookupFunc, error) {
	path := filepath.Join(dir, consts.DotenvFile)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return lookup, nil
		}
		return nil, errors.Wrapf(err, "failed to access %s", path)
	}

	if info.IsDir() {
		return lookup, nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	return func(name string) (string, bool) {
		if v, ok := lookup(name); ok {
			return v, true
		}

		v, ok := values[name]
		return v, ok
	}, nil
}
