package config

import (
	_ "embed"
	"strings"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON string

var schemaLoader = gojsonschema.NewStringLoader(schemaJSON)

// Validate checks cfg against the embedded configuration schema. Every
// violation is included in the returned error.
func Validate(cfg *Config) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(cfg))
	if err != nil {
		return errors.Wrap(err, "failed to validate config")
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}

	return errors.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
