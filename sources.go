package artemis

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// RegisterYAML registers every top-level key of a YAML mapping as a named entry.
// Scalars keep their decoded Go type (string, int, float64, bool); nested
// mappings and sequences are registered as map[string]any and []any.
//
//	greeting: hello
//	max_players: 8
func (c *WorldConfiguration) RegisterYAML(data []byte) *WorldConfiguration {
	if len(bytes.TrimSpace(data)) == 0 {
		c.errs = append(c.errs, ConfigurationError{Source: "yaml", Cause: errors.New("document is empty")})
		return c
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		c.errs = append(c.errs, ConfigurationError{Source: "yaml", Cause: fmt.Errorf("decode: %w", err)})
		return c
	}

	return c.registerAll(doc)
}

// RegisterEnvFiles reads dotenv files and registers each variable as a named string entry.
// Later files win when a variable is repeated. The process environment is not modified.
func (c *WorldConfiguration) RegisterEnvFiles(files ...string) *WorldConfiguration {
	vars, err := godotenv.Read(files...)
	if err != nil {
		c.errs = append(c.errs, ConfigurationError{Source: "env", Cause: err})
		return c
	}

	doc := make(map[string]any, len(vars))
	for k, v := range vars {
		doc[k] = v
	}

	return c.registerAll(doc)
}

// registerAll registers doc in key order so the configuration stays deterministic.
func (c *WorldConfiguration) registerAll(doc map[string]any) *WorldConfiguration {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		c.RegisterNamed(k, doc[k])
	}

	return c
}
