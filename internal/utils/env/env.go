// Package env parses KEY=VALUE environment variable specs handed to step
// scripts.
package env

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var keyRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ParseSpecs parses a list of environment variable specs into a map.
// "KEY=VALUE" sets the value directly and "KEY" looks the value up in the
// process environment, failing when it is not set.
func ParseSpecs(specs []string) (map[string]string, error) {
	parsed := make(map[string]string, len(specs))
	for _, spec := range specs {
		key, value, hasValue := strings.Cut(spec, "=")
		if !keyRegexp.MatchString(key) {
			return nil, fmt.Errorf("invalid environment variable key %q", key)
		}

		if !hasValue {
			v, ok := os.LookupEnv(key)
			if !ok {
				return nil, fmt.Errorf("environment variable %q is not set", key)
			}
			value = v
		}

		parsed[key] = value
	}

	return parsed, nil
}

// Merge combines two env maps, the override winning on key collisions.
func Merge(base, override map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}

	return merged
}
