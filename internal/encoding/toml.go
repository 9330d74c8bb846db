// Package encoding provides utilities for encoding and decoding data.
package encoding

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LoadTOML reads a TOML file and unmarshals it into a new value of type T.
// An empty file yields the zero value. Decode failures are returned as
// *toml.DecodeError so callers can report the position.
func LoadTOML[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	var result T
	if err := toml.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
