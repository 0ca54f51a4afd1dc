// Package codec encodes and decodes values as JSON or YAML.
package codec

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	libjson "encoding/json"

	libyaml "go.yaml.in/yaml/v3"
)

var ErrUnknownFormat = errors.New("unknown format")

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

type RawMessage = libjson.RawMessage

// FormatFromPath guesses the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

func Marshal[T any](format Format, v T) ([]byte, error) {
	switch format {
	case FormatJSON:
		return libjson.Marshal(v)
	case FormatYAML:
		return libyaml.Marshal(v)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func Unmarshal[T any](format Format, data []byte) (T, error) {
	var (
		v   T
		err error
	)

	switch format {
	case FormatJSON:
		err = libjson.Unmarshal(data, &v)
	case FormatYAML:
		err = libyaml.Unmarshal(data, &v)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	return v, err
}

// MarshalToFile writes v to filename in the format matching its extension.
func MarshalToFile[T any](v T, filename string) error {
	format, err := FormatFromPath(filename)
	if err != nil {
		return err
	}

	data, err := Marshal(format, v)
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0600)
}

// UnmarshalFromFile reads filename in the format matching its extension.
func UnmarshalFromFile[T any](filename string) (T, error) {
	format, err := FormatFromPath(filename)
	if err != nil {
		var v T

		return v, err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		var v T

		return v, err
	}

	return Unmarshal[T](format, data)
}
