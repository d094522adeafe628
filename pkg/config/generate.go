package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dots/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// Generate renders cfg as TOML
func Generate(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.Bytes(), nil
}

// GenerateConfigContent returns a starter config file: the defaults with
// every value commented out.
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultConfigContent())
}

// WriteConfigFile writes the starter config to path. An existing file is
// left alone and reported as ErrAlreadyExists.
func WriteConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrAlreadyExists, "config file %s already exists", path).
			WithDetail("path", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "failed to create config directory")
	}
	if err := os.WriteFile(path, []byte(GenerateConfigContent()), 0644); err != nil {
		return errors.Wrap(err, errors.ErrConfigWrite, "failed to write config file")
	}
	return nil
}

// commentOutConfigValues comments out every assignment, keeping blank
// lines, comments and section headers.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
