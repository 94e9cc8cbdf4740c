package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a catalog file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the encoding from a file extension. Anything that is not
// .toml is read as YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Decode parses a catalog in the given format.
func Decode(data []byte, format Format) (*File, error) {
	var file File
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &file); err != nil {
			return nil, fmt.Errorf("parse catalog TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog YAML: %w", err)
		}
	}
	return &file, nil
}

// Encode writes a catalog in the given format.
func Encode(w io.Writer, file *File, format Format) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(file); err != nil {
			return fmt.Errorf("marshal catalog: %w", err)
		}
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(file); err != nil {
			return fmt.Errorf("marshal catalog: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("marshal catalog: %w", err)
		}
	}
	return nil
}

// Load reads a catalog file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Decode(data, FormatOf(path))
}

// LoadAndValidate reads a catalog and compiles it.
func LoadAndValidate(path string) (*Catalog, error) {
	file, err := Load(path)
	if err != nil {
		return nil, err
	}

	c, err := New(file)
	if err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	return c, nil
}

// Save writes a catalog file, choosing the format from the extension.
func Save(path string, file *File) error {
	var buf bytes.Buffer
	if err := Encode(&buf, file, FormatOf(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write catalog file: %w", err)
	}
	return nil
}

// Find searches dirs for a catalog called name, trying .yaml, .yml and
// .toml in that order. A name containing a path separator or an extension
// is treated as a path.
func Find(name string, dirs []string) (string, error) {
	if strings.ContainsRune(name, filepath.Separator) || filepath.Ext(name) != "" {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("catalog %s: %w", name, err)
		}
		return name, nil
	}

	for _, dir := range dirs {
		for _, ext := range []string{".yaml", ".yml", ".toml"} {
			path := filepath.Join(dir, name+ext)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
	}
	return "", fmt.Errorf("catalog %q not found in %s", name, strings.Join(dirs, ", "))
}

// List returns every catalog file in dirs. Missing directories are skipped.
func List(dirs []string) ([]string, error) {
	var paths []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read catalog dir: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			switch filepath.Ext(e.Name()) {
			case ".yaml", ".yml", ".toml":
				paths = append(paths, filepath.Join(dir, e.Name()))
			}
		}
	}
	return paths, nil
}
