package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/telkam/iosetup/internal/template"
)

// FileStore reads and writes Config files on the local filesystem.
type FileStore struct{}

// NewFileStore creates a new FileStore.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Load reads a configuration file. Blank and comment-prefixed lines are
// discarded; every remaining line is split at the first '=' and the value is
// extracted with the same quote-tolerant run scanner the template parser
// uses. A missing file is a ConfigNotFound error; a line with no '=' is a
// ConfigInvalid error with line context.
func (s *FileStore) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewConfigError(ConfigNotFound, path, "configuration file not found")
		}
		return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file unreadable", err)
	}

	cfg := New()
	for i, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		key, rest, found := strings.Cut(trimmed, "=")
		if !found {
			return nil, NewConfigErrorWithLine(ConfigInvalid, path,
				fmt.Sprintf("malformed entry %q: no '=' separator", trimmed), i+1)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, NewConfigErrorWithLine(ConfigInvalid, path,
				fmt.Sprintf("malformed entry %q: no key", trimmed), i+1)
		}
		value, _ := template.ExtractValue(rest)
		cfg.Set(key, value)
	}
	return cfg, nil
}

// Save serializes cfg as KEY=VALUE lines in insertion order. Values are
// written verbatim, no escaping.
func (s *FileStore) Save(path string, cfg *Config) error {
	var b strings.Builder
	for _, key := range cfg.Keys() {
		value, _ := cfg.Get(key)
		b.WriteString(key)
		b.WriteString("=")
		b.WriteString(value)
		b.WriteString("\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return NewConfigErrorWithCause(ConfigWriteFailed, path, "failed to write configuration", err)
	}
	return nil
}

// Exists reports whether a file exists at path. No parsing is performed.
func (s *FileStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
