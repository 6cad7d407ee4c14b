// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads optional credentials from a directory of plain-text
// files: the filename is the key, the trimmed file contents are the value.
// paperwatch reads one key, openalex-email, used for polite pool access.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OpenAlexEmailKey is the filename holding the contact email sent to
// OpenAlex as the mailto parameter.
const OpenAlexEmailKey = "openalex-email"

// Load reads every regular file in dir into a key→value map. A missing
// directory is not an error and yields an empty map, so running without a
// .secrets/ directory is the normal case. Dotfiles and empty values are
// skipped; an unreadable file warns on stderr and is skipped.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}
	return secrets, nil
}
