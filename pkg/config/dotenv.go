package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DotEnvPaths lists the .env files nb reads: the working directory first,
// then the config directory.
func DotEnvPaths() []string {
	paths := []string{".env"}
	if dir := ConfigDir(); dir != "" {
		paths = append(paths, filepath.Join(dir, ".env"))
	}
	return paths
}

// LoadDotEnv sets environment variables from the given .env files. Variables
// already set win over file values, and earlier files win over later ones.
// Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", path, err)
		}
	}
	return nil
}
