package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ManifestFileName is the name of the project manifest.
const ManifestFileName = "wrangler.toml"

// LoadTarget loads the Target from the manifest at path. If path is empty it
// looks for wrangler.toml in the current directory and its parents.
// CF_ACCOUNT_ID and CF_ZONE_ID environment variables override the manifest.
func LoadTarget(path string) (*Target, error) {
	if path == "" {
		path = findManifest(".")
		if path == "" {
			return nil, fmt.Errorf("no %s found in this directory or any parent; run `wrangler generate` to start a project", ManifestFileName)
		}
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// CF_ACCOUNT_ID / CF_ZONE_ID override the manifest values.
	if err := k.Load(env.Provider("CF_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "CF_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to read environment overrides: %w", err)
	}

	var target Target
	if err := k.Unmarshal("", &target); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	if target.Name == "" {
		target.Name = filepath.Base(filepath.Dir(absOrSelf(path)))
	}
	return &target, nil
}

func absOrSelf(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// findManifest walks from dir up to the filesystem root looking for the
// manifest. Returns empty string if not found.
func findManifest(dir string) string {
	dir = absOrSelf(dir)
	for {
		candidate := filepath.Join(dir, ManifestFileName)
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
