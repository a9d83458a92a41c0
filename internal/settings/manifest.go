package settings

import (
	"fmt"
	"os"
	"path/filepath"
)

// GenerateManifest writes a starter wrangler.toml into dir. account_id is
// left empty on purpose; ValidateTarget will name it the moment a command
// needs the remote store.
func GenerateManifest(dir, name, targetType string) error {
	if targetType == "" {
		targetType = "webpack"
	}
	contents := fmt.Sprintf("name = %q\ntype = %q\naccount_id = \"\"\n", name, targetType)

	path := filepath.Join(dir, ManifestFileName)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
