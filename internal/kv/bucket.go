package kv

import (
	"context"
	"encoding/base64"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/methyl/wrangler/internal/api"
	"github.com/methyl/wrangler/internal/settings"
	"github.com/methyl/wrangler/internal/terminal"
)

// SyncBucket uploads every file under dir into the namespace bound to
// binding, keyed by slash-separated relative path. Values are base64-encoded
// so binary assets survive the JSON bulk payload. One bulk request; the
// store's payload limit applies to the whole directory.
func SyncBucket(ctx context.Context, target *settings.Target, user *settings.GlobalUser, binding, dir string) error {
	if err := ValidateTarget(target); err != nil {
		return err
	}
	id, err := NamespaceID(target, binding)
	if err != nil {
		return err
	}

	if dir == "" {
		dir, err = BucketFor(target, binding)
		if err != nil {
			return err
		}
		if dir == "" {
			return fmt.Errorf("binding %q has no bucket configured; pass a directory or set bucket in wrangler.toml", binding)
		}
	}

	pairs, err := collectBucketPairs(dir)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		terminal.Message(fmt.Sprintf("Nothing to upload in %q", dir))
		return nil
	}

	spinner := terminal.NewSpinner(os.Stdout, fmt.Sprintf("Syncing %d files from %q...", len(pairs), dir))
	spinner.Start()
	client := NewClient(user)
	uploadErr := client.WriteBulk(ctx, target.AccountID, id, pairs)
	spinner.Stop()
	if uploadErr != nil {
		return remote(uploadErr)
	}

	terminal.Success(fmt.Sprintf("Synced %d files into namespace %s", len(pairs), id))
	return nil
}

func collectBucketPairs(dir string) ([]api.KeyValuePair, error) {
	var pairs []api.KeyValuePair
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %q: %w", path, err)
		}
		pairs = append(pairs, api.KeyValuePair{
			Key:    filepath.ToSlash(rel),
			Value:  base64.StdEncoding.EncodeToString(data),
			Base64: true,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", dir, err)
	}
	return pairs, nil
}
