package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/methyl/wrangler/internal/api"
	"github.com/methyl/wrangler/internal/settings"
	"github.com/methyl/wrangler/internal/terminal"
)

// BulkPut uploads a JSON file containing an array of key/value pairs in one
// request. The file's contents are passed through as-is: no chunking, no
// per-item retries. Oversized payloads come back as a 413 the error
// translator explains.
func BulkPut(ctx context.Context, target *settings.Target, user *settings.GlobalUser, binding, namespaceID, path string) error {
	if err := ValidateTarget(target); err != nil {
		return err
	}
	id, err := resolveNamespace(target, binding, namespaceID)
	if err != nil {
		return err
	}

	pairs, err := readBulkPairs(path)
	if err != nil {
		return err
	}

	spinner := terminal.NewSpinner(os.Stdout, fmt.Sprintf("Uploading %d pairs...", len(pairs)))
	spinner.Start()
	client := NewClient(user)
	uploadErr := client.WriteBulk(ctx, target.AccountID, id, pairs)
	spinner.Stop()
	if uploadErr != nil {
		return remote(uploadErr)
	}

	terminal.Success(fmt.Sprintf("Uploaded %d pairs", len(pairs)))
	return nil
}

// BulkDelete removes every key named in a JSON file (an array of strings or
// of key/value pairs, whose keys are used). Destructive: gated on
// confirmation unless force.
func BulkDelete(ctx context.Context, target *settings.Target, user *settings.GlobalUser, binding, namespaceID, path string, force bool) error {
	if err := ValidateTarget(target); err != nil {
		return err
	}
	id, err := resolveNamespace(target, binding, namespaceID)
	if err != nil {
		return err
	}

	keys, err := readBulkKeys(path)
	if err != nil {
		return err
	}

	if !force {
		confirmed, err := Confirm(fmt.Sprintf("Are you sure you want to delete all %d keys listed in %q?", len(keys), path))
		if err != nil {
			return err
		}
		if !confirmed {
			terminal.Message("Not deleting keys")
			return nil
		}
	}

	spinner := terminal.NewSpinner(os.Stdout, fmt.Sprintf("Deleting %d keys...", len(keys)))
	spinner.Start()
	client := NewClient(user)
	deleteErr := client.DeleteBulk(ctx, target.AccountID, id, keys)
	spinner.Stop()
	if deleteErr != nil {
		return remote(deleteErr)
	}

	terminal.Success(fmt.Sprintf("Deleted %d keys", len(keys)))
	return nil
}

func readBulkPairs(path string) ([]api.KeyValuePair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	var pairs []api.KeyValuePair
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("%q must contain a JSON array of {\"key\": ..., \"value\": ...} pairs: %w", path, err)
	}
	return pairs, nil
}

func readBulkKeys(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	var keys []string
	if err := json.Unmarshal(data, &keys); err == nil {
		return keys, nil
	}
	// Accept the bulk put format too, using just the keys.
	var pairs []api.KeyValuePair
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("%q must contain a JSON array of key names or key/value pairs: %w", path, err)
	}
	keys = make([]string, 0, len(pairs))
	for _, pair := range pairs {
		keys = append(keys, pair.Key)
	}
	return keys, nil
}
