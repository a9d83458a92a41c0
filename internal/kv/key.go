package kv

import (
	"context"
	"fmt"
	"os"

	"github.com/methyl/wrangler/internal/api"
	"github.com/methyl/wrangler/internal/settings"
	"github.com/methyl/wrangler/internal/terminal"
)

// PutKey writes value under key. When path is set the value is read from
// that file instead. TTL and expiration pass through to the store untouched.
func PutKey(ctx context.Context, target *settings.Target, user *settings.GlobalUser, binding, namespaceID, key string, value []byte, path string, opts *api.WriteOptions) error {
	if err := ValidateTarget(target); err != nil {
		return err
	}
	id, err := resolveNamespace(target, binding, namespaceID)
	if err != nil {
		return err
	}

	if path != "" {
		value, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read value from %q: %w", path, err)
		}
	}

	client := NewClient(user)
	if err := client.WriteValue(ctx, target.AccountID, id, EncodeKey(key), value, opts); err != nil {
		return remote(err)
	}
	terminal.Success(fmt.Sprintf("Wrote key %q", key))
	return nil
}

// GetKey returns the raw value stored under key.
func GetKey(ctx context.Context, target *settings.Target, user *settings.GlobalUser, binding, namespaceID, key string) ([]byte, error) {
	if err := ValidateTarget(target); err != nil {
		return nil, err
	}
	id, err := resolveNamespace(target, binding, namespaceID)
	if err != nil {
		return nil, err
	}

	client := NewClient(user)
	value, err := client.ReadValue(ctx, target.AccountID, id, EncodeKey(key))
	if err != nil {
		return nil, remote(err)
	}
	return value, nil
}

// DeleteKey removes key and its value. Destructive: gated on confirmation
// unless force.
func DeleteKey(ctx context.Context, target *settings.Target, user *settings.GlobalUser, binding, namespaceID, key string, force bool) error {
	if err := ValidateTarget(target); err != nil {
		return err
	}
	id, err := resolveNamespace(target, binding, namespaceID)
	if err != nil {
		return err
	}

	if !force {
		confirmed, err := Confirm(fmt.Sprintf("Are you sure you want to delete key %q?", key))
		if err != nil {
			return err
		}
		if !confirmed {
			terminal.Message(fmt.Sprintf("Not deleting key %q", key))
			return nil
		}
	}

	client := NewClient(user)
	if err := client.DeleteValue(ctx, target.AccountID, id, EncodeKey(key)); err != nil {
		return remote(err)
	}
	terminal.Success(fmt.Sprintf("Deleted key %q", key))
	return nil
}

// ListKeys returns one page of keys plus the cursor for the next one. The
// cursor passes through verbatim; looping over pages is the caller's call.
func ListKeys(ctx context.Context, target *settings.Target, user *settings.GlobalUser, binding, namespaceID, prefix, cursor string) ([]api.Key, string, error) {
	if err := ValidateTarget(target); err != nil {
		return nil, "", err
	}
	id, err := resolveNamespace(target, binding, namespaceID)
	if err != nil {
		return nil, "", err
	}

	client := NewClient(user)
	keys, next, err := client.ListKeys(ctx, target.AccountID, id, prefix, cursor)
	if err != nil {
		return nil, "", remote(err)
	}
	return keys, next, nil
}
