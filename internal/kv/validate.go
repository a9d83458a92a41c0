// Package kv implements the admin surface for Workers KV: manifest
// validation, binding resolution, key encoding, client construction, the
// confirmation gate for destructive operations, and translation of remote
// failures into actionable diagnostics.
package kv

import (
	"github.com/methyl/wrangler/internal/settings"
)

// ValidateTarget checks every field a remote call requires and reports all
// violations at once rather than the first one found. It makes no remote
// calls and must run before any operation that touches the store.
func ValidateTarget(target *settings.Target) error {
	var missingFields []string

	if target.AccountID == "" {
		missingFields = append(missingFields, "account_id")
	}

	if len(missingFields) > 0 {
		return &ConfigError{MissingFields: missingFields}
	}
	return nil
}
