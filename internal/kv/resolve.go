package kv

import (
	"github.com/methyl/wrangler/internal/settings"
)

// hasDuplicateBindings reports whether any binding name appears more than
// once in the target's configured namespaces.
func hasDuplicateBindings(target *settings.Target) bool {
	seen := make(map[string]bool, len(target.KvNamespaces))
	for _, namespace := range target.KvNamespaces {
		if seen[namespace.Binding] {
			return true
		}
		seen[namespace.Binding] = true
	}
	return false
}

// NamespaceID resolves a binding name to its remote namespace id.
//
// The duplicate scan runs first, unconditionally: a manifest that declares
// the same binding twice could route an operation to the wrong namespace, so
// it must fail even when the requested binding is unambiguous or absent.
func NamespaceID(target *settings.Target, binding string) (string, error) {
	if hasDuplicateBindings(target) {
		return "", &DuplicateBindingError{Binding: binding, Target: target.Name}
	}

	for _, namespace := range target.KvNamespaces {
		if namespace.Binding == binding {
			return namespace.ID, nil
		}
	}
	return "", &BindingNotFoundError{Binding: binding, Target: target.Name}
}

// BucketFor returns the configured bucket directory for a binding, if any.
// It resolves through NamespaceID's rules first so ambiguous manifests fail
// the same way everywhere.
func BucketFor(target *settings.Target, binding string) (string, error) {
	if _, err := NamespaceID(target, binding); err != nil {
		return "", err
	}
	for _, namespace := range target.KvNamespaces {
		if namespace.Binding == binding {
			return namespace.Bucket, nil
		}
	}
	return "", &BindingNotFoundError{Binding: binding, Target: target.Name}
}
