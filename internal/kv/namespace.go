package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/methyl/wrangler/internal/api"
	"github.com/methyl/wrangler/internal/settings"
	"github.com/methyl/wrangler/internal/terminal"
)

// CreateNamespace creates a remote namespace titled "<target name>-<binding>"
// and prints the manifest snippet that declares the binding.
func CreateNamespace(ctx context.Context, target *settings.Target, user *settings.GlobalUser, binding string) error {
	if err := ValidateTarget(target); err != nil {
		return err
	}

	title := fmt.Sprintf("%s-%s", target.Name, binding)
	terminal.Working(fmt.Sprintf("Creating namespace with title %q", title))

	client := NewClient(user)
	namespace, err := client.CreateNamespace(ctx, target.AccountID, title)
	if err != nil {
		return remote(err)
	}

	terminal.Success("Success!")
	terminal.Message("Add the following to your wrangler.toml:")
	terminal.Message("kv-namespaces = [")
	terminal.Message(fmt.Sprintf("\t{ binding = %q, id = %q }", binding, namespace.ID))
	terminal.Message("]")
	return nil
}

// DeleteNamespace removes the namespace bound to binding (or identified
// directly by namespaceID). Destructive: gated on confirmation unless force.
func DeleteNamespace(ctx context.Context, target *settings.Target, user *settings.GlobalUser, binding, namespaceID string, force bool) error {
	if err := ValidateTarget(target); err != nil {
		return err
	}
	id, err := resolveNamespace(target, binding, namespaceID)
	if err != nil {
		return err
	}

	if !force {
		confirmed, err := Confirm(fmt.Sprintf("Are you sure you want to delete namespace %s?", id))
		if err != nil {
			return err
		}
		if !confirmed {
			terminal.Message("Not deleting namespace " + id)
			return nil
		}
	}

	client := NewClient(user)
	if err := client.DeleteNamespace(ctx, target.AccountID, id); err != nil {
		return remote(err)
	}
	terminal.Success(fmt.Sprintf("Deleted namespace %s", id))
	return nil
}

// RenameNamespace changes the title of the namespace bound to binding (or
// identified directly by namespaceID).
func RenameNamespace(ctx context.Context, target *settings.Target, user *settings.GlobalUser, binding, namespaceID, title string) error {
	if err := ValidateTarget(target); err != nil {
		return err
	}
	id, err := resolveNamespace(target, binding, namespaceID)
	if err != nil {
		return err
	}

	client := NewClient(user)
	if err := client.RenameNamespace(ctx, target.AccountID, id, title); err != nil {
		return remote(err)
	}
	terminal.Success(fmt.Sprintf("Renamed namespace %s to %q", id, title))
	return nil
}

// ListNamespaces returns all namespaces in the target's account.
func ListNamespaces(ctx context.Context, target *settings.Target, user *settings.GlobalUser) ([]api.Namespace, error) {
	if err := ValidateTarget(target); err != nil {
		return nil, err
	}

	client := NewClient(user)
	namespaces, err := client.ListNamespaces(ctx, target.AccountID)
	if err != nil {
		return nil, remote(err)
	}
	return namespaces, nil
}

// resolveNamespace yields the namespace id for an operation: an explicit id
// wins, otherwise the binding resolves through the manifest.
func resolveNamespace(target *settings.Target, binding, namespaceID string) (string, error) {
	if namespaceID != "" {
		return namespaceID, nil
	}
	if binding != "" {
		return NamespaceID(target, binding)
	}
	return "", errors.New("specify a namespace with --binding or --namespace-id")
}

// remote enriches a failed store call with advisory text. The command still
// fails; the diagnostics just become actionable.
func remote(err error) error {
	return errors.New(FormatError(err))
}
