// Package prompts provides the interactive selection and input prompts used
// when a command is run without enough flags to act on. The single-shot
// confirmation gate for destructive operations lives in kv, not here.
package prompts

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/methyl/wrangler/internal/settings"
)

// SelectBinding asks the user to pick one of the target's configured
// bindings. Errors when the manifest declares none.
func SelectBinding(target *settings.Target) (string, error) {
	if len(target.KvNamespaces) == 0 {
		return "", fmt.Errorf("no kv-namespaces configured in %q; add one or pass --namespace-id", target.Name)
	}

	options := make([]string, 0, len(target.KvNamespaces))
	for _, namespace := range target.KvNamespaces {
		options = append(options, namespace.Binding)
	}

	var binding string
	if err := survey.AskOne(&survey.Select{
		Message: "Select a namespace binding:",
		Options: options,
	}, &binding); err != nil {
		return "", err
	}
	return binding, nil
}

// InputProjectName asks for a project name when `generate` is run without
// one. Empty input falls back to def.
func InputProjectName(def string) (string, error) {
	var name string
	if err := survey.AskOne(&survey.Input{
		Message: "Project name:",
		Default: def,
	}, &name); err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = def
	}
	return name, nil
}
