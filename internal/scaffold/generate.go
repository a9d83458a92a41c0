// Package scaffold creates new worker projects by invoking an external
// template generator and writing the starter manifest.
package scaffold

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"

	"github.com/methyl/wrangler/internal/settings"
	"github.com/methyl/wrangler/internal/terminal"
)

// DefaultTemplate is used when `generate` is run without a template URL.
const DefaultTemplate = "https://github.com/cloudflare/worker-template"

var nameRe = regexp.MustCompile(`^[a-zA-Z0-9_][a-zA-Z0-9_-]*$`)

// ValidateName checks that name is usable as a project and worker name.
func ValidateName(name string) error {
	if len(name) == 0 || len(name) > 63 {
		return fmt.Errorf("project name must be between 1 and 63 characters")
	}
	if !nameRe.MatchString(name) {
		return fmt.Errorf("project name %q may only contain letters, numbers, underscores and dashes", name)
	}
	return nil
}

// Generate materializes template into ./name via the external generator
// (git) and writes the starter manifest. The generator's output streams
// through to the user.
func Generate(name, template, targetType string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if template == "" {
		template = DefaultTemplate
	}
	if _, err := os.Stat(name); err == nil {
		return fmt.Errorf("directory %q already exists", name)
	}

	terminal.Working(fmt.Sprintf("%s Generating a new worker project with name %q...", terminal.EmojiSheep, name))
	if err := runGenerator(name, template); err != nil {
		return err
	}

	if err := settings.GenerateManifest(name, name, targetType); err != nil {
		return err
	}
	terminal.Success(fmt.Sprintf("Generated %q from %s", name, template))
	return nil
}

func runGenerator(name, template string) error {
	cmd := exec.Command("git", "clone", "--depth", "1", template, name)
	stdout, _ := cmd.StdoutPipe()
	stderr, _ := cmd.StderrPipe()
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to run generator: %w", err)
	}
	go streamLines(stdout, false)
	go streamLines(stderr, true)
	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("generator failed for template %q: %w", template, err)
	}

	// The clone's history is the template's, not the new project's.
	if err := os.RemoveAll(filepath.Join(name, ".git")); err != nil {
		return fmt.Errorf("failed to detach template history: %w", err)
	}
	return nil
}

func streamLines(r io.Reader, toStderr bool) {
	if r == nil {
		return
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if toStderr {
			fmt.Fprintln(os.Stderr, scanner.Text())
		} else {
			fmt.Println(scanner.Text())
		}
	}
}
