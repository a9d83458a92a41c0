package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/methyl/wrangler/internal/api"
	"github.com/methyl/wrangler/internal/kv"
	"github.com/methyl/wrangler/internal/prompts"
	"github.com/methyl/wrangler/internal/scaffold"
	"github.com/methyl/wrangler/internal/settings"
	"github.com/methyl/wrangler/internal/terminal"
)

// loadTarget reads the manifest named by --config (or the nearest one).
func loadTarget(c *cli.Context) (*settings.Target, error) {
	return settings.LoadTarget(c.String("config"))
}

// loadTargetAndUser resolves everything a remote operation needs.
func loadTargetAndUser(c *cli.Context) (*settings.Target, *settings.GlobalUser, error) {
	target, err := loadTarget(c)
	if err != nil {
		return nil, nil, err
	}
	user, err := settings.GlobalUserFromEnv()
	if err != nil {
		return nil, nil, err
	}
	return target, user, nil
}

// namespaceSelector returns the --binding / --namespace-id pair, prompting
// for a binding when neither was given.
func namespaceSelector(c *cli.Context, target *settings.Target) (binding, namespaceID string, err error) {
	binding = c.String("binding")
	namespaceID = c.String("namespace-id")
	if binding == "" && namespaceID == "" {
		binding, err = prompts.SelectBinding(target)
	}
	return binding, namespaceID, err
}

func generateCommand(c *cli.Context) error {
	name := c.Args().Get(0)
	if name == "" {
		var err error
		name, err = prompts.InputProjectName("worker")
		if err != nil {
			return err
		}
	}
	template := c.Args().Get(1)
	return scaffold.Generate(name, template, c.String("type"))
}

func whoamiCommand(c *cli.Context) error {
	user, err := settings.GlobalUserFromEnv()
	if err != nil {
		return err
	}
	terminal.Message(fmt.Sprintf("You are authenticating with: %s", user.Describe()))
	return nil
}

func namespaceCreateCommand(c *cli.Context) error {
	binding := c.Args().Get(0)
	if binding == "" {
		return fmt.Errorf("usage: wrangler kv:namespace create <binding>")
	}
	target, user, err := loadTargetAndUser(c)
	if err != nil {
		return err
	}
	return kv.CreateNamespace(c.Context, target, user, binding)
}

func namespaceDeleteCommand(c *cli.Context) error {
	target, user, err := loadTargetAndUser(c)
	if err != nil {
		return err
	}
	binding, namespaceID, err := namespaceSelector(c, target)
	if err != nil {
		return err
	}
	return kv.DeleteNamespace(c.Context, target, user, binding, namespaceID, c.Bool("force"))
}

func namespaceRenameCommand(c *cli.Context) error {
	target, user, err := loadTargetAndUser(c)
	if err != nil {
		return err
	}
	binding, namespaceID, err := namespaceSelector(c, target)
	if err != nil {
		return err
	}
	return kv.RenameNamespace(c.Context, target, user, binding, namespaceID, c.String("title"))
}

func namespaceListCommand(c *cli.Context) error {
	target, user, err := loadTargetAndUser(c)
	if err != nil {
		return err
	}
	namespaces, err := kv.ListNamespaces(c.Context, target, user)
	if err != nil {
		return err
	}

	if c.Bool("json") {
		return printJSON(namespaces)
	}
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"TITLE", "ID"})
	for _, namespace := range namespaces {
		t.AppendRow(table.Row{namespace.Title, namespace.ID})
	}
	t.Render()
	return nil
}

func keyPutCommand(c *cli.Context) error {
	key := c.Args().Get(0)
	if key == "" {
		return fmt.Errorf("usage: wrangler kv:key put <key> [value]")
	}
	value := []byte(c.Args().Get(1))
	path := c.String("path")
	if len(value) == 0 && path == "" {
		return fmt.Errorf("provide a value argument or --path")
	}

	target, user, err := loadTargetAndUser(c)
	if err != nil {
		return err
	}
	binding, namespaceID, err := namespaceSelector(c, target)
	if err != nil {
		return err
	}

	var opts *api.WriteOptions
	if c.Int64("ttl") > 0 || c.Int64("expiration") > 0 {
		opts = &api.WriteOptions{TTL: c.Int64("ttl"), Expiration: c.Int64("expiration")}
	}
	return kv.PutKey(c.Context, target, user, binding, namespaceID, key, value, path, opts)
}

func keyGetCommand(c *cli.Context) error {
	key := c.Args().Get(0)
	if key == "" {
		return fmt.Errorf("usage: wrangler kv:key get <key>")
	}
	target, user, err := loadTargetAndUser(c)
	if err != nil {
		return err
	}
	binding, namespaceID, err := namespaceSelector(c, target)
	if err != nil {
		return err
	}
	value, err := kv.GetKey(c.Context, target, user, binding, namespaceID, key)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(value)
	return err
}

func keyDeleteCommand(c *cli.Context) error {
	key := c.Args().Get(0)
	if key == "" {
		return fmt.Errorf("usage: wrangler kv:key delete <key>")
	}
	target, user, err := loadTargetAndUser(c)
	if err != nil {
		return err
	}
	binding, namespaceID, err := namespaceSelector(c, target)
	if err != nil {
		return err
	}
	return kv.DeleteKey(c.Context, target, user, binding, namespaceID, key, c.Bool("force"))
}

func keyListCommand(c *cli.Context) error {
	target, user, err := loadTargetAndUser(c)
	if err != nil {
		return err
	}
	binding, namespaceID, err := namespaceSelector(c, target)
	if err != nil {
		return err
	}
	keys, cursor, err := kv.ListKeys(c.Context, target, user, binding, namespaceID, c.String("prefix"), c.String("cursor"))
	if err != nil {
		return err
	}

	if c.Bool("json") {
		return printJSON(struct {
			Keys   []api.Key `json:"keys"`
			Cursor string    `json:"cursor,omitempty"`
		}{keys, cursor})
	}
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"NAME", "EXPIRATION"})
	for _, key := range keys {
		expiration := "-"
		if key.Expiration > 0 {
			expiration = fmt.Sprintf("%d", key.Expiration)
		}
		t.AppendRow(table.Row{key.Name, expiration})
	}
	t.Render()
	if cursor != "" {
		terminal.Message(fmt.Sprintf("More keys available; continue with --cursor %s", cursor))
	}
	return nil
}

func bulkPutCommand(c *cli.Context) error {
	path := c.Args().Get(0)
	if path == "" {
		return fmt.Errorf("usage: wrangler kv:bulk put <file.json>")
	}
	target, user, err := loadTargetAndUser(c)
	if err != nil {
		return err
	}
	binding, namespaceID, err := namespaceSelector(c, target)
	if err != nil {
		return err
	}
	return kv.BulkPut(c.Context, target, user, binding, namespaceID, path)
}

func bulkDeleteCommand(c *cli.Context) error {
	path := c.Args().Get(0)
	if path == "" {
		return fmt.Errorf("usage: wrangler kv:bulk delete <file.json>")
	}
	target, user, err := loadTargetAndUser(c)
	if err != nil {
		return err
	}
	binding, namespaceID, err := namespaceSelector(c, target)
	if err != nil {
		return err
	}
	return kv.BulkDelete(c.Context, target, user, binding, namespaceID, path, c.Bool("force"))
}

func bucketSyncCommand(c *cli.Context) error {
	target, user, err := loadTargetAndUser(c)
	if err != nil {
		return err
	}
	binding := c.String("binding")
	if binding == "" {
		binding, err = prompts.SelectBinding(target)
		if err != nil {
			return err
		}
	}
	return kv.SyncBucket(c.Context, target, user, binding, c.Args().Get(0))
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
