package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

// Version is set at build time.
var Version = "dev"

func main() {
	app := &cli.App{
		Name:    "wrangler",
		Usage:   "Manage Workers KV namespaces, keys and projects",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to wrangler.toml (default: nearest one upwards from the current directory)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "generate",
				Usage:     "Generate a new worker project from a template",
				ArgsUsage: "[name] [template]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "type",
						Usage: "Project type (webpack, javascript, rust)",
					},
				},
				Action: generateCommand,
			},
			{
				Name:   "whoami",
				Usage:  "Show the identity wrangler is configured with",
				Action: whoamiCommand,
			},
			{
				Name:  "kv:namespace",
				Usage: "Manage KV namespaces",
				Subcommands: []*cli.Command{
					{
						Name:      "create",
						Usage:     "Create a namespace for a binding",
						ArgsUsage: "<binding>",
						Action:    namespaceCreateCommand,
					},
					{
						Name:   "delete",
						Usage:  "Delete a namespace and everything in it",
						Flags:  append(namespaceFlags(), forceFlag()),
						Action: namespaceDeleteCommand,
					},
					{
						Name:  "rename",
						Usage: "Rename a namespace",
						Flags: append(namespaceFlags(), &cli.StringFlag{
							Name:     "title",
							Usage:    "New namespace title",
							Required: true,
						}),
						Action: namespaceRenameCommand,
					},
					{
						Name:   "list",
						Usage:  "List the account's namespaces",
						Flags:  []cli.Flag{jsonFlag()},
						Action: namespaceListCommand,
					},
				},
			},
			{
				Name:  "kv:key",
				Usage: "Manage individual keys",
				Subcommands: []*cli.Command{
					{
						Name:      "put",
						Usage:     "Write a value for a key",
						ArgsUsage: "<key> [value]",
						Flags: append(namespaceFlags(),
							&cli.StringFlag{
								Name:  "path",
								Usage: "Read the value from this file instead of the argument",
							},
							&cli.Int64Flag{
								Name:  "ttl",
								Usage: "Time to live in seconds",
							},
							&cli.Int64Flag{
								Name:  "expiration",
								Usage: "Absolute expiration as a unix timestamp",
							},
						),
						Action: keyPutCommand,
					},
					{
						Name:      "get",
						Usage:     "Print the raw value of a key",
						ArgsUsage: "<key>",
						Flags:     namespaceFlags(),
						Action:    keyGetCommand,
					},
					{
						Name:      "delete",
						Usage:     "Delete a key and its value",
						ArgsUsage: "<key>",
						Flags:     append(namespaceFlags(), forceFlag()),
						Action:    keyDeleteCommand,
					},
					{
						Name:  "list",
						Usage: "List one page of keys",
						Flags: append(namespaceFlags(),
							&cli.StringFlag{
								Name:  "prefix",
								Usage: "Only list keys starting with this prefix",
							},
							&cli.StringFlag{
								Name:  "cursor",
								Usage: "Opaque cursor from a previous page",
							},
							jsonFlag(),
						),
						Action: keyListCommand,
					},
				},
			},
			{
				Name:  "kv:bulk",
				Usage: "Upload or delete many pairs in one request",
				Subcommands: []*cli.Command{
					{
						Name:      "put",
						Usage:     "Upload a JSON file of key/value pairs",
						ArgsUsage: "<file.json>",
						Flags:     namespaceFlags(),
						Action:    bulkPutCommand,
					},
					{
						Name:      "delete",
						Usage:     "Delete every key named in a JSON file",
						ArgsUsage: "<file.json>",
						Flags:     append(namespaceFlags(), forceFlag()),
						Action:    bulkDeleteCommand,
					},
				},
			},
			{
				Name:      "kv:bucket",
				Usage:     "Sync a local directory into a namespace",
				ArgsUsage: "[dir]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "binding",
						Usage: "Binding name from wrangler.toml",
					},
				},
				Action: bucketSyncCommand,
			},
		},
		Action: func(c *cli.Context) error {
			return cli.ShowAppHelp(c)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func namespaceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "binding",
			Usage: "Binding name from wrangler.toml",
		},
		&cli.StringFlag{
			Name:  "namespace-id",
			Usage: "Remote namespace id (bypasses binding resolution)",
		},
	}
}

func forceFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "force",
		Usage: "Skip the confirmation prompt",
	}
}

func jsonFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "json",
		Usage: "Print raw JSON instead of a table",
	}
}
