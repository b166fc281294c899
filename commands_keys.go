package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/99designs/keyring"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

func keysCommand() *cli.Command {
	return &cli.Command{
		Name:  "keys",
		Usage: "Manage provider API keys in the local keyring",
		Subcommands: []*cli.Command{
			{
				Name:      "set",
				Usage:     "Store the API key for a provider",
				ArgsUsage: "<provider>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "secret", Usage: "API key; prompted for when omitted"},
				},
				Action: withApp(runKeysSet),
			},
			{
				Name:      "remove",
				Usage:     "Delete the API key for a provider",
				ArgsUsage: "<provider>",
				Action:    withApp(runKeysRemove),
			},
			{
				Name:      "status",
				Usage:     "Show whether a provider has an API key",
				ArgsUsage: "<provider>",
				Action:    withApp(runKeysStatus),
			},
			{
				Name:   "list",
				Usage:  "Show API key status for every provider",
				Action: withApp(runKeysList),
			},
		},
	}
}

func providerArg(c *cli.Context, app *App) (string, error) {
	provider := strings.TrimSpace(c.Args().First())
	if provider == "" {
		return "", fmt.Errorf("provider is required")
	}
	if !app.Catalog.HasProvider(provider) {
		return "", fmt.Errorf("unknown provider %q", provider)
	}
	return provider, nil
}

func runKeysSet(c *cli.Context, app *App) error {
	provider, err := providerArg(c, app)
	if err != nil {
		return err
	}
	keys, err := app.Keys()
	if err != nil {
		return err
	}

	secret := c.String("secret")
	if !c.IsSet("secret") {
		secret, err = keyring.TerminalPrompt(fmt.Sprintf("API key for %s: ", app.Catalog.ProviderName(provider)))
		if err != nil {
			return fmt.Errorf("read api key: %w", err)
		}
		fmt.Fprintln(os.Stderr)
	}
	if err := keys.Set(provider, secret); err != nil {
		return err
	}
	color.Green("API key saved successfully")
	return nil
}

func runKeysRemove(c *cli.Context, app *App) error {
	provider, err := providerArg(c, app)
	if err != nil {
		return err
	}
	keys, err := app.Keys()
	if err != nil {
		return err
	}
	if err := keys.Remove(provider); err != nil {
		return err
	}
	fmt.Printf("API key for %s removed\n", app.Catalog.ProviderName(provider))
	return nil
}

func runKeysStatus(c *cli.Context, app *App) error {
	provider, err := providerArg(c, app)
	if err != nil {
		return err
	}
	keys, err := app.Keys()
	if err != nil {
		return err
	}
	if keys.Has(provider) {
		color.Green("API key is set")
		return nil
	}
	color.Yellow("No API key set for %s", app.Catalog.ProviderName(provider))
	if url := app.Catalog.KeyURL(provider); url != "" {
		fmt.Printf("Get an API key at %s\n", url)
	}
	return nil
}

func runKeysList(c *cli.Context, app *App) error {
	keys, err := app.Keys()
	if err != nil {
		return err
	}
	var providers []string
	for _, group := range app.Catalog.ListModelGroups() {
		providers = append(providers, group.ProviderID)
	}
	infos, err := keys.List(providers)
	if err != nil {
		return err
	}

	w := newTable()
	fmt.Fprintln(w, "PROVIDER\tNAME\tAPI KEY")
	for _, info := range infos {
		status := "not set"
		if info.Configured {
			status = "set"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", info.ProviderID, app.Catalog.ProviderName(info.ProviderID), status)
	}
	return w.Flush()
}
