package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"fastwrite/internal/prompt"
)

func catalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "List providers, models and documentation sections",
		Subcommands: []*cli.Command{
			{
				Name:   "providers",
				Usage:  "List AI providers",
				Action: withApp(runCatalogProviders),
			},
			{
				Name:  "models",
				Usage: "List models, optionally for one provider",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "provider", Aliases: []string{"p"}, Usage: "Provider `ID`"},
				},
				Action: withApp(runCatalogModels),
			},
			{
				Name:   "sections",
				Usage:  "List code and report sections",
				Action: withApp(runCatalogSections),
			},
		},
	}
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

func runCatalogProviders(c *cli.Context, app *App) error {
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tDEFAULT MODEL\tKEY URL")
	for _, group := range app.Catalog.ListModelGroups() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", group.ProviderID, group.ProviderName, app.Catalog.DefaultModel(group.ProviderID), group.KeyURL)
	}
	return w.Flush()
}

func runCatalogModels(c *cli.Context, app *App) error {
	provider := c.String("provider")
	if provider != "" && !app.Catalog.HasProvider(provider) {
		return fmt.Errorf("unknown provider %q", provider)
	}

	w := newTable()
	fmt.Fprintln(w, "PROVIDER\tMODEL\tNAME")
	for _, group := range app.Catalog.ListModelGroups() {
		if provider != "" && group.ProviderID != provider {
			continue
		}
		for _, model := range group.Models {
			fmt.Fprintf(w, "%s\t%s\t%s\n", group.ProviderID, model.ID, model.DisplayName)
		}
	}
	return w.Flush()
}

func runCatalogSections(c *cli.Context, app *App) error {
	w := newTable()
	fmt.Fprintln(w, "KIND\tID\tLABEL\tDESCRIPTION")
	for _, s := range prompt.CodeSections() {
		fmt.Fprintf(w, "code\t%s\t%s\t%s\n", s.ID, s.Label, s.Description)
	}
	for _, s := range prompt.ReportSections() {
		fmt.Fprintf(w, "report\t%s\t%s\t%s\n", s.ID, s.Label, s.Description)
	}
	return w.Flush()
}
