package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"fastwrite/internal/models"
	"fastwrite/internal/prompt"
	"fastwrite/internal/utils"
)

func formCommand() *cli.Command {
	return &cli.Command{
		Name:  "form",
		Usage: "Inspect and edit the documentation request of the current session",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print the current form",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Print as JSON"},
				},
				Action: withApp(runFormShow),
			},
			{
				Name:  "set",
				Usage: "Change one or more form fields",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "source", Usage: "Source `TYPE`: repository or archive"},
					&cli.StringFlag{Name: "repo", Usage: "Repository `URL`"},
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "Project description"},
					&cli.StringFlag{Name: "provider", Aliases: []string{"p"}, Usage: "AI provider `ID`"},
					&cli.StringFlag{Name: "model", Aliases: []string{"m"}, Usage: "Model `ID`"},
					&cli.StringSliceFlag{Name: "code", Usage: "Replace the code sections"},
					&cli.StringSliceFlag{Name: "report", Usage: "Replace the report sections"},
					&cli.StringSliceFlag{Name: "add-code", Usage: "Select a code section"},
					&cli.StringSliceFlag{Name: "remove-code", Usage: "Deselect a code section"},
					&cli.StringSliceFlag{Name: "add-report", Usage: "Select a report section"},
					&cli.StringSliceFlag{Name: "remove-report", Usage: "Deselect a report section"},
					&cli.StringFlag{Name: "literature", Usage: "Literature `MODE`: auto or manual"},
					&cli.StringFlag{Name: "references", Usage: "Manual references, one per line"},
					&cli.StringFlag{Name: "references-file", Usage: "Read manual references from `FILE` (- for stdin)"},
				},
				Action: withApp(runFormSet),
			},
			{
				Name:   "reset",
				Usage:  "Restore the defaults",
				Action: withApp(runFormReset),
			},
		},
	}
}

func runFormShow(c *cli.Context, app *App) error {
	state := app.Form.State()
	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(state)
	}
	printForm(app, state)
	return nil
}

func printForm(app *App, state models.FormState) {
	fmt.Printf("Session:      %s\n", app.sessionID)
	fmt.Printf("Source:       %s\n", state.SourceType)
	if state.SourceType == models.SourceArchive {
		if state.Archive != nil {
			fmt.Printf("Archive:      %s\n", state.Archive.Path)
		} else {
			fmt.Printf("Archive:      (pass --archive to submit)\n")
		}
	} else {
		fmt.Printf("Repository:   %s\n", orNone(state.RepositoryURL))
	}
	fmt.Printf("Description:  %s\n", orNone(state.Description))
	fmt.Printf("Provider:     %s\n", orNone(app.Catalog.ProviderName(state.ProviderID)))
	fmt.Printf("Model:        %s\n", orNone(app.Catalog.DisplayName(state.ModelID)))
	fmt.Printf("Code:         %s\n", labels(state.CodeSectionIDs, prompt.CodeLabel))
	fmt.Printf("Report:       %s\n", labels(state.ReportSectionIDs, prompt.ReportLabel))
	if state.HasReportSection(prompt.LiteratureSurveyID) {
		fmt.Printf("Literature:   %s\n", state.LiteratureMode)
		if state.LiteratureMode == models.LiteratureManual {
			for _, ref := range prompt.ReferenceLines(state.ManualReferences) {
				fmt.Printf("  - %s\n", ref)
			}
		}
	}
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(none)"
	}
	return s
}

func labels(ids []string, label func(string) string) string {
	if len(ids) == 0 {
		return "(none)"
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, label(id))
	}
	return strings.Join(out, ", ")
}

func runFormSet(c *cli.Context, app *App) error {
	form := app.Form

	if c.IsSet("source") {
		if err := form.SetSourceType(models.SourceType(c.String("source"))); err != nil {
			return err
		}
	}
	if c.IsSet("repo") {
		form.SetRepositoryURL(c.String("repo"))
	}
	if c.IsSet("description") {
		form.SetDescription(c.String("description"))
	}
	if c.IsSet("provider") {
		if err := form.SelectProvider(c.String("provider")); err != nil {
			return err
		}
	}
	if c.IsSet("model") {
		if err := form.SelectModel(c.String("model")); err != nil {
			return err
		}
	}
	if c.IsSet("code") {
		form.SetCodeSections(c.StringSlice("code"))
	}
	if c.IsSet("report") {
		form.SetReportSections(c.StringSlice("report"))
	}
	for _, id := range c.StringSlice("add-code") {
		form.ToggleCodeSection(id, true)
	}
	for _, id := range c.StringSlice("remove-code") {
		form.ToggleCodeSection(id, false)
	}
	for _, id := range c.StringSlice("add-report") {
		form.ToggleReportSection(id, true)
	}
	for _, id := range c.StringSlice("remove-report") {
		form.ToggleReportSection(id, false)
	}
	if c.IsSet("literature") {
		if err := form.SetLiteratureMode(models.LiteratureMode(c.String("literature"))); err != nil {
			return err
		}
	}
	if c.IsSet("references") {
		form.SetManualReferences(c.String("references"))
	}
	if path := c.String("references-file"); path != "" {
		lines, err := utils.ReadNonEmptyLines(path)
		if err != nil {
			return fmt.Errorf("read references: %w", err)
		}
		form.SetManualReferences(strings.Join(lines, "\n"))
	}

	printForm(app, form.State())
	return nil
}

func runFormReset(c *cli.Context, app *App) error {
	app.Form.Reset()
	printForm(app, app.Form.State())
	return nil
}
