package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"fastwrite/internal/prompt"
	"fastwrite/internal/services"
)

func promptCommand() *cli.Command {
	return &cli.Command{
		Name:   "prompt",
		Usage:  "Print the prompt the current form compiles to",
		Action: withApp(runPrompt),
	}
}

func runPrompt(c *cli.Context, app *App) error {
	fmt.Println(prompt.CompileState(app.Form.State()))
	return nil
}

func submitCommand() *cli.Command {
	return &cli.Command{
		Name:  "submit",
		Usage: "Validate the form and request documentation",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "archive", Aliases: []string{"a"}, Usage: "Attach the ZIP `FILE` and use it as the source"},
			&cli.DurationFlag{Name: "timeout", Usage: "Override the request timeout"},
			&cli.BoolFlag{Name: "json", Usage: "Print the outcome as JSON"},
			&cli.BoolFlag{Name: "print", Usage: "Print the generated documentation"},
		},
		Action: withApp(runSubmit),
	}
}

func runSubmit(c *cli.Context, app *App) error {
	if path := c.String("archive"); path != "" {
		handle, err := app.Sources.CheckArchive(path)
		if err != nil {
			return err
		}
		app.Form.SelectArchive(*handle)
	}
	if c.IsSet("timeout") {
		app.cfg.API.Timeout = c.Duration("timeout")
	}

	submissions, err := app.Submissions()
	if err != nil {
		return err
	}
	outcome, err := submissions.Submit(app.ctx)
	if err != nil {
		return err
	}

	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(outcome)
	}

	elapsed := outcome.Duration.Round(time.Millisecond)
	switch outcome.State {
	case services.StateSucceeded:
		color.Green("Documentation generated in %s", elapsed)
	case services.StateFallbackProduced:
		color.Yellow("No content returned; an offline placeholder was stored (%s)", elapsed)
	default:
		color.Red("Generation failed: %s", outcome.Err)
	}
	if c.Bool("print") {
		printResult(outcome.Result.TextContent, outcome.Result.VisualContent, true)
		return nil
	}
	route, _ := app.Navigator.Last()
	fmt.Printf("Result stored for %s; run `fastwrite result show` to view it\n", route)
	return nil
}

func resultCommand() *cli.Command {
	return &cli.Command{
		Name:  "result",
		Usage: "Read the stored documentation result",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print the latest result",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "consume", Usage: "Remove the result after printing it"},
					&cli.BoolFlag{Name: "json", Usage: "Print as JSON"},
					&cli.BoolFlag{Name: "visual", Value: true, Usage: "Include the diagram"},
				},
				Action: withApp(runResultShow),
			},
		},
	}
}

func runResultShow(c *cli.Context, app *App) error {
	var (
		stored *services.StoredDocumentation
		err    error
	)
	if c.Bool("consume") {
		stored, err = app.Results.Consume(app.ctx)
	} else {
		stored, err = app.Results.Latest(app.ctx)
	}
	if err != nil {
		return err
	}
	if stored == nil {
		return fmt.Errorf("no documentation result stored; run `fastwrite submit` first")
	}

	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stored)
	}
	printResult(stored.Result.TextContent, stored.Result.VisualContent, c.Bool("visual"))
	return nil
}

func printResult(text, visual string, withVisual bool) {
	fmt.Println(text)
	if withVisual && visual != "" {
		fmt.Println()
		fmt.Println("```mermaid")
		fmt.Println(visual)
		fmt.Println("```")
	}
}
