package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"fastwrite/internal/config"
)

func sessionCommand() *cli.Command {
	return &cli.Command{
		Name:  "session",
		Usage: "Manage form sessions",
		Subcommands: []*cli.Command{
			{
				Name:  "new",
				Usage: "Print a fresh session ID",
				Action: func(c *cli.Context) error {
					id := uuid.NewString()
					fmt.Println(id)
					fmt.Fprintf(os.Stderr, "export FASTWRITE_SESSION=%s\n", id)
					return nil
				},
			},
			{
				Name:   "clear",
				Usage:  "Forget the stored form of the current session",
				Action: withApp(runSessionClear),
			},
		},
	}
}

func runSessionClear(c *cli.Context, app *App) error {
	if err := app.ClearSession(); err != nil {
		return err
	}
	fmt.Printf("Session %s cleared\n", app.sessionID)
	return nil
}

func sourceCommand() *cli.Command {
	return &cli.Command{
		Name:  "source",
		Usage: "Check a project source before submitting it",
		Subcommands: []*cli.Command{
			{
				Name:      "probe",
				Usage:     "List the branches and tags of a repository without cloning it",
				ArgsUsage: "<url|path>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Print as JSON"},
				},
				Action: withApp(runSourceProbe),
			},
			{
				Name:      "check-archive",
				Usage:     "Check that a file is a ZIP archive",
				ArgsUsage: "<file>",
				Action:    withApp(runSourceCheckArchive),
			},
		},
	}
}

func runSourceProbe(c *cli.Context, app *App) error {
	probe, err := app.Sources.ProbeRepository(app.ctx, c.Args().First())
	if err != nil {
		return err
	}
	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(probe)
	}
	fmt.Printf("Repository:     %s\n", probe.URL)
	fmt.Printf("Default branch: %s\n", orNone(probe.DefaultBranch))
	fmt.Printf("Branches:       %d\n", probe.Branches)
	fmt.Printf("Tags:           %d\n", probe.Tags)
	return nil
}

func runSourceCheckArchive(c *cli.Context, app *App) error {
	handle, err := app.Sources.CheckArchive(c.Args().First())
	if err != nil {
		return err
	}
	color.Green("%s looks like a ZIP archive (%s, %d bytes)", handle.Name, handle.MIMEType, handle.Size)
	return nil
}

// configCommand returns the config command
func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage configuration",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Initialize a new configuration file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
						Value:   "fastwrite.toml",
					},
				},
				Action: runConfigInit,
			},
			{
				Name:   "validate",
				Usage:  "Validate the configuration file",
				Action: runConfigValidate,
			},
		},
	}
}

func runConfigInit(c *cli.Context) error {
	outputPath := c.String("output")

	if err := config.InitConfig(outputPath); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	fmt.Printf("Created configuration file at %s\n", outputPath)
	return nil
}

func runConfigValidate(c *cli.Context) error {
	configPath := c.String("config")

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	fmt.Println("Configuration is valid")
	return nil
}
