package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"fastwrite/internal/config"
	"fastwrite/internal/logging"
	"fastwrite/internal/utils"
)

const (
	version = "0.1.0"
)

const defaultSession = "default"

func main() {
	if err := utils.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %s\n", err)
	}

	app := &cli.App{
		Name:    "fastwrite",
		Usage:   "Assemble documentation requests for a code repository and submit them for generation",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Load configuration from `FILE`",
				EnvVars: []string{"FASTWRITE_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "session",
				Aliases: []string{"s"},
				Usage:   "Form session `ID` to read and update",
				EnvVars: []string{"FASTWRITE_SESSION"},
				Value:   defaultSession,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Override the configured log `LEVEL`",
			},
		},
		Commands: []*cli.Command{
			catalogCommand(),
			keysCommand(),
			formCommand(),
			promptCommand(),
			submitCommand(),
			resultCommand(),
			sessionCommand(),
			sourceCommand(),
			configCommand(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// withApp loads config, configures logging, starts the App and runs fn.
func withApp(fn func(c *cli.Context, app *App) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := config.LoadConfig(c.String("config"))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		level := cfg.Log.Level
		if override := c.String("log-level"); override != "" {
			level = override
		}
		if err := logging.Setup(level, cfg.Log.Pretty); err != nil {
			return err
		}

		app := NewApp(cfg, c.String("session"))
		if err := app.startup(c.Context); err != nil {
			return err
		}
		defer app.shutdown(c.Context)

		log.Debug().Str("session", app.sessionID).Msg("app started")
		return fn(c, app)
	}
}
