package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oarkflow/json"
	"github.com/urfave/cli/v2"

	"github.com/oarkflow/edi"
	"github.com/oarkflow/edi/pkg/claims"
	"github.com/oarkflow/edi/pkg/config"
	"github.com/oarkflow/edi/pkg/parsers"
	"github.com/oarkflow/edi/pkg/server"
)

func main() {
	app := &cli.App{
		Name:  "edi837",
		Usage: "Parse 837 claim interchanges into relational outputs",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Process a batch of interchange files",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to the configuration file (YAML, JSON, or BCL)",
					},
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "Input file or directory (overrides config)",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output directory (overrides config)",
					},
					&cli.StringFlag{
						Name:  "receive-date",
						Usage: "Receive date stamped on every claim row (defaults to today)",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Transform worker count",
					},
					&cli.IntFlag{
						Name:  "max-files",
						Usage: "Maximum number of files to process",
					},
				},
				Action: runBatch,
			},
			{
				Name:      "parse",
				Usage:     "Parse one interchange file and print the canonical claims as JSON",
				ArgsUsage: "<file>",
				Action:    parseFile,
			},
			{
				Name:  "export",
				Usage: "Export flattened rows from the destination database to a CSV or JSON file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "config",
						Aliases:  []string{"c"},
						Usage:    "Path to the configuration file (must include a database block)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "table",
						Usage: "Table to export (defaults to the configured claims table)",
					},
					&cli.StringFlag{
						Name:  "query",
						Usage: "Custom SELECT overriding the table",
					},
					&cli.StringFlag{
						Name:     "out",
						Aliases:  []string{"o"},
						Usage:    "Output file; .csv or .json picks the format",
						Required: true,
					},
				},
				Action: export,
			},
			{
				Name:  "serve",
				Usage: "Start the HTTP server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to the configuration file",
					},
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address (overrides config)",
					},
				},
				Action: serve,
			},
			{
				Name:  "schedule",
				Usage: "Run batches on the configured cron schedule",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "config",
						Aliases:  []string{"c"},
						Usage:    "Path to the configuration file",
						Required: true,
					},
				},
				Action: schedule,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	path := c.String("config")
	if path != "" {
		return config.Load(path)
	}
	if c.String("input") == "" {
		return nil, fmt.Errorf("either --config or --input is required")
	}
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	return cfg, nil
}

func applyOverrides(c *cli.Context, cfg *config.Config) {
	if v := c.String("input"); v != "" {
		cfg.Input.Path = v
	}
	if v := c.String("output"); v != "" {
		cfg.Output.Dir = v
	}
	if v := c.String("receive-date"); v != "" {
		cfg.Run.ReceiveDate = v
	}
	if v := c.Int("workers"); v > 0 {
		cfg.Run.WorkerCount = v
	}
	if v := c.Int("max-files"); v > 0 {
		cfg.Input.MaxFiles = v
	}
	if cfg.Output.Dir == "" && cfg.Database == nil {
		cfg.Output.Dir = "out"
	}
}

func runBatch(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	applyOverrides(c, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	edi.Shutdown(cancel)

	summary, err := edi.Run(ctx, cfg)
	if err != nil {
		return err
	}
	out, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func parseFile(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: edi837 parse <file>")
	}
	doc, err := parsers.ParseFile(c.Args().First())
	if err != nil {
		return err
	}
	projected := claims.Project(doc)
	out, err := json.Marshal(projected)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func export(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	edi.Shutdown(cancel)

	count, err := edi.Export(ctx, cfg, c.String("table"), c.String("query"), c.String("out"))
	if err != nil {
		return err
	}
	fmt.Printf("exported %d rows to %s\n", count, c.String("out"))
	return nil
}

func serve(c *cli.Context) error {
	var cfg *config.Config
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	addr := c.String("addr")
	if addr == "" {
		addr = ":8080"
		if cfg != nil {
			addr = cfg.Server.Address
		}
	}

	srv := server.New(cfg)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		fmt.Printf("listening on %s\n", addr)
		serverErr <- srv.Listen(addr)
	}()

	select {
	case err := <-serverErr:
		return err
	case sig := <-sigChan:
		fmt.Printf("received signal: %v, shutting down\n", sig)
		done := make(chan error, 1)
		go func() {
			done <- srv.Stop()
		}()
		select {
		case err := <-done:
			return err
		case <-time.After(10 * time.Second):
			return fmt.Errorf("shutdown timeout reached")
		}
	}
}

func schedule(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	edi.Shutdown(cancel)
	err = edi.RunScheduled(ctx, cfg)
	if err == context.Canceled {
		return nil
	}
	return err
}
