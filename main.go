package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/insightdelivered/paypal-statement-converter/internal/api"
	"github.com/insightdelivered/paypal-statement-converter/internal/config"
	"github.com/insightdelivered/paypal-statement-converter/internal/extractor"
	"github.com/insightdelivered/paypal-statement-converter/internal/logger"
	"github.com/insightdelivered/paypal-statement-converter/internal/parser"
	"github.com/insightdelivered/paypal-statement-converter/internal/writer"
)

// version is set via ldflags during build.
var version = "dev"

func main() {
	log := logger.New()

	app := &cli.App{
		Name:    "paypal-statement-converter",
		Usage:   "Convert PayPal PDF statements into clean-payee CSV files",
		Version: version,
		Commands: []*cli.Command{
			convertCommand(log),
			serveCommand(log),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func convertCommand(log zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert one or more statement PDFs to CSV",
		ArgsUsage: "<statement.pdf> [statement2.pdf ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output CSV path (defaults to the input path with a .csv extension)",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("no input files given", 1)
			}
			if c.String("output") != "" && c.NArg() > 1 {
				return cli.Exit("--output can only be used with a single input file", 1)
			}
			for _, inputPath := range c.Args().Slice() {
				if err := processFile(log, inputPath, c.String("output")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func processFile(log zerolog.Logger, inputPath, outputPath string) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	pages, err := extractor.ExtractText(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	txns := parser.Parse(pages)
	if len(txns) == 0 {
		log.Warn().Str("input", inputPath).Msg("no transactions found; the statement layout may not match expected patterns")
	}

	outPath := outputPath
	if outPath == "" {
		outPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".csv"
	}

	w := &writer.CSVWriter{}
	if err := w.WriteToFile(outPath, txns); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	log.Info().
		Int("transactions", len(txns)).
		Str("output", outPath).
		Msg("statement converted")
	return nil
}

func serveCommand(log zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP convert API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "port",
				Usage: "port to listen on (defaults to the PORT env var, then 8080)",
			},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Load()
			port := c.String("port")
			if port == "" {
				port = cfg.Port
			}

			app := api.NewApp()
			log.Info().Str("port", port).Msg("listening")
			return app.Listen(":" + port)
		},
	}
}
