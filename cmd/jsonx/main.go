// Command jsonx reformats and validates JSON documents through the jsonx
// engine: input is parsed into the node tree and rendered back out, so the
// tool exercises the same lexer and formatter contracts the library ships.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/hengadev/jsonx"
	jtfmt "github.com/hengadev/jsonx/providers/jsontext"
)

func main() {
	// Local overrides for JSONX_* variables; missing .env files are fine.
	_ = godotenv.Load()

	cmd := &cli.Command{
		Name:    "jsonx",
		Usage:   "Reformat and validate JSON documents",
		Version: jsonx.VersionInfo(),
		Commands: []*cli.Command{
			fmtCmd(),
			validateCmd(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fmtCmd() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Re-render a JSON document (compact by default)",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "indent",
				Aliases: []string{"i"},
				Usage:   "Indent unit for pretty output (e.g. '  '); empty means compact",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path; stdout when empty",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Engine config file (YAML); environment variables apply otherwise",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			engine, err := buildEngine(cmd)
			if err != nil {
				return err
			}

			data, err := readInput(cmd.Args().First())
			if err != nil {
				return err
			}

			tree, err := engine.Parse(string(data))
			if err != nil {
				return err
			}
			if tree == nil {
				return nil
			}

			var formatter jsonx.Formatter = jsonx.NewCompactFormatter()
			if indent := cmd.String("indent"); indent != "" {
				formatter = jtfmt.NewIndentFormatter(indent)
			}

			out := os.Stdout
			if path := cmd.String("output"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				out = f
			}
			if err := formatter.Format(tree, out); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out)
			return err
		},
	}
}

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Check that a document parses as JSON",
		ArgsUsage: "[file]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			data, err := readInput(cmd.Args().First())
			if err != nil {
				return err
			}
			engine := jsonx.Default()
			if _, err := engine.Parse(string(data)); err != nil {
				return err
			}
			fmt.Println("valid")
			return nil
		},
	}
}

func buildEngine(cmd *cli.Command) (*jsonx.Engine, error) {
	var cfg jsonx.Config
	var err error
	if path := cmd.String("config"); path != "" {
		cfg, err = jsonx.LoadConfig(path)
	} else {
		cfg, err = jsonx.LoadConfigFromEnvironment()
	}
	if err != nil {
		return nil, err
	}
	return jsonx.New(cfg.Options()...)
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
