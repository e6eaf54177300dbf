package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"

	"github.com/Nydauron/results2table/league"
	"github.com/Nydauron/results2table/parsers"
	"github.com/Nydauron/results2table/standings"
	"github.com/Nydauron/results2table/writers"
	"github.com/urfave/cli/v2"
)

const (
	inputFlag    = "input"
	outputFlag   = "output"
	htmlFlag     = "html"
	yamlFlag     = "yaml"
	stdioCLIName = "-"
)

var build string
var semanticVersion = "v0.1.0-dev" + build

func cliHandle(inputLocation string, outputWriter io.Writer, isHTML bool, asYAML bool) error {
	var resultsReader io.Reader
	if inputLocation == stdioCLIName {
		resultsReader = os.Stdin
	} else if u, err := url.ParseRequestURI(inputLocation); err == nil {
		fmt.Fprintln(os.Stderr, "URL detected")
		resp, err := http.Get(u.String())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error occurred when trying to fetch results: %v\n", err)
			os.Exit(2)
			return nil
		}

		if resp.StatusCode >= 400 {
			return fmt.Errorf("invalid HTTP status code received: %v", resp.Status)
		}
		defer resp.Body.Close()
		resultsReader = resp.Body
	} else if f, err := os.Open(inputLocation); err == nil {
		fmt.Fprintln(os.Stderr, "File detected")
		defer f.Close()
		resultsReader = f
	} else {
		return fmt.Errorf("provided input was neither \"-\", a valid URL, or a path to an existing file: %v", inputLocation)
	}

	var table league.Table
	var err error
	if isHTML {
		table, err = parsers.ParseHTML(resultsReader)
	} else {
		table, err = parsers.ParseResults(resultsReader)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(4)
		return nil
	}

	rows := standings.Compute(table)

	if asYAML {
		if err := standings.WriteYAML(outputWriter, rows); err != nil {
			fmt.Fprintf(os.Stderr, "Encoding to YAML failed: %v", err)
			os.Exit(3)
			return nil
		}
		return nil
	}

	if err := standings.WriteText(outputWriter, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Writing table failed: %v", err)
		os.Exit(3)
		return nil
	}

	return nil
}

func main() {
	var inputLocation string
	var outputLocation string
	var isHTML = false
	var asYAML = false
	app := &cli.App{
		Name:    "results2table",
		Usage:   "A tool to turn match result lines into a ranked league table",
		Version: semanticVersion,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        htmlFlag,
				Usage:       "Input is an HTML page carrying the results in a table rather than plain result lines",
				Destination: &isHTML,
			},
			&cli.BoolFlag{
				Name:        yamlFlag,
				Usage:       "Write the standings as YAML instead of a plain-text table",
				Destination: &asYAML,
			},
			&cli.StringFlag{
				Name:        inputFlag,
				Aliases:     []string{"i"},
				Usage:       "The URL or path to the file containing the match results, or \"-\" (for stdin)",
				Value:       stdioCLIName,
				Destination: &inputLocation,
			},
			&cli.StringFlag{
				Name:        outputFlag,
				Aliases:     []string{"o"},
				Usage:       "The location to write the standings. Can be a file path or \"-\" (for stdout).",
				Value:       stdioCLIName,
				Destination: &outputLocation,
			},
		},
		Action: func(cCtx *cli.Context) error {
			if outputLocation == "" {
				return fmt.Errorf("output not set")
			}
			var outputWriter io.WriteCloser = os.Stdout
			if outputLocation != stdioCLIName {
				outputWriter = writers.NewLazyWriteCloser(func() (io.WriteCloser, error) {
					return os.OpenFile(outputLocation, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
				})
				defer outputWriter.Close()
			}
			return cliHandle(inputLocation, outputWriter, isHTML, asYAML)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
