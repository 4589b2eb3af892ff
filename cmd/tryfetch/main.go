package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	// Load .env before reading the environment
	_ "github.com/joho/godotenv/autoload"

	"github.com/k0kubun/pp/v3"

	"github.com/ib-77/tryfetch/internal/config"
	"github.com/ib-77/tryfetch/internal/logger"
	"github.com/ib-77/tryfetch/internal/styles"
	"github.com/ib-77/tryfetch/internal/swapi"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	style  string
	raw    bool
	pretty bool
	field  string
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Default()
	}

	log := logger.New(stderr, cfg.LogLevel)
	logger.SetDefault(log)
	if cfgErr != nil {
		log.Error().Err(cfgErr).Msg("invalid configuration")
		return 2
	}

	var opts options
	fs := flag.NewFlagSet("tryfetch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.style, "style", cfg.Style, "error handling style: "+strings.Join(styles.Names(), ", "))
	fs.BoolVar(&opts.raw, "raw", false, "print the response body instead of the name")
	fs.BoolVar(&opts.pretty, "pretty", false, "pretty-print the decoded properties")
	fs.StringVar(&opts.field, "field", "", "print one field of the response body, e.g. result.properties.height")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	style, err := styles.Lookup(opts.style)
	if err != nil {
		log.Error().Err(err).Send()
		return 2
	}

	client, err := swapi.New(swapi.Config{
		BaseURL:   cfg.BaseURL,
		PersonID:  cfg.PersonID,
		UserAgent: "tryfetch",
	})
	if err != nil {
		log.Error().Err(err).Msg("invalid api url")
		return 2
	}

	ctx = log.With().Str("style", opts.style).Logger().WithContext(ctx)
	log.Debug().Str("style", opts.style).Str("url", client.URL()).Msg("fetching person")

	report, err := style(ctx, client)
	if err != nil {
		log.Error().Err(err).Msg("request failed")
		return 1
	}

	fmt.Fprintln(stdout, render(report, opts))
	return 0
}

func render(r styles.Report, opts options) string {
	if r.Person == nil {
		return r.Fallback
	}

	switch {
	case opts.field != "":
		return r.Person.Lookup(opts.field).String()
	case opts.raw:
		return strings.TrimSpace(string(r.Person.Raw()))
	case opts.pretty:
		printer := pp.New()
		printer.SetColoringEnabled(false)
		return printer.Sprint(r.Person.Result.Properties)
	default:
		return r.String()
	}
}
