// Command gridpath answers the shortest-path queries of an HCL query file.
//
//	gridpath -config queries.hcl [-log-level info] [-log-format text|json]
//
// One "name: answer" line is printed per query, in file order. Logs go to
// stderr. Any failure exits with status 1.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/batch"
	"github.com/katalvlaran/gridpath/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run parses args, executes the query file and writes the answers to outW.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	flagSet := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	flagSet.SetOutput(errW)
	flagSet.Usage = func() {
		fmt.Fprint(errW, `
gridpath - shortest paths over digit and letter grids.

Usage:
  gridpath -config FILE [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	configPath := flagSet.String("config", "", "Path to the HCL query file.")
	logLevelFlag := flagSet.String("log-level", "", "Logging level, overriding the file's settings. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if *configPath == "" {
		flagSet.Usage()
		return errors.New("missing -config")
	}

	f, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	level := *logLevelFlag
	if level == "" {
		level = f.Settings.LogLevel
	}
	log, err := setupLogging(errW, level, *logFormatFlag)
	if err != nil {
		return err
	}

	answers, err := batch.Run(ctx, f, log)
	if err != nil {
		return err
	}
	for _, a := range answers {
		fmt.Fprintf(outW, "%s: %d\n", a.Name, a.Value)
	}
	return nil
}

// setupLogging builds the logger used for the run.
func setupLogging(w io.Writer, level, format string) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(w)

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log-level: %w", err)
	}
	log.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", format)
	}
	return log, nil
}
