package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dhodcz2/check50-workflow/pkg/api"
	"github.com/dhodcz2/check50-workflow/pkg/generate"
	"github.com/dhodcz2/check50-workflow/pkg/logging"
	"github.com/dhodcz2/check50-workflow/pkg/render"
)

var version = "dev"

const (
	_ = iota
	exitOutputFileExists
	exitUsage
	exitGenerateFailed
)

var (
	force       bool
	loggingType string
	logLevel    string
	showVersion bool
)

func init() {
	flag.BoolVar(
		&force,
		"force",
		false,
		"overwrite the output file if it already exists")
	flag.StringVar(
		&loggingType,
		"logging-type",
		"tint",
		"logging type: json, text or tint")
	flag.StringVar(
		&logLevel,
		"log-level",
		"warn",
		"logging level: debug, info, warn, error")
	flag.BoolVar(
		&showVersion,
		"version",
		false,
		"print version and exit")
	flag.Usage = usage
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "usage: %s [flags] slug [slug ...] outfile\n\n", os.Args[0])
	fmt.Fprintf(w, "Generates a GitHub Actions workflow that autogrades the given check50\n")
	fmt.Fprintf(w, "slugs and writes it to outfile, conventionally %s.\n\n", api.DefaultOutfile)
	fmt.Fprintf(w, "Flags:\n")
	flag.PrintDefaults()
}

func main() {
	flagArgs, posArgs := api.SplitArgs(flag.CommandLine, os.Args[1:])
	flag.CommandLine.Parse(flagArgs)

	if showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	initializeLogging()

	req := parseRequest(posArgs)
	runGenerate(req)

	slog.Info("done")
}

func initializeLogging() {
	err := logging.Initialize(loggingType, logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
}

func parseRequest(args []string) *api.Request {
	req, err := api.ParseRequest(args, force)
	if err != nil {
		slog.Error("invalid invocation", "error", err)
		flag.Usage()
		os.Exit(exitUsage)
	}
	return req
}

func runGenerate(req *api.Request) {
	err := generate.Run(req)
	if err == nil {
		return
	}
	if errors.Is(err, render.ErrExists) {
		slog.Error("output file already exists, use -force to overwrite", "outfile", req.Outfile)
		os.Exit(exitOutputFileExists)
	}
	slog.Error("generation failed", "error", err)
	os.Exit(exitGenerateFailed)
}
