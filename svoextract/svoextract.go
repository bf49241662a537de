// Command svoextract extracts the DDS textures from every SVO and AFB container
// in a directory tree.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/Haisairova-Official/SVO-Extractor/batch"
	"github.com/Haisairova-Official/SVO-Extractor/container"
	_ "github.com/Haisairova-Official/SVO-Extractor/container/afb"
	_ "github.com/Haisairova-Official/SVO-Extractor/container/svo"
	"github.com/Haisairova-Official/SVO-Extractor/extract"
	"github.com/Haisairova-Official/SVO-Extractor/scanlib"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

var version = "unknown"

var log = func(format string, a ...interface{}) {}

type options struct {
	config  string
	input   string
	output  string
	log     string
	jobs    int
	formats []string
	dryRun  bool
	verbose bool
	help    bool
}

func parseFlags(fs *pflag.FlagSet, args []string) (*options, error) {
	o := &options{}
	fs.StringVarP(&o.config, "config", "c", "", "the YAML config file to read (flags override its values)")
	fs.StringVarP(&o.input, "input", "i", "", "the directory to search for containers (required)")
	fs.StringVarP(&o.output, "output", "o", "", "the directory to extract the textures to (required)")
	fs.StringVarP(&o.log, "log", "l", "", "the file to write the log to")
	fs.IntVarP(&o.jobs, "jobs", "j", 1, "the number of containers to extract at once")
	fs.StringSliceVarP(&o.formats, "formats", "f", nil, fmt.Sprintf("the container formats to extract (default: %s)", strings.Join(container.GetFormats(), ",")))
	fs.BoolVarP(&o.dryRun, "dry-run", "n", false, "only list the textures which would be extracted")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "show the log on stdout")
	fs.BoolVarP(&o.help, "help", "h", false, "show this help text")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, errors.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return o, nil
}

// buildConfig reads the config file, if any, and overrides it with the flags
// which were set.
func (o *options) buildConfig(fs *pflag.FlagSet) (*batch.Config, error) {
	cfg := &batch.Config{}
	if o.config != "" {
		f, err := os.Open(o.config)
		if err != nil {
			return nil, errors.Wrap(err, "could not open config")
		}
		defer f.Close()
		if cfg, err = batch.LoadConfig(f); err != nil {
			return nil, err
		}
	}
	if fs.Changed("input") {
		cfg.In = o.input
	}
	if fs.Changed("output") {
		cfg.Out = o.output
	}
	if fs.Changed("log") {
		cfg.Log = o.log
	}
	if fs.Changed("jobs") {
		cfg.Jobs = o.jobs
	}
	if fs.Changed("formats") {
		cfg.Formats = batch.FormatList(o.formats)
	}
	if fs.Changed("dry-run") {
		cfg.DryRun = o.dryRun
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func main() {
	fs := pflag.NewFlagSet("svoextract", pflag.ContinueOnError)
	o, err := parseFlags(fs, os.Args[1:])
	if err != nil || o.help {
		if err != nil && err != pflag.ErrHelp {
			fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		}
		fmt.Fprintf(os.Stderr, "Usage: svoextract [OPTIONS]\n")
		fmt.Fprintf(os.Stderr, "\nVersion: %s\n\nOptions:\n", version)
		fs.PrintDefaults()
		os.Exit(1)
	}

	fmt.Printf("svoextract %s\n\n", version)

	cfg, err := o.buildConfig(fs)
	checkErr(err, "Could not load config")

	cfg.In, err = filepath.Abs(cfg.In)
	checkErr(err, "Could not resolve input directory")
	cfg.Out, err = filepath.Abs(cfg.Out)
	checkErr(err, "Could not resolve output directory")

	var logw []io.Writer
	if cfg.Log != "" {
		logf, err := os.Create(cfg.Log)
		checkErr(err, "Could not open and truncate log file")
		defer logf.Close()
		logw = append(logw, logf)
	}
	if o.verbose {
		logw = append(logw, os.Stdout)
	}
	if len(logw) != 0 {
		w := io.MultiWriter(logw...)
		log = func(format string, a ...interface{}) {
			fmt.Fprintf(w, format, a...)
		}
		batch.Log = func(format string, a ...interface{}) {
			fmt.Fprintf(w, "    "+format, a...)
		}
		extract.Log = func(format string, a ...interface{}) {
			fmt.Fprintf(w, "        "+format, a...)
		}
		scanlib.Log = func(format string, a ...interface{}) {
			fmt.Fprintf(w, "            "+format, a...)
		}
	}

	d, _ := os.Getwd()
	log("svoextract %s\n\ndir: %s\ncfg: %#v\n\n", version, d, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// both paths are absolute, so the native filesystem is used as-is
	native := osfs.New("")

	sum, err := batch.Run(ctx, cfg, native, native, func(e batch.Event) {
		fmt.Printf("> %s\n", e)
	})
	if errors.Is(err, context.Canceled) {
		checkErr(errors.New("interrupted"), "Extraction stopped")
	}
	checkErr(err, "Could not extract containers")

	log("summary: %#v\n", sum)
	fmt.Printf("\n%d textures extracted from %d containers (%d failed textures, %d failed containers, %d without textures)\n", sum.Extracted, sum.Files, sum.Failed, sum.FailedFiles, sum.Empty)
	os.Exit(0)
}

func checkErr(err error, msg string) {
	if err == nil {
		return
	}
	if msg != "" {
		log("Fatal: %s: %v\n", msg, err)
		fmt.Fprintf(os.Stderr, "Fatal: %s: %v\n", msg, err)
	} else {
		log("Fatal: %v\n", err)
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
	}
	os.Exit(1)
}
