package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/seitarof/gen-wrapper/internal/cli"
	"github.com/seitarof/gen-wrapper/internal/generator"
	"github.com/seitarof/gen-wrapper/internal/harness"
	"github.com/seitarof/gen-wrapper/internal/matcher"
	"github.com/seitarof/gen-wrapper/internal/parser"
	"github.com/seitarof/gen-wrapper/internal/resolver"
	"github.com/seitarof/gen-wrapper/pkg/protocol/catalog"
)

var version = "dev"

func main() {
	cfg, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "gen-wrapper",
		Level:  hclog.LevelFromString(cfg.LogLevel),
		Output: os.Stderr,
	})

	h := harness.New(harness.WithLogger(logger.Named("harness")))
	p := parser.New()
	fm := matcher.NewFieldMatcher(matcher.WithDenylist(cfg.Deny...), matcher.WithLogger(logger.Named("matcher")))
	tm := matcher.NewTypeMatcher(matcher.WithDenylist(cfg.Deny...), matcher.WithLogger(logger.Named("matcher")))
	r := resolver.New(resolver.DefaultRules()...)
	f := generator.NewGoimportsFormatter()
	w := generator.NewFileWriter()
	g := generator.New(f, w)

	runner := cli.NewRunner(h, catalog.Default(), p, fm, r, g,
		cli.WithLogger(logger.Named("runner")),
		cli.WithTypeMatcher(tm),
		cli.WithVersion(version),
	)

	if cfg.ListAccessors {
		if err := runner.ListAccessors(cfg, os.Stdout); err != nil {
			logger.Error("list accessors failed", "error", err)
			os.Exit(1)
		}
		return
	}

	summary, err := runner.Run(cfg)
	if err != nil {
		logger.Error("generation aborted", "error", err)
		os.Exit(1)
	}
	logger.Info("generation finished",
		"generated", summary.Generated,
		"skipped", summary.Skipped,
		"dry_run", cfg.DryRun)
	if err := summary.Err(); err != nil {
		logger.Warn("some wrappers were not generated", "error", err)
		if cfg.Strict {
			os.Exit(1)
		}
	}
}
