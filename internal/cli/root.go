// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

// Package cli implements the pathglob command.
package cli

import (
	"bufio"
	"fmt"
	"iter"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/woozymasta/pathglob"
	"github.com/woozymasta/pathglob/internal/config"
	"github.com/woozymasta/pathglob/internal/source"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// options holds flag values.
type options struct {
	configPath string
	include    []string
	exclude    []string
	extensions []string
	rulesFiles []string
	root       string
	archive    string
	null       bool
	count      bool
	verbose    bool
	noColor    bool
}

// NewRootCommand creates and returns the root cobra command for pathglob
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "pathglob [flags] [pattern...]",
		Short: "Select paths from a candidate list with glob patterns",
		Long: `pathglob filters a list of candidate paths with glob patterns and prints
the matching ones in input order.

Candidates come from standard input (one per line), a directory tree (--root)
or an archive listing (--archive). Directories are written with a trailing "/".

Patterns:
  /foo        anchored, "foo" must be the first segment
  foo         floating, "foo" may be any segment; descendants match too
  foo/        directory entry "foo/" and everything below it
  a/**/b      "**" bridges zero or more segments
  *.c, ?, []  wildcards inside one segment

Positional patterns and --include are OR-combined; --exclude drops paths.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	flags.StringArrayVarP(&opts.include, "include", "p", nil, "include pattern (repeatable)")
	flags.StringArrayVarP(&opts.exclude, "exclude", "x", nil, "exclude pattern (repeatable)")
	flags.StringSliceVarP(&opts.extensions, "ext", "e", nil, "include files with these extensions")
	flags.StringArrayVarP(&opts.rulesFiles, "rules-file", "f", nil, "rules file, \"!\" lines exclude (repeatable)")
	flags.StringVar(&opts.root, "root", "", "read candidates from this directory tree")
	flags.StringVar(&opts.archive, "archive", "", "read candidates from this zip or tar archive")
	flags.BoolVarP(&opts.null, "null", "z", false, "separate output paths with NUL")
	flags.BoolVar(&opts.count, "count", false, "print only the number of matches")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print patterns and a summary to stderr")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored stderr output")

	return cmd
}

// loadConfig merges the optional config file with flags and arguments.
func loadConfig(opts *options, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	cfg.Include = append(cfg.Include, args...)
	cfg.Include = append(cfg.Include, opts.include...)
	cfg.Exclude = append(cfg.Exclude, opts.exclude...)
	cfg.Extensions = append(cfg.Extensions, opts.extensions...)
	cfg.RulesFiles = append(cfg.RulesFiles, opts.rulesFiles...)

	if opts.root != "" {
		cfg.Root = opts.root
		cfg.Archive = ""
	}

	if opts.archive != "" {
		cfg.Archive = opts.archive
		cfg.Root = ""
	}

	cfg.NullSeparated = cfg.NullSeparated || opts.null

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	if opts.root != "" && opts.archive != "" {
		return fmt.Errorf("%w: --root and --archive are mutually exclusive", config.ErrInvalidConfig)
	}

	cfg, err := loadConfig(opts, args)
	if err != nil {
		return err
	}

	sel, err := cfg.Selector()
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	rep := newReporter(stderr, colorEnabled(stderr, opts.noColor))
	if opts.verbose {
		rep.patterns(sel)
	}

	candidates, err := candidateSource(cmd, cfg)
	if err != nil {
		return err
	}

	var srcErr error
	scanned := 0
	counted := func(yield func(string) bool) {
		for name := range source.Paths(candidates, &srcErr) {
			scanned++
			if !yield(name) {
				return
			}
		}
	}

	matched, err := writeMatches(cmd, sel, counted, cfg.NullSeparated, opts.count)
	if err != nil {
		return err
	}

	if srcErr != nil {
		return srcErr
	}

	if opts.verbose {
		rep.summary(matched, scanned)
	}

	return nil
}

// candidateSource picks the configured candidate sequence.
func candidateSource(cmd *cobra.Command, cfg *config.Config) (iter.Seq2[string, error], error) {
	switch {
	case cfg.Archive != "":
		names, err := source.Archive(cfg.Archive)
		if err != nil {
			return nil, err
		}

		return source.Values(names), nil
	case cfg.Root != "":
		return source.Dir(cfg.Root), nil
	default:
		return source.Lines(cmd.InOrStdin()), nil
	}
}

// writeMatches streams selected candidates to stdout and returns their count.
func writeMatches(cmd *cobra.Command, sel *pathglob.Selector, candidates iter.Seq[string], null bool, countOnly bool) (int, error) {
	w := bufio.NewWriter(cmd.OutOrStdout())

	sep := byte('\n')
	if null {
		sep = 0
	}

	matched := 0
	for name := range sel.Filter(candidates) {
		matched++
		if countOnly {
			continue
		}

		if _, err := w.WriteString(name); err != nil {
			return matched, fmt.Errorf("write output: %w", err)
		}

		if err := w.WriteByte(sep); err != nil {
			return matched, fmt.Errorf("write output: %w", err)
		}
	}

	if countOnly {
		if _, err := w.WriteString(strconv.Itoa(matched) + "\n"); err != nil {
			return matched, fmt.Errorf("write output: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return matched, fmt.Errorf("write output: %w", err)
	}

	return matched, nil
}
