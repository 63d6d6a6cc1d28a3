// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/woozymasta/pathglob"
)

// reporter writes diagnostics to stderr.
// Cyan: labels
// Green: matched counts
// Yellow: empty results
type reporter struct {
	w       io.Writer
	label   *color.Color
	success *color.Color
	warn    *color.Color
}

// newReporter creates a reporter; colorize forces color on or off regardless
// of fatih/color's global detection.
func newReporter(w io.Writer, colorize bool) *reporter {
	r := &reporter{
		w:       w,
		label:   color.New(color.FgCyan),
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
	}

	for _, c := range []*color.Color{r.label, r.success, r.warn} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return r
}

// colorEnabled reports whether w is a terminal and color was not disabled.
func colorEnabled(w io.Writer, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// patterns prints the compiled selector.
func (r *reporter) patterns(sel *pathglob.Selector) {
	r.line("include", formatSet(sel.Include()))
	r.line("exclude", formatSet(sel.Exclude()))
}

// summary prints matched vs scanned counts.
func (r *reporter) summary(matched int, scanned int) {
	value := r.success
	if matched == 0 {
		value = r.warn
	}

	_, _ = fmt.Fprintf(r.w, "%s: %s of %d\n",
		r.label.Sprint("matched"), value.Sprintf("%d", matched), scanned)
}

func (r *reporter) line(label string, value string) {
	_, _ = fmt.Fprintf(r.w, "%s: %s\n", r.label.Sprint(label), value)
}

// formatSet renders a set as a quoted list, "(none)" when empty.
func formatSet(set pathglob.Set) string {
	if len(set) == 0 {
		return "(none)"
	}

	quoted := make([]string, len(set))
	for i, p := range set.Strings() {
		quoted[i] = fmt.Sprintf("%q", p)
	}

	return strings.Join(quoted, ", ")
}
