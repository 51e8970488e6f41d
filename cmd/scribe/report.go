package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/praetorian-inc/scribe/pkg/sarif"
	"github.com/praetorian-inc/scribe/pkg/types"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// styles holds color formatters for human output
type styles struct {
	path       *color.Color
	position   *color.Color
	word       *color.Color
	suggestion *color.Color
	heading    *color.Color
}

// newStyles creates color formatters for report output
// enabled=false respects --color=never and the NO_COLOR env var
func newStyles(enabled bool) *styles {
	s := &styles{
		path:       color.New(color.Bold, color.FgHiWhite),
		position:   color.New(color.FgHiBlue),
		word:       color.New(color.Bold, color.FgRed),
		suggestion: color.New(color.FgHiGreen),
		heading:    color.New(color.Bold),
	}

	if !enabled {
		s.path.DisableColor()
		s.position.DisableColor()
		s.word.DisableColor()
		s.suggestion.DisableColor()
		s.heading.DisableColor()
	}

	return s
}

// colorEnabled resolves the --color flag.
func colorEnabled(mode string) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		// Check if stdout is a TTY and NO_COLOR is not set
		return term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == "", nil
	default:
		return false, fmt.Errorf("unknown color mode: %s", mode)
	}
}

func outputHuman(cmd *cobra.Command, reports []fileReport) error {
	out := cmd.OutOrStdout()

	enabled, err := colorEnabled(checkColor)
	if err != nil {
		return err
	}
	color.NoColor = !enabled
	s := newStyles(enabled)

	for _, r := range reports {
		if len(r.Findings) == 0 {
			continue
		}
		fmt.Fprintf(out, "\n%s\n", s.path.Sprint(r.Path))
		for _, f := range r.Findings {
			line := fmt.Sprintf("  %s  %s",
				s.position.Sprintf("%d:%d", f.Line, f.Column),
				s.word.Sprint(f.Word))
			if len(f.Suggestions) > 0 {
				styled := make([]string, len(f.Suggestions))
				for i, sug := range f.Suggestions {
					styled[i] = s.suggestion.Sprint(sug)
				}
				line += fmt.Sprintf("  %s %s", s.heading.Sprint("did you mean:"), strings.Join(styled, ", "))
			}
			fmt.Fprintln(out, line)
		}
	}
	return nil
}

func outputJSON(cmd *cobra.Command, reports []fileReport) error {
	if reports == nil {
		reports = []fileReport{}
	}
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(reports)
}

// outputSARIF outputs misspellings in SARIF 2.1.0 format
func outputSARIF(cmd *cobra.Command, reports []fileReport, rules []*types.Rule) error {
	report := sarif.NewReport()
	for _, r := range rules {
		report.AddRule(r)
	}
	for _, r := range reports {
		for _, f := range r.Findings {
			report.AddResult(f.loc, r.Path, f.Suggestions)
		}
	}

	jsonBytes, err := report.ToJSON()
	if err != nil {
		return fmt.Errorf("serializing SARIF: %w", err)
	}
	if _, err := cmd.OutOrStdout().Write(jsonBytes); err != nil {
		return fmt.Errorf("writing SARIF output: %w", err)
	}
	return nil
}
