package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/praetorian-inc/scribe/pkg/enum"
	"github.com/praetorian-inc/scribe/pkg/session"
	"github.com/praetorian-inc/scribe/pkg/types"
	"github.com/spf13/cobra"
)

var (
	checkFormat        string
	checkColor         string
	checkIncludeHidden bool
	checkMaxFileSize   int64
	checkExtensions    []string
	checkSuggest       bool
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Check files for misspelled words",
	Long: `Check files and directories for misspelled words.

Directories are walked recursively, honouring .gitignore. Binary files and
files that are not valid UTF-8 are skipped. With no paths, or the path "-",
text is read from stdin.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkFormat, "format", "human", "Output format: human, json, sarif")
	checkCmd.Flags().StringVar(&checkColor, "color", "auto", "Color output: auto, always, never")
	checkCmd.Flags().BoolVar(&checkIncludeHidden, "include-hidden", false, "Include hidden files and directories")
	checkCmd.Flags().Int64Var(&checkMaxFileSize, "max-file-size", 0, "Maximum file size to check in bytes (default from config)")
	checkCmd.Flags().StringSliceVar(&checkExtensions, "ext", nil, "Only check files with these extensions (comma-separated)")
	checkCmd.Flags().BoolVar(&checkSuggest, "suggest", false, "Include suggestions for each misspelled word")
}

// fileReport is the check result for one input.
type fileReport struct {
	Path     string    `json:"path"`
	Findings []finding `json:"findings"`
}

// finding is a located misspelling.
type finding struct {
	Word        string   `json:"word"`
	Index       int      `json:"index"`
	Length      int      `json:"length"`
	Line        int      `json:"line"`
	Column      int      `json:"column"`
	Suggestions []string `json:"suggestions,omitempty"`

	loc types.Location
}

func runCheck(cmd *cobra.Command, args []string) error {
	switch checkFormat {
	case "human", "json", "sarif":
	default:
		return fmt.Errorf("unknown output format: %s", checkFormat)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if checkMaxFileSize > 0 {
		cfg.Check.MaxFileSize = checkMaxFileSize
	}
	if checkIncludeHidden {
		cfg.Check.IncludeHidden = true
	}

	sess, m, err := openSession(cmd, cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	c := &checkRun{sess: sess, suggestions: make(map[string][]string)}

	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, target := range args {
		if target == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			if err := c.check("stdin", string(data)); err != nil {
				return err
			}
			continue
		}

		enumerator := enum.NewFilesystemEnumerator(enum.Config{
			Root:          target,
			IncludeHidden: cfg.Check.IncludeHidden,
			MaxFileSize:   cfg.Check.MaxFileSize,
			Extensions:    checkExtensions,
		})
		err := enumerator.Enumerate(commandContext(cmd), func(f enum.File) error {
			return c.check(f.Path, f.Content)
		})
		if err != nil {
			return fmt.Errorf("checking %s: %w", target, err)
		}
	}

	reports := c.sorted()
	total := 0
	for _, r := range reports {
		total += len(r.Findings)
	}

	// Keep stdout pure JSON for machine formats
	summary := cmd.OutOrStdout()
	if checkFormat != "human" {
		summary = cmd.ErrOrStderr()
	}
	if !quiet {
		fmt.Fprintf(summary, "Check complete: %d files, %d misspellings\n", len(reports), total)
	}

	switch checkFormat {
	case "json":
		return outputJSON(cmd, reports)
	case "sarif":
		return outputSARIF(cmd, reports, m.Rules())
	default:
		return outputHuman(cmd, reports)
	}
}

// checkRun accumulates reports from concurrent enumerator callbacks.
type checkRun struct {
	sess *session.Session

	mu          sync.Mutex
	reports     []fileReport
	suggestions map[string][]string // cache by word
}

func (c *checkRun) check(path, content string) error {
	matches, err := c.sess.Check(content)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	r := fileReport{Path: path, Findings: []finding{}}
	for _, loc := range types.LocateMatches(content, matches) {
		f := finding{
			Word:   loc.Match.Word,
			Index:  loc.Match.Index,
			Length: loc.Match.Length,
			Line:   loc.Source.Start.Line,
			Column: loc.Source.Start.Column,
			loc:    loc,
		}
		if checkSuggest {
			if f.Suggestions, err = c.suggest(f.Word); err != nil {
				return err
			}
		}
		r.Findings = append(r.Findings, f)
	}

	c.mu.Lock()
	c.reports = append(c.reports, r)
	c.mu.Unlock()
	return nil
}

func (c *checkRun) suggest(word string) ([]string, error) {
	c.mu.Lock()
	cached, ok := c.suggestions[word]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	suggestions, err := c.sess.Suggest(word)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.suggestions[word] = suggestions
	c.mu.Unlock()
	return suggestions, nil
}

// sorted returns the reports ordered by path.
func (c *checkRun) sorted() []fileReport {
	c.mu.Lock()
	defer c.mu.Unlock()
	sort.SliceStable(c.reports, func(i, j int) bool {
		return c.reports[i].Path < c.reports[j].Path
	})
	return c.reports
}

// commandContext returns the command's context, or Background outside
// cobra's Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
