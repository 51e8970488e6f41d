package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/praetorian-inc/scribe/pkg/dictionary"
	"github.com/spf13/cobra"
)

var (
	suggestLimit  int
	suggestFormat string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <word>",
	Short: "Suggest corrections for a word",
	Long:  "Look a word up in the configured dictionary and list corrections with their edit distance",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "n", 0, "Maximum suggestions (default from config)")
	suggestCmd.Flags().StringVar(&suggestFormat, "format", "table", "Output format: table, json")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	word := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	limit := cfg.Suggest.Limit
	if suggestLimit > 0 {
		limit = suggestLimit
	}

	dict, err := dictionary.Open(cfg.DictionaryOptions())
	if err != nil {
		return fmt.Errorf("opening dictionary: %w", err)
	}
	defer dict.Close()

	correct, err := dict.Check(word)
	if err != nil {
		return fmt.Errorf("checking %q: %w", word, err)
	}

	suggestions := []dictionary.Suggestion{}
	if !correct {
		suggestions, err = dictionary.Suggestions(dict, word, limit)
		if err != nil {
			return fmt.Errorf("suggesting for %q: %w", word, err)
		}
	}

	switch suggestFormat {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(struct {
			Word        string                  `json:"word"`
			Correct     bool                    `json:"correct"`
			Suggestions []dictionary.Suggestion `json:"suggestions"`
		}{word, correct, suggestions})
	case "table":
		out := cmd.OutOrStdout()
		if correct {
			fmt.Fprintf(out, "%q is spelled correctly\n", word)
			return nil
		}
		if len(suggestions) == 0 {
			fmt.Fprintf(out, "No suggestions for %q\n", word)
			return nil
		}
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		defer w.Flush()
		fmt.Fprintf(w, "Suggestion\tDistance\n")
		fmt.Fprintf(w, "----------\t--------\n")
		for _, s := range suggestions {
			fmt.Fprintf(w, "%s\t%d\n", s.Word, s.Distance)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", suggestFormat)
	}
}
