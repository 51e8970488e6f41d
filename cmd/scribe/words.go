package main

import (
	"encoding/json"
	"fmt"

	"github.com/praetorian-inc/scribe/pkg/config"
	"github.com/praetorian-inc/scribe/pkg/store"
	"github.com/spf13/cobra"
)

var (
	wordsStorePath string
	wordsFormat    string
	mergeOutput    string
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage custom words",
	Long:  "Commands for adding, listing and merging the custom words accepted by every check",
}

var wordsAddCmd = &cobra.Command{
	Use:   "add <word> [word...]",
	Short: "Add custom words",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWordsAdd,
}

var wordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List custom words",
	RunE:  runWordsList,
}

var wordsMergeCmd = &cobra.Command{
	Use:   "merge <source1.db> <source2.db> [source3.db...]",
	Short: "Merge custom word databases",
	Long: `Merge the custom words of several databases into one output database.

Duplicate words are stored once; the first occurrence keeps its position.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runWordsMerge,
}

func init() {
	wordsCmd.PersistentFlags().StringVar(&wordsStorePath, "store", "", "Custom word database (default from config)")
	wordsListCmd.Flags().StringVar(&wordsFormat, "format", "text", "Output format: text, json")
	wordsMergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "merged.db", "Output database path")

	wordsCmd.AddCommand(wordsAddCmd)
	wordsCmd.AddCommand(wordsListCmd)
	wordsCmd.AddCommand(wordsMergeCmd)
}

// openWordStore opens the store named by --store or the config.
func openWordStore() (store.Store, string, error) {
	path := wordsStorePath
	if path == "" {
		cfg, err := loadConfig()
		if err != nil {
			return nil, "", err
		}
		path = cfg.Store.Path
	}
	if path == store.MemoryPath {
		return nil, "", fmt.Errorf("store path is %s; set store.path in %s or pass --store", store.MemoryPath, config.DefaultPath)
	}

	s, err := store.New(store.Config{Path: path})
	if err != nil {
		return nil, "", fmt.Errorf("opening store: %w", err)
	}
	return s, path, nil
}

func runWordsAdd(cmd *cobra.Command, args []string) error {
	s, path, err := openWordStore()
	if err != nil {
		return err
	}
	defer s.Close()

	added, present := 0, 0
	for _, w := range args {
		exists, err := s.Contains(w)
		if err != nil {
			return fmt.Errorf("looking up %q: %w", w, err)
		}
		if exists {
			present++
			continue
		}
		if err := s.Add(w); err != nil {
			return fmt.Errorf("adding %q: %w", w, err)
		}
		added++
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Added %d words to %s (%d already present)\n", added, path, present)
	}
	return nil
}

func runWordsList(cmd *cobra.Command, args []string) error {
	s, _, err := openWordStore()
	if err != nil {
		return err
	}
	defer s.Close()

	words, err := s.Words()
	if err != nil {
		return fmt.Errorf("listing words: %w", err)
	}

	switch wordsFormat {
	case "json":
		if words == nil {
			words = []string{}
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(words)
	case "text":
		for _, w := range words {
			fmt.Fprintln(cmd.OutOrStdout(), w)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", wordsFormat)
	}
}

func runWordsMerge(cmd *cobra.Command, args []string) error {
	stats, err := store.Merge(store.MergeConfig{
		SourcePaths: args,
		DestPath:    mergeOutput,
	})
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Merge complete:\n")
	fmt.Fprintf(cmd.OutOrStdout(), "  Sources processed: %d\n", stats.SourcesProcessed)
	fmt.Fprintf(cmd.OutOrStdout(), "  Words merged: %d\n", stats.WordsMerged)
	fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", mergeOutput)

	return nil
}
