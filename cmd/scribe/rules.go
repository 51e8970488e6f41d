package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/praetorian-inc/scribe/pkg/ignore"
	"github.com/praetorian-inc/scribe/pkg/types"
	"github.com/spf13/cobra"
)

var (
	rulesFile    string
	outputFormat string
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage ignore rules",
	Long:  "Commands for listing the rules that mark text regions, such as URLs and code, as not spell-checked",
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active ignore rules",
	Long:  "Display the ignore rules selected by the config with their IDs and names",
	RunE:  runRulesList,
}

func init() {
	rulesCmd.AddCommand(rulesListCmd)
	rulesListCmd.Flags().StringVar(&rulesFile, "rules", "", "Path to an additional ignore rules file")
	rulesListCmd.Flags().StringVar(&outputFormat, "format", "table", "Output format: table, json")
}

func runRulesList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts := cfg.IgnoreOptions()
	if rulesFile != "" {
		opts.RulesFile = rulesFile
	}

	m, err := ignore.Load(opts)
	if err != nil {
		return err
	}
	rules := m.Rules()

	switch outputFormat {
	case "json":
		return outputRulesJSON(cmd, rules)
	case "table":
		return outputRulesTable(cmd, rules)
	default:
		return fmt.Errorf("unknown output format: %s", outputFormat)
	}
}

func outputRulesJSON(cmd *cobra.Command, rules []*types.Rule) error {
	if rules == nil {
		rules = []*types.Rule{}
	}
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(rules)
}

func outputRulesTable(cmd *cobra.Command, rules []*types.Rule) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "ID\tName\tKeywords\n")
	fmt.Fprintf(w, "--\t----\t--------\n")

	for _, r := range rules {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.Name, strings.Join(r.Keywords, ","))
	}

	return nil
}
