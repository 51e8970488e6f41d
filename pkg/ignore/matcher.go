// Package ignore finds regions of text whose words are never spell-checked,
// such as URLs, e-mail addresses and code.
package ignore

import (
	"cmp"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/praetorian-inc/scribe/pkg/rule"
	"github.com/praetorian-inc/scribe/pkg/types"
)

// DefaultTimeout bounds a single rule's matching on one text.
const DefaultTimeout = 2 * time.Second

// Config selects the rules a Matcher is built from.
type Config struct {
	Builtin   bool     // include the embedded rules
	RulesFile string   // optional YAML file with extra rules
	Disable   []string // rule ID patterns to drop
	Timeout   time.Duration
}

// DefaultConfig enables the built-in rules.
func DefaultConfig() Config {
	return Config{Builtin: true, Timeout: DefaultTimeout}
}

// Matcher reports the byte ranges covered by its rules.
// It is safe for concurrent use.
type Matcher struct {
	rules     []*types.Rule
	regexes   map[string]*regexp2.Regexp // keyed by rule ID, read-only after init
	prefilter *prefilter
}

// Load builds a Matcher from cfg. It returns nil without error when cfg
// selects no rules.
func Load(cfg Config) (*Matcher, error) {
	loader := rule.NewLoader()

	var rules []*types.Rule
	if cfg.Builtin {
		builtin, err := loader.LoadBuiltinRules()
		if err != nil {
			return nil, fmt.Errorf("loading built-in ignore rules: %w", err)
		}
		rules = append(rules, builtin...)
	}
	if cfg.RulesFile != "" {
		extra, err := loader.LoadRulesFile(cfg.RulesFile)
		if err != nil {
			return nil, fmt.Errorf("loading ignore rules: %w", err)
		}
		rules = append(rules, extra...)
	}

	rules, err := rule.Filter(rules, rule.FilterConfig{Exclude: cfg.Disable})
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, nil
	}
	return New(rules, cfg.Timeout)
}

// New compiles rules into a Matcher.
func New(rules []*types.Rule, timeout time.Duration) (*Matcher, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("no rules provided")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	m := &Matcher{
		rules:     rules,
		regexes:   make(map[string]*regexp2.Regexp, len(rules)),
		prefilter: newPrefilter(rules),
	}
	for _, r := range rules {
		if _, dup := m.regexes[r.ID]; dup {
			return nil, fmt.Errorf("duplicate ignore rule ID: %s", r.ID)
		}
		re, err := rule.Compile(r.Pattern, timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %q for rule %s: %w", r.Pattern, r.ID, err)
		}
		m.regexes[r.ID] = re
	}
	return m, nil
}

// Rules returns the rules the matcher was built from.
func (m *Matcher) Rules() []*types.Rule {
	if m == nil {
		return nil
	}
	return slices.Clone(m.rules)
}

// Exclusions returns the byte ranges of text covered by any rule, sorted
// by Start with overlapping and adjacent ranges merged. A rule that errors
// or times out is skipped for this text with a warning.
func (m *Matcher) Exclusions(text string) []types.OffsetSpan {
	if m == nil || text == "" {
		return nil
	}
	candidates := m.prefilter.filter(text)
	if len(candidates) == 0 {
		return nil
	}

	// regexp2 reports rune indices; byteAt maps them back to bytes.
	byteAt := runeOffsets(text)

	var spans []types.OffsetSpan
	for _, r := range candidates {
		re := m.regexes[r.ID]
		match, err := re.FindStringMatch(text)
		for err == nil && match != nil {
			if match.Length > 0 {
				spans = append(spans, types.OffsetSpan{
					Start: byteAt[match.Index],
					End:   byteAt[match.Index+match.Length],
				})
			}
			match, err = re.FindNextMatch(match)
		}
		if err != nil {
			warn(r.ID, err)
		}
	}
	return merge(spans)
}

func warn(ruleID string, err error) {
	if strings.Contains(err.Error(), "match timeout") {
		fmt.Fprintf(os.Stderr, "[warn] ignore rule %s regex timeout (skipping rule for this text)\n", ruleID)
		return
	}
	fmt.Fprintf(os.Stderr, "[warn] ignore rule %s regex error (skipping rule for this text): %v\n", ruleID, err)
}

// runeOffsets returns the byte offset of every rune index in text, plus
// len(text) for the index one past the last rune.
func runeOffsets(text string) []int {
	offsets := make([]int, 0, utf8.RuneCountInString(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	return append(offsets, len(text))
}

func merge(spans []types.OffsetSpan) []types.OffsetSpan {
	if len(spans) == 0 {
		return nil
	}
	slices.SortFunc(spans, func(a, b types.OffsetSpan) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.End, b.End))
	})

	out := spans[:1]
	for _, s := range spans[1:] {
		last := &out[len(out)-1]
		if s.Start <= last.End {
			last.End = max(last.End, s.End)
			continue
		}
		out = append(out, s)
	}
	return out
}
