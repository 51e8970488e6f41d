package rule

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/praetorian-inc/scribe/pkg/types"
)

// Compile compiles a rule pattern, trying RE2 mode first and falling back
// to the default Perl-compatible mode for features such as lookaround.
func Compile(pattern string, timeout time.Duration) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(pattern, regexp2.RE2|regexp2.Multiline)
	if err != nil {
		re, err = regexp2.Compile(pattern, regexp2.None)
		if err != nil {
			return nil, err
		}
	}
	if timeout > 0 {
		re.MatchTimeout = timeout
	}
	return re, nil
}

// ValidateRule checks rule consistency and required fields.
// Every example must be matched by the pattern and no negative example may
// be. Returns error if rule is invalid.
func ValidateRule(r *types.Rule) error {
	if r == nil {
		return fmt.Errorf("rule is nil")
	}

	// Check required fields
	if r.ID == "" {
		return fmt.Errorf("rule ID is required")
	}
	if r.Name == "" {
		return fmt.Errorf("rule name is required")
	}
	if r.Pattern == "" {
		return fmt.Errorf("rule pattern is required")
	}

	re, err := Compile(r.Pattern, time.Second)
	if err != nil {
		return fmt.Errorf("invalid pattern regex for rule %s: %w", r.ID, err)
	}

	for _, ex := range r.Examples {
		ok, err := re.MatchString(ex)
		if err != nil {
			return fmt.Errorf("rule %s example %q: %w", r.ID, ex, err)
		}
		if !ok {
			return fmt.Errorf("rule %s does not match example %q", r.ID, ex)
		}
	}
	for _, ex := range r.NegativeExamples {
		ok, err := re.MatchString(ex)
		if err != nil {
			return fmt.Errorf("rule %s negative example %q: %w", r.ID, ex, err)
		}
		if ok {
			return fmt.Errorf("rule %s matches negative example %q", r.ID, ex)
		}
	}

	return nil
}

// ValidateRules validates each rule and rejects duplicate IDs.
func ValidateRules(rules []*types.Rule) error {
	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		if err := ValidateRule(r); err != nil {
			return err
		}
		if seen[r.ID] {
			return fmt.Errorf("duplicate rule ID: %s", r.ID)
		}
		seen[r.ID] = true
	}
	return nil
}
