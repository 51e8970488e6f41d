package ignore

import (
	"strings"

	"github.com/cloudflare/ahocorasick"

	"github.com/praetorian-inc/scribe/pkg/types"
)

// prefilter selects the rules worth running on a text by looking for their
// keywords with a single Aho-Corasick pass. Keywords match
// case-insensitively.
type prefilter struct {
	matcher   *ahocorasick.Matcher
	keywords  []string                 // lower-cased keyword at each index
	byKeyword map[string][]*types.Rule // keyword -> rules needing it
	always    []*types.Rule            // rules without keywords
}

func newPrefilter(rules []*types.Rule) *prefilter {
	pf := &prefilter{byKeyword: make(map[string][]*types.Rule)}

	for _, rule := range rules {
		if len(rule.Keywords) == 0 {
			pf.always = append(pf.always, rule)
			continue
		}
		for _, kw := range rule.Keywords {
			kw = strings.ToLower(kw)
			if _, ok := pf.byKeyword[kw]; !ok {
				pf.keywords = append(pf.keywords, kw)
			}
			pf.byKeyword[kw] = append(pf.byKeyword[kw], rule)
		}
	}

	if len(pf.keywords) > 0 {
		pf.matcher = ahocorasick.NewStringMatcher(pf.keywords)
	}
	return pf
}

// filter returns the rules that might match text, in no particular order.
func (pf *prefilter) filter(text string) []*types.Rule {
	result := make([]*types.Rule, 0, len(pf.always))
	result = append(result, pf.always...)
	if pf.matcher == nil {
		return result
	}

	seen := make(map[*types.Rule]bool)
	for _, hit := range pf.matcher.Match([]byte(strings.ToLower(text))) {
		for _, rule := range pf.byKeyword[pf.keywords[hit]] {
			if !seen[rule] {
				seen[rule] = true
				result = append(result, rule)
			}
		}
	}
	return result
}
