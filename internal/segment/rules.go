// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/chdonahue/art-valuation/internal/fields"
)

// BoundaryRule describes one way a record can start. The rule table is
// data so a new document family only needs a new YAML file, not code.
//
// A line is a boundary for the rule when it matches Pattern and, if
// ConfirmLabels is set, at least one of those labels opens a line
// within Window lines after it. The confirmation requirement is what
// keeps a title containing the word "Lot" from splitting a record.
type BoundaryRule struct {
	// Name identifies the rule in warnings and tests.
	Name string `yaml:"name"`

	// Pattern is a regular expression matched against the trimmed line.
	Pattern string `yaml:"pattern"`

	// ConfirmLabels lists labels, one of which must open a nearby
	// following line for the match to count. Empty means no confirmation
	// is required.
	ConfirmLabels []string `yaml:"confirm_labels,omitempty"`

	// Window is how many following lines are searched for a confirming
	// label. Zero means defaultWindow.
	Window int `yaml:"window,omitempty"`
}

const defaultWindow = 2

// ruleFile is the on-disk form of a rule table.
type ruleFile struct {
	Rules []BoundaryRule `yaml:"rules"`
}

// RuleTable is a compiled, ordered set of boundary rules. Earlier rules
// win when several match the same line.
type RuleTable struct {
	rules []compiledRule
}

type compiledRule struct {
	BoundaryRule
	re *regexp.Regexp
}

// DefaultRules returns the rule table for artnet-style auction listings:
// a "Lot <number>" heading, or an artist heading confirmed by a Title
// label on one of the next two lines.
func DefaultRules() *RuleTable {
	t, err := Compile([]BoundaryRule{
		{
			Name:    "lot-heading",
			Pattern: `^Lot\s+[0-9][0-9A-Za-z-]*\b`,
		},
		{
			Name:          "artist-heading",
			Pattern:       `^[^:]{2,120}$`,
			ConfirmLabels: []string{"Title"},
			Window:        2,
		},
	})
	if err != nil {
		panic(err) // built-in table must compile
	}
	return t
}

// LoadRules reads a rule table from a YAML file.
func LoadRules(path string) (*RuleTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file %s: %w", path, err)
	}

	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing rules file %s: %w", path, err)
	}
	if len(f.Rules) == 0 {
		return nil, fmt.Errorf("rules file %s defines no rules", path)
	}

	t, err := Compile(f.Rules)
	if err != nil {
		return nil, fmt.Errorf("rules file %s: %w", path, err)
	}
	return t, nil
}

// Compile validates and compiles a rule list into a table.
func Compile(rules []BoundaryRule) (*RuleTable, error) {
	t := &RuleTable{rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %q: compiling pattern: %w", r.Name, err)
		}
		if r.Window <= 0 {
			r.Window = defaultWindow
		}
		t.rules = append(t.rules, compiledRule{BoundaryRule: r, re: re})
	}
	return t, nil
}

// Match returns the name of the first rule for which line i is a
// boundary, or "" when none matches.
func (t *RuleTable) Match(lines []string, i int) string {
	if r := t.match(lines, i); r != nil {
		return r.Name
	}
	return ""
}

// match returns the first rule for which line i is a boundary, or nil.
func (t *RuleTable) match(lines []string, i int) *compiledRule {
	trimmed := strings.TrimSpace(lines[i])
	if trimmed == "" {
		return nil
	}

	for k := range t.rules {
		r := &t.rules[k]
		if !r.re.MatchString(trimmed) {
			continue
		}
		if fields.LabelLine(trimmed) != "" {
			// A label line belongs to the record body, never a heading.
			continue
		}
		if len(r.ConfirmLabels) == 0 || r.confirmed(lines, i) {
			return r
		}
	}
	return nil
}

// confirmed reports whether one of the rule's labels opens a line
// within Window lines after i. A following line that itself matches
// the pattern supersedes the candidate: of consecutive candidates
// above one label line, only the last is the heading.
func (r *compiledRule) confirmed(lines []string, i int) bool {
	for j := i + 1; j <= i+r.Window && j < len(lines); j++ {
		trimmed := strings.TrimSpace(lines[j])
		if trimmed == "" {
			continue
		}
		if got := fields.LabelLine(trimmed); got != "" {
			for _, want := range r.ConfirmLabels {
				if got == want {
					return true
				}
			}
			continue
		}
		if r.re.MatchString(trimmed) {
			return false
		}
	}
	return false
}
