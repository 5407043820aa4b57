package registry

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osvk/uireplay/pkg/domain"
)

// SkipRule matches records that are recognized but intentionally not
// executed. Empty fields are wildcards; a rule with several fields set
// requires all of them to match.
type SkipRule struct {
	Event        string `yaml:"event,omitempty"`
	Action       string `yaml:"action,omitempty"`
	TestID       string `yaml:"testId,omitempty"`
	TestIDPrefix string `yaml:"testIdPrefix,omitempty"`
}

// Matches reports whether the rule covers rec.
func (r SkipRule) Matches(rec *domain.ActionRecord) bool {
	if r.Event != "" && r.Event != rec.Event {
		return false
	}
	if r.Action != "" && r.Action != rec.Action {
		return false
	}
	if r.TestID != "" && r.TestID != rec.Target.TestID {
		return false
	}
	if r.TestIDPrefix != "" && !strings.HasPrefix(rec.Target.TestID, r.TestIDPrefix) {
		return false
	}
	return true
}

// SkipPolicy decides which records are silently skipped. Skipped records
// count as seen but not executed, and hooks bound to their Seq never fire.
//
// The policy is resolved once at startup and treated as immutable during a
// run, like the registry.
type SkipPolicy struct {
	rules []SkipRule
}

// DefaultSkipPolicy skips raw keyboard-level events. They are artifacts of
// capture: the semantically meaningful change they caused is recorded
// separately as an input/change record.
func DefaultSkipPolicy() *SkipPolicy {
	return NewSkipPolicy(
		SkipRule{Event: "keydown"},
		SkipRule{Event: "keyup"},
		SkipRule{Event: "keypress"},
	)
}

// NewSkipPolicy builds a policy from an explicit rule list.
func NewSkipPolicy(rules ...SkipRule) *SkipPolicy {
	return &SkipPolicy{rules: append([]SkipRule(nil), rules...)}
}

// Extend returns a new policy with extra rules appended. The receiver is not
// modified.
func (p *SkipPolicy) Extend(rules ...SkipRule) *SkipPolicy {
	merged := append(append([]SkipRule(nil), p.rules...), rules...)
	return &SkipPolicy{rules: merged}
}

// ShouldSkip reports whether rec is covered by any rule.
func (p *SkipPolicy) ShouldSkip(rec *domain.ActionRecord) bool {
	if p == nil {
		return false
	}
	for _, r := range p.rules {
		if r.Matches(rec) {
			return true
		}
	}
	return false
}

// Rules returns a copy of the active rule list.
func (p *SkipPolicy) Rules() []SkipRule {
	return append([]SkipRule(nil), p.rules...)
}

type skipRulesFile struct {
	Skip []SkipRule `yaml:"skip"`
}

// LoadSkipRules reads extra skip rules from a YAML file:
//
//	skip:
//	  - event: input
//	    action: set-value
//	    testId: sql-manager-add-query-name
//	  - event: click
//	    testIdPrefix: sql-codemirror
func LoadSkipRules(path string) ([]SkipRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read skip rules: %w", err)
	}
	var f skipRulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse skip rules %s: %w", path, err)
	}
	return f.Skip, nil
}
