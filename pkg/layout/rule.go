// Copyright 2026 The ptop Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package layout

import (
	"fmt"
	"strings"

	"github.com/ptop-project/ptop/pkg/config"
)

// DisplayAction is the outcome of evaluating a panel's rule set against
// a DataContext.
type DisplayAction int

const (
	// Show paints the panel normally.
	Show DisplayAction = iota
	// Hide omits the panel from the grid entirely.
	Hide
	// ShowPlaceholder paints the panel's chrome with a one-line reason
	// instead of its normal content.
	ShowPlaceholder
	// Compact paints a reduced-detail form of the panel.
	Compact
	// Expand paints an enlarged-detail form of the panel.
	Expand
)

// predicate is a single compiled comparison: `data.<field> <op> <value>`
// or `cap.<name>` as a bare boolean test.
type predicate struct {
	field string
	op    string
	value string
	isCap bool
}

// Rule is one compiled `display_rules` entry.
type Rule struct {
	pred        predicate
	action      DisplayAction
	placeholder string
}

// RuleSet is the ordered list of Rules for one panel; the first whose
// predicate matches wins, and Show is the default when none match.
type RuleSet struct {
	rules []Rule
}

// Evaluate returns the winning DisplayAction (and its placeholder text,
// if any) for ctx. Evaluation is pure arithmetic/string comparison over
// a handful of fields, well within the sub-millisecond budget.
func (rs RuleSet) Evaluate(ctx DataContext) (DisplayAction, string) {
	for _, r := range rs.rules {
		if r.pred.matches(ctx) {
			return r.action, r.placeholder
		}
	}
	return Show, ""
}

func (p predicate) matches(ctx DataContext) bool {
	if p.isCap {
		return ctx.capability(p.field)
	}
	state := ctx.state(p.field)
	switch p.op {
	case "==":
		return state.String() == p.value
	case "!=":
		return state.String() != p.value
	default:
		return false
	}
}

// CompileRuleSet compiles a panel's raw config.DisplayRule list into a
// RuleSet, rejecting expressions outside the supported grammar.
func CompileRuleSet(rules []config.DisplayRule) (RuleSet, error) {
	var rs RuleSet
	for _, raw := range rules {
		rule, err := compileRule(raw)
		if err != nil {
			return RuleSet{}, err
		}
		rs.rules = append(rs.rules, rule)
	}
	return rs, nil
}

func compileRule(raw config.DisplayRule) (Rule, error) {
	pred, err := compilePredicate(raw.When)
	if err != nil {
		return Rule{}, err
	}
	action, err := compileAction(raw.Action)
	if err != nil {
		return Rule{}, err
	}
	return Rule{pred: pred, action: action, placeholder: raw.Placeholder}, nil
}

// compilePredicate parses expressions of the form:
//
//	data.<field> == <State>
//	data.<field> != <State>
//	cap.<name>
//
// where <State> is one of Pending, Error, Ready, Stale. This is the
// entire supported grammar; anything else is a compile error.
func compilePredicate(expr string) (predicate, error) {
	expr = strings.TrimSpace(expr)
	if strings.HasPrefix(expr, "cap.") {
		name := strings.TrimSpace(strings.TrimPrefix(expr, "cap."))
		if name == "" {
			return predicate{}, fmt.Errorf("layout: empty capability name in %q", expr)
		}
		return predicate{field: name, isCap: true}, nil
	}
	if !strings.HasPrefix(expr, "data.") {
		return predicate{}, fmt.Errorf("layout: rule must start with data. or cap.: %q", expr)
	}
	rest := strings.TrimPrefix(expr, "data.")

	for _, op := range []string{"==", "!="} {
		if idx := strings.Index(rest, op); idx >= 0 {
			field := strings.TrimSpace(rest[:idx])
			value := strings.TrimSpace(rest[idx+len(op):])
			if field == "" || value == "" {
				return predicate{}, fmt.Errorf("layout: malformed rule %q", expr)
			}
			if !validState(value) {
				return predicate{}, fmt.Errorf("layout: unknown state %q in rule %q", value, expr)
			}
			return predicate{field: field, op: op, value: value}, nil
		}
	}
	return predicate{}, fmt.Errorf("layout: rule has no recognized operator: %q", expr)
}

func validState(s string) bool {
	switch s {
	case "Pending", "Error", "Ready", "Stale":
		return true
	default:
		return false
	}
}

func compileAction(action string) (DisplayAction, error) {
	switch action {
	case "show":
		return Show, nil
	case "hide":
		return Hide, nil
	case "show_placeholder":
		return ShowPlaceholder, nil
	case "compact":
		return Compact, nil
	case "expand":
		return Expand, nil
	default:
		return 0, fmt.Errorf("layout: unknown display action %q", action)
	}
}
