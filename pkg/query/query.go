// Package query filters extracted journey paths with expression strings.
// Expressions see one path at a time through a small variable set and
// must evaluate to a boolean, e.g.:
//
//	length > 3 && confidence >= 80
//	"Checkout" in labels
//	journey == "login"
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/rinasm/journeymap/pkg/domain"
)

// Filter is a compiled path predicate, safe for reuse across paths and
// goroutines.
type Filter struct {
	source  string
	program *vm.Program
}

// Compile parses and type-checks a filter expression. The expression
// must produce a boolean.
func Compile(source string) (*Filter, error) {
	program, err := expr.Compile(source, expr.Env(env(domain.Path{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", source, err)
	}
	return &Filter{source: source, program: program}, nil
}

// Source returns the original expression text.
func (f *Filter) Source() string { return f.source }

// Match evaluates the filter against one path.
func (f *Filter) Match(p domain.Path) (bool, error) {
	out, err := expr.Run(f.program, env(p))
	if err != nil {
		return false, fmt.Errorf("filter %q: %w", f.source, err)
	}
	return out.(bool), nil
}

// Apply returns the paths matching the filter, preserving order. The
// result is always a fresh slice, never a view over the input.
func (f *Filter) Apply(paths []domain.Path) ([]domain.Path, error) {
	matched := make([]domain.Path, 0, len(paths))
	for _, p := range paths {
		ok, err := f.Match(p)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// env builds the variable set an expression sees for one path. The
// journey and confidence variables come from the path's branch node,
// which sits right under the root; a root-only path exposes an empty
// journey and zero confidence.
func env(p domain.Path) map[string]any {
	labels := make([]string, len(p.Nodes))
	for i, n := range p.Nodes {
		labels[i] = n.Label
	}

	journeyID := ""
	confidence := 0.0
	if len(p.Nodes) > 1 && p.Nodes[1].Action != nil {
		journeyID = p.Nodes[1].Action.JourneyID
		if p.Nodes[1].Action.Confidence != nil {
			confidence = *p.Nodes[1].Action.Confidence
		}
	}

	return map[string]any{
		"description": p.Description,
		"length":      p.Length,
		"labels":      labels,
		"journey":     journeyID,
		"confidence":  confidence,
	}
}
