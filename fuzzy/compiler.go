package fuzzy

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
)

// compileRule parses text, resolves every name against the engine's
// variables and compiles the antecedent into expr bytecode.
func (e *Engine) compileRule(text string) (*Rule, error) {
	ante, props, err := parseRule(text)
	if err != nil {
		return nil, err
	}

	var resolveErr error
	ante.walk(func(p *proposition) {
		if resolveErr != nil {
			return
		}
		v := e.input(p.Variable)
		if v == nil {
			resolveErr = fmt.Errorf("%w: input %q", ErrUnknownVariable, p.Variable)
			return
		}
		if _, ok := v.Term(p.Term); !ok {
			resolveErr = fmt.Errorf("%w: %q has no term %q", ErrUnknownTerm, p.Variable, p.Term)
		}
	})
	if resolveErr != nil {
		return nil, resolveErr
	}

	cons := make([]consequent, 0, len(props))
	for _, p := range props {
		out := e.output(p.Variable)
		if out == nil {
			return nil, fmt.Errorf("%w: output %q", ErrUnknownVariable, p.Variable)
		}
		t, ok := out.Term(p.Term)
		if !ok {
			return nil, fmt.Errorf("%w: %q has no term %q", ErrUnknownTerm, p.Variable, p.Term)
		}
		cons = append(cons, consequent{output: out, term: t, hedges: p.Hedges})
	}

	var src strings.Builder
	ante.writeSource(&src)
	prog, err := expr.Compile(src.String(), expr.Env(ruleEnv{}), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("compile rule %q: %w", text, err)
	}

	return &Rule{
		Text:        text,
		Source:      src.String(),
		consequents: cons,
		program:     prog,
	}, nil
}
