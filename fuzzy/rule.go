package fuzzy

import "github.com/expr-lang/expr/vm"

// Rule is one compiled "if ... then ..." statement. The antecedent is
// compiled to expr bytecode that evaluates to the rule's activation degree.
type Rule struct {
	Text   string // rule as written
	Source string // generated expr source, kept for diagnostics

	consequents []consequent
	program     *vm.Program
}

type consequent struct {
	output *Variable
	term   Term
	hedges []Hedge
}
