package fuzzy

import (
	"fmt"
	"strconv"
	"strings"
)

// expression is a node of a parsed antecedent.
type expression interface {
	writeSource(b *strings.Builder)
	walk(fn func(p *proposition))
}

// proposition is a single "variable is [hedges] term" clause.
type proposition struct {
	Variable string
	Hedges   []Hedge
	Term     string
}

func (p *proposition) writeSource(b *strings.Builder) {
	words := make([]string, len(p.Hedges))
	for i, h := range p.Hedges {
		words[i] = h.String()
	}
	fmt.Fprintf(b, "Is(%s, %s, %s)", strconv.Quote(p.Variable), strconv.Quote(p.Term), strconv.Quote(strings.Join(words, " ")))
}

func (p *proposition) walk(fn func(p *proposition)) { fn(p) }

func (p *proposition) String() string {
	var b strings.Builder
	b.WriteString(p.Variable)
	b.WriteString(" is ")
	for _, h := range p.Hedges {
		b.WriteString(h.String())
		b.WriteByte(' ')
	}
	b.WriteString(p.Term)
	return b.String()
}

// connective joins two expressions with "and" or "or".
type connective struct {
	Or          bool
	Left, Right expression
}

func (c *connective) writeSource(b *strings.Builder) {
	if c.Or {
		b.WriteString("Disj(")
	} else {
		b.WriteString("Conj(")
	}
	c.Left.writeSource(b)
	b.WriteString(", ")
	c.Right.writeSource(b)
	b.WriteByte(')')
}

func (c *connective) walk(fn func(p *proposition)) {
	c.Left.walk(fn)
	c.Right.walk(fn)
}

// parseRule splits "if <antecedent> then <consequent> [and <consequent>...]".
// "and" binds tighter than "or"; parentheses group.
func parseRule(text string) (expression, []*proposition, error) {
	tokens := tokenize(text)
	if len(tokens) == 0 || tokens[0] != "if" {
		return nil, nil, fmt.Errorf("%w: expected 'if' at start of %q", ErrParse, text)
	}
	then := -1
	for i, t := range tokens {
		if t == "then" {
			then = i
			break
		}
	}
	if then < 0 {
		return nil, nil, fmt.Errorf("%w: missing 'then' in %q", ErrParse, text)
	}

	p := &parser{tokens: tokens[1:then]}
	ante, err := p.parseOr()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: antecedent of %q: %v", ErrParse, text, err)
	}
	if !p.done() {
		return nil, nil, fmt.Errorf("%w: unexpected %q in antecedent of %q", ErrParse, p.peek(), text)
	}

	cp := &parser{tokens: tokens[then+1:]}
	var cons []*proposition
	for {
		prop, err := cp.parseProposition()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: consequent of %q: %v", ErrParse, text, err)
		}
		cons = append(cons, prop)
		if cp.done() {
			break
		}
		if cp.next() != "and" {
			return nil, nil, fmt.Errorf("%w: consequents of %q must be joined by 'and'", ErrParse, text)
		}
	}
	return ante, cons, nil
}

func tokenize(text string) []string {
	var tokens []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range text {
		switch {
		case r == '(' || r == ')':
			flush()
			tokens = append(tokens, string(r))
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}

type parser struct {
	tokens []string
	pos    int
}

func (p *parser) done() bool { return p.pos >= len(p.tokens) }

func (p *parser) peek() string {
	if p.done() {
		return ""
	}
	return p.tokens[p.pos]
}

func (p *parser) next() string {
	t := p.peek()
	p.pos++
	return t
}

func (p *parser) parseOr() (expression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek() == "or" {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &connective{Or: true, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (expression, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.peek() == "and" {
		p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &connective{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseFactor() (expression, error) {
	if p.peek() == "(" {
		p.next()
		e, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.next() != ")" {
			return nil, fmt.Errorf("missing ')'")
		}
		return e, nil
	}
	return p.parseProposition()
}

func (p *parser) parseProposition() (*proposition, error) {
	variable := p.next()
	if !isIdentifier(variable) {
		return nil, fmt.Errorf("expected variable name, got %q", variable)
	}
	if kw := p.next(); kw != "is" {
		return nil, fmt.Errorf("expected 'is' after %q, got %q", variable, kw)
	}
	prop := &proposition{Variable: variable}
	for {
		word := p.next()
		if h, ok := ParseHedge(word); ok {
			prop.Hedges = append(prop.Hedges, h)
			continue
		}
		if !isIdentifier(word) {
			return nil, fmt.Errorf("expected term after %q, got %q", variable, word)
		}
		prop.Term = word
		return prop, nil
	}
}

func isIdentifier(s string) bool {
	switch s {
	case "", "if", "then", "and", "or", "is", "(", ")":
		return false
	}
	return true
}
