package calc

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// Evaluator evaluates expressions. It holds the variables A through Z, which
// keep their values from one evaluation to the next. It is not safe to use an
// Evaluator concurrently.
type Evaluator struct {
	vars    Vars
	minimal bool
}

// Option is an option used when creating an evaluator.
type Option interface {
	option()
}

type (
	varopt struct {
		name byte
		val  float64
	}
	varsopt    map[byte]float64
	minimalopt struct{}
)

func (varopt) option()     {}
func (varsopt) option()    {}
func (minimalopt) option() {}

// SetVar sets the value of a variable in the evaluator.
func SetVar(name byte, val float64) Option {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the evaluator.
func SetVars(vars map[byte]float64) Option {
	return varsopt(vars)
}

// Minimal disables variables. Letters in expressions are then unexpected
// tokens, and = is never an assignment.
func Minimal() Option {
	return minimalopt{}
}

// NewEvaluator creates a new evaluator with every variable set to 0, then
// applies options in order.
func NewEvaluator(opts ...Option) *Evaluator {
	var e Evaluator
	return e.Clone(opts...)
}

// Clone creates a copy of an evaluator and applies options to it. The copy
// does not share variables with the original.
func (e *Evaluator) Clone(opts ...Option) *Evaluator {
	n := *e
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.vars.Set(opt.name, opt.val)
		case varsopt:
			for k, v := range opt {
				n.vars.Set(k, v)
			}
		case minimalopt:
			n.minimal = true
		default:
			panic("calc: unknown option type")
		}
	}
	return &n
}

// Set sets the value of a variable. Returns e for chaining.
func (e *Evaluator) Set(name byte, val float64) *Evaluator {
	e.vars.Set(name, val)
	return e
}

// Lookup returns the value of a variable. Variables that have never been
// assigned are 0.
func (e *Evaluator) Lookup(name byte) float64 {
	return e.vars.Get(name)
}

// Vars returns a copy of all variables.
func (e *Evaluator) Vars() Vars {
	return e.vars
}

// Eval evaluates an expression read to the end of src. If it fails, the result
// is 0 and the error is an InputError, unless reading src failed. Assignments
// made before a failure remain in effect.
func (e *Evaluator) Eval(src io.RuneScanner) (float64, error) {
	s := session{scan: lex(src, !e.minimal)}
	if !e.minimal {
		s.vars = &e.vars
	}
	if err := s.advance(); err != nil {
		return 0, err
	}
	if s.tok.eof() {
		return 0, &EmptyExpressionError{Col: s.tok.pos}
	}
	r, err := s.assignment()
	if err != nil {
		return 0, err
	}
	if !s.tok.eof() {
		return 0, unexpected(s.tok)
	}
	return r, nil
}

// EvalString is a shortcut to evaluate a string expression.
func (e *Evaluator) EvalString(src string) (float64, error) {
	return e.Eval(strings.NewReader(src))
}

// EvalString evaluates a string expression with a new evaluator.
func EvalString(src string, opts ...Option) (float64, error) {
	return NewEvaluator(opts...).EvalString(src)
}

// session is the state of a single evaluation. Each level of the grammar
// begins with tok holding its first token and returns with tok holding the
// first token it did not consume.
type session struct {
	scan *lexer
	tok  lexToken
	// vars is nil when variables are disabled.
	vars *Vars
}

func (s *session) advance() error {
	tok, err := s.scan.next()
	if err != nil {
		return err
	}
	s.tok = tok
	return nil
}

// delim returns whether the current token is the delimiter d.
func (s *session) delim(d string) bool {
	return s.tok.kind == tokenDelim && s.tok.text == d
}

// assignment parses Var '=' assignment | sum.
func (s *session) assignment() (float64, error) {
	if s.vars == nil || s.tok.kind != tokenVar {
		return s.sum()
	}
	name := s.tok
	if err := s.advance(); err != nil {
		return 0, err
	}
	if !s.delim("=") {
		// Not an assignment. Back up so the variable is the current token.
		s.scan.push(s.tok)
		s.tok = name
		return s.sum()
	}
	if err := s.advance(); err != nil {
		return 0, err
	}
	r, err := s.assignment()
	if err != nil {
		return 0, err
	}
	s.vars.Set(name.text[0], r)
	return r, nil
}

// sum parses product { ('+' | '-') product }.
func (s *session) sum() (float64, error) {
	return s.leftassoc(precSum, s.product)
}

// product parses power { ('*' | '/' | '%') power }.
func (s *session) product() (float64, error) {
	return s.leftassoc(precProduct, s.power)
}

// leftassoc parses a chain of left-associative binary operators at one
// precedence level.
func (s *session) leftassoc(prec int8, operand func() (float64, error)) (float64, error) {
	r, err := operand()
	if err != nil {
		return 0, err
	}
	for s.tok.kind == tokenDelim && binop(s.tok.text) == prec {
		op := s.tok
		if err := s.advance(); err != nil {
			return 0, err
		}
		rhs, err := operand()
		if err != nil {
			return 0, err
		}
		r, err = apply(op, r, rhs)
		if err != nil {
			return 0, err
		}
	}
	return r, nil
}

// power parses unary [ '^' power ].
func (s *session) power() (float64, error) {
	r, err := s.unary()
	if err != nil {
		return 0, err
	}
	if !s.delim("^") {
		return r, nil
	}
	op := s.tok
	if err := s.advance(); err != nil {
		return 0, err
	}
	x, err := s.power()
	if err != nil {
		return 0, err
	}
	return apply(op, r, x)
}

// unary parses [ '+' | '-' ] group.
func (s *session) unary() (float64, error) {
	neg := false
	if s.delim("+") || s.delim("-") {
		neg = s.tok.text == "-"
		if err := s.advance(); err != nil {
			return 0, err
		}
	}
	r, err := s.group()
	if err != nil {
		return 0, err
	}
	if neg {
		r = -r
	}
	return r, nil
}

// group parses '(' assignment ')' | atom.
func (s *session) group() (float64, error) {
	if !s.delim("(") {
		return s.atom()
	}
	open := s.tok
	if err := s.advance(); err != nil {
		return 0, err
	}
	r, err := s.assignment()
	if err != nil {
		return 0, err
	}
	if !s.delim(")") {
		return 0, &BracketError{Col: s.tok.pos, Open: open.pos}
	}
	if err := s.advance(); err != nil {
		return 0, err
	}
	return r, nil
}

// atom parses num | Var.
func (s *session) atom() (float64, error) {
	var r float64
	switch s.tok.kind {
	case tokenNum:
		var err error
		r, err = strconv.ParseFloat(s.tok.text, 64)
		// Out of range literals are infinite.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, &NumberError{Col: s.tok.pos, Text: s.tok.text, Err: err}
		}
	case tokenVar:
		r = s.vars.Get(s.tok.text[0])
	default:
		return 0, unexpected(s.tok)
	}
	if err := s.advance(); err != nil {
		return 0, err
	}
	return r, nil
}

// unexpected creates an error for a token that does not fit the grammar.
func unexpected(tok lexToken) error {
	return &TokenError{Col: tok.pos, Text: tok.text}
}

const (
	precNone int8 = iota
	precSum
	precProduct
	precPow
)

// binop gets the precedence of a binary operator. If there is no such binary
// operator, then the result is precNone.
func binop(text string) int8 {
	switch text {
	case "+", "-":
		return precSum
	case "*", "/", "%":
		return precProduct
	case "^":
		return precPow
	default:
		return precNone
	}
}

// apply computes the binary operation op.
func apply(op lexToken, l, r float64) (float64, error) {
	switch op.text {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/", "%":
		if r == 0 {
			return 0, &DivisionError{Col: op.pos, Op: op.text}
		}
		if op.text == "%" {
			return math.Mod(l, r), nil
		}
		return l / r, nil
	case "^":
		return math.Pow(l, r), nil
	default:
		panic("calc: invalid binary operator " + op.String())
	}
}
