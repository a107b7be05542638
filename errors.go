package calc

import "strconv"

// EmptyExpressionError is an error indicating that there was no expression to
// evaluate.
type EmptyExpressionError struct {
	// Col is the position of the end of the input.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	if err.Col <= 1 {
		return errpos(err.Col, "no expression to evaluate")
	}
	return errpos(err.Col, "empty expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// NameError is an error indicating a variable name longer than one letter.
type NameError struct {
	// Col is the position of the first letter of the name.
	Col int
	// Name is the name as written.
	Name string
}

func (err *NameError) Error() string {
	return errpos(err.Col, "bad variable name "+strconv.Quote(err.Name)+" (only A-Z allowed)")
}

func (err *NameError) Pos() int {
	return err.Col
}

// DivisionError is an error indicating division or modulo by zero.
type DivisionError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator, either / or %.
	Op string
}

func (err *DivisionError) Error() string {
	if err.Op == "%" {
		return errpos(err.Col, "modulo by zero")
	}
	return errpos(err.Col, "division by zero")
}

func (err *DivisionError) Pos() int {
	return err.Col
}

// BracketError is an error indicating an open parenthesis with no matching
// close parenthesis.
type BracketError struct {
	// Col is the position of the token found instead of the close
	// parenthesis.
	Col int
	// Open is the position of the unmatched open parenthesis.
	Open int
}

func (err *BracketError) Error() string {
	return errpos(err.Col, "expected closing parenthesis ')' for '(' at column "+strconv.Itoa(err.Open))
}

func (err *BracketError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a numeric literal that does not convert
// to a number, e.g. one with several decimal points.
type NumberError struct {
	// Col is the position of the literal.
	Col int
	// Text is the literal.
	Text string
	// Err is the conversion error.
	Err error
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid numeric format "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

// TokenError is an error indicating a token that cannot appear where it
// does.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Text is the token. It is empty if the input ended unexpectedly.
	Text string
}

func (err *TokenError) Error() string {
	if err.Text == "" {
		return errpos(err.Col, "unexpected end of expression")
	}
	return errpos(err.Col, "unexpected token "+strconv.Quote(err.Text))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*DivisionError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*TokenError)(nil)
)
