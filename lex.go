package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

// eof returns whether the token marks the end of the input.
func (t lexToken) eof() bool {
	return t.kind == tokenNone && t.text == ""
}

type tokenKind int

const (
	// tokenNone is the end of input if its text is empty, otherwise a rune
	// that the lexer does not recognize.
	tokenNone tokenKind = iota
	// tokenDelim is an operator or a parenthesis.
	tokenDelim
	// tokenVar is a single-letter variable name, always uppercase.
	tokenVar
	// tokenNum is a run of digits and decimal points.
	tokenNum
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenDelim:
		return "Delim"
	case tokenVar:
		return "Var"
	case tokenNum:
		return "Num"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Delimiters contains the runes which are scanned as single-character
// operator and grouping tokens.
const Delimiters = "+-*/%^=()"

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	p    lexToken
	// pushed is separate from p because the EOF token is the zero kind.
	pushed bool
	// vars is whether letters scan as variables.
	vars bool
}

func lex(src io.RuneScanner, vars bool) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
		vars: vars,
	}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.pushed {
		panic("calc: double push")
	}
	l.p = tok
	l.pushed = true
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. At the end of the input, the
// result is an EOF token with a nil error, however many times next is called.
func (l *lexer) next() (lexToken, error) {
	if l.pushed {
		tok := l.p
		l.p = lexToken{}
		l.pushed = false
		return tok, nil
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			tok.pos++
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			return tok, nil
		case l.vars && isLetter(r):
			if err := l.scanVar(r, tok.pos); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenVar
			return tok, nil
		case strings.ContainsRune(Delimiters, r):
			tok.text = string(r)
			tok.kind = tokenDelim
			return tok, nil
		default:
			// Leave the rune for the parser to reject so that the error
			// happens in order with everything else it evaluates.
			tok.text = string(r)
			return tok, nil
		}
	}
}

func (l *lexer) scanNum() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if r != '.' && (r < '0' || r > '9') {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// scanVar scans a variable name that starts with r at column pos. Names are
// exactly one letter long.
func (l *lexer) scanVar(r rune, pos int) error {
	l.buf.WriteRune(unicode.ToUpper(r))
	s, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if !isLetter(s) {
		l.unreadRune()
		return nil
	}
	l.buf.Reset()
	l.buf.WriteRune(r)
	l.buf.WriteRune(s)
	// Collect the rest of the word so the error shows the whole name.
	if err := l.scanWord(); err != nil {
		return err
	}
	return &NameError{Col: pos, Name: l.buf.String()}
}

func (l *lexer) scanWord() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !isLetter(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// isLetter reports whether r can begin a variable name. Only ASCII letters
// name variables.
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}
