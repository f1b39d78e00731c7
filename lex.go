package evaluator

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	// rune is the column of the next rune to be read.
	rune int
	// prev is the last token scanned, used to decide whether a minus sign is
	// unary.
	prev Token
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
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

// unary reports whether a minus sign at the current position is unary, i.e.
// at the start of the input or following an open bracket or an operator.
func (l *lexer) unary() bool {
	switch l.prev.Kind {
	case tokenNone, TokenOpen, TokenOp:
		return true
	default:
		return false
	}
}

// next scans the next token from the input. At the end of the input, the
// result is an empty token with io.EOF.
func (l *lexer) next() (Token, error) {
	if l.eof {
		return Token{}, io.EOF
	}
	defer l.buf.Reset()
	for {
		tok := Token{Col: l.rune}
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.eof = true
			}
			return Token{}, err
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(&tok); err != nil {
				return Token{}, err
			}
		case r == '-' && l.unary():
			// Fold the sign into a literal that follows immediately. Anything
			// else makes this a negation of the next term.
			c, err := l.readRune()
			if err == nil {
				l.unreadRune()
			}
			if '0' <= c && c <= '9' || c == '.' {
				l.buf.WriteRune(r)
				if err := l.scanNum(&tok); err != nil {
					return Token{}, err
				}
				break
			}
			tok.Kind, tok.Op = TokenOp, OpNeg
		case strings.ContainsRune(Operators, r):
			tok.Kind, tok.Op = TokenOp, Op(r)
		case r == '(':
			tok.Kind = TokenOpen
		case r == ')':
			tok.Kind = TokenClose
		default:
			return Token{}, &CharError{Col: tok.Col, Char: r}
		}
		l.prev = tok
		return tok, nil
	}
}

// scanNum scans a run of digits and dots into tok. The buffer may already
// hold a sign.
func (l *lexer) scanNum(tok *Token) error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if !('0' <= r && r <= '9' || r == '.') {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	text := l.buf.String()
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// Out of range literals are infinite, which ParseFloat already gives.
		return &NumberError{Col: tok.Col, Text: text}
	}
	tok.Kind, tok.Num = TokenNum, v
	return nil
}

// Lex scans an entire expression into tokens.
func Lex(src io.RuneScanner) ([]Token, error) {
	scan := lex(src)
	var toks []Token
	for {
		tok, err := scan.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}

// Tokenize is a shortcut to scan a string expression into tokens.
func Tokenize(src string) ([]Token, error) {
	return Lex(strings.NewReader(src))
}
