package arith

import (
	"strconv"
	"unicode/utf8"
)

// Token is a lexical token. Value is only meaningful when Kind is TokenNum.
type Token struct {
	Kind  TokenKind
	Value float64
}

func (t Token) String() string {
	if t.Kind == TokenNum {
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	}
	return t.Kind.String()
}

// TokenKind is the type of a Token.
type TokenKind int8

const (
	// TokenEnd indicates the end of the input.
	TokenEnd TokenKind = iota
	// TokenNum is a decimal number.
	TokenNum
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
)

var kindstrs = [...]string{
	TokenEnd:   "end of input",
	TokenNum:   "number",
	TokenPlus:  "+",
	TokenMinus: "-",
	TokenStar:  "*",
	TokenSlash: "/",
	TokenOpen:  "(",
	TokenClose: ")",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(kindstrs) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindstrs[k]
}

// Tokenizer scans tokens from a single line of input. The zero value is a
// Tokenizer over empty input.
type Tokenizer struct {
	src string
	pos int
	// start is the offset of the most recently scanned token.
	start int
}

// NewTokenizer creates a tokenizer over src.
func NewTokenizer(src string) *Tokenizer {
	return &Tokenizer{src: src}
}

// Offset returns the byte offset in the input at which the most recently
// scanned token, or the most recent error, begins.
func (t *Tokenizer) Offset() int {
	return t.start
}

// Next scans the next token. Once the input is exhausted, every call returns
// an End token with a nil error. If Next returns an error, the tokenizer does
// not advance past the invalid input, so calling Next again returns the same
// error.
func (t *Tokenizer) Next() (Token, error) {
	for t.pos < len(t.src) && isblank(t.src[t.pos]) {
		t.pos++
	}
	t.start = t.pos
	if t.pos >= len(t.src) {
		return Token{Kind: TokenEnd}, nil
	}
	c := t.src[t.pos]
	var k TokenKind
	switch c {
	case '+':
		k = TokenPlus
	case '-':
		k = TokenMinus
	case '*':
		k = TokenStar
	case '/':
		k = TokenSlash
	case '(':
		k = TokenOpen
	case ')':
		k = TokenClose
	default:
		if isdigit(c) || c == '.' {
			return t.scanNum()
		}
		r, _ := utf8.DecodeRuneInString(t.src[t.pos:])
		return Token{}, &CharError{Col: t.pos + 1, Char: r}
	}
	t.pos++
	return Token{Kind: k}, nil
}

// scanNum scans digits with at most one decimal point. A second point ends the
// number and is left to begin the next token.
func (t *Tokenizer) scanNum() (Token, error) {
	end := t.pos
	dot := false
	for ; end < len(t.src); end++ {
		c := t.src[end]
		if c == '.' {
			if dot {
				break
			}
			dot = true
			continue
		}
		if !isdigit(c) {
			break
		}
	}
	text := t.src[t.pos:end]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, &NumberError{Col: t.pos + 1, Text: text, Err: err}
	}
	t.pos = end
	return Token{Kind: TokenNum, Value: v}, nil
}

func isdigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isblank reports whether c is an ASCII whitespace character.
func isblank(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
