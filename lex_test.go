package arith

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	num := func(v float64) Token { return Token{Kind: TokenNum, Value: v} }
	kind := func(k TokenKind) Token { return Token{Kind: k} }
	cases := []struct {
		src    string
		tokens []Token
		// offs are the offsets of each token. The End token is checked too.
		offs []int
	}{
		// spaces
		{"", nil, []int{0}},
		{" \t \r\n\v\f ", nil, []int{8}},
		// numbers
		{"0", []Token{num(0)}, []int{0, 1}},
		{"9876543210", []Token{num(9876543210)}, []int{0, 10}},
		{"1 0", []Token{num(1), num(0)}, []int{0, 2, 3}},
		{"1.0", []Token{num(1)}, []int{0, 3}},
		{"1.25", []Token{num(1.25)}, []int{0, 4}},
		{".5", []Token{num(0.5)}, []int{0, 2}},
		{"5.", []Token{num(5)}, []int{0, 2}},
		{"1.2.3", []Token{num(1.2), num(0.3)}, []int{0, 3, 5}},
		{"007", []Token{num(7)}, []int{0, 3}},
		// operators
		{"+", []Token{kind(TokenPlus)}, []int{0, 1}},
		{"-1", []Token{kind(TokenMinus), num(1)}, []int{0, 1, 2}},
		{"1+0", []Token{num(1), kind(TokenPlus), num(0)}, []int{0, 1, 2, 3}},
		{"1*0", []Token{num(1), kind(TokenStar), num(0)}, []int{0, 1, 2, 3}},
		{"1/0", []Token{num(1), kind(TokenSlash), num(0)}, []int{0, 1, 2, 3}},
		{"--", []Token{kind(TokenMinus), kind(TokenMinus)}, []int{0, 1, 2}},
		// brackets
		{"()", []Token{kind(TokenOpen), kind(TokenClose)}, []int{0, 1, 2}},
		{" ( 1 ) ", []Token{kind(TokenOpen), num(1), kind(TokenClose)}, []int{1, 3, 5, 7}},
	}
	for _, c := range cases {
		t.Run(strconv.Quote(c.src), func(t *testing.T) {
			scan := NewTokenizer(c.src)
			want := append(c.tokens, Token{Kind: TokenEnd})
			for i, w := range want {
				got, err := scan.Next()
				if err != nil {
					t.Fatalf("token %d: unexpected error %v", i, err)
				}
				if got != w {
					t.Errorf("token %d: want %v, got %v", i, w, got)
				}
				if off := scan.Offset(); off != c.offs[i] {
					t.Errorf("token %d: want offset %d, got %d", i, c.offs[i], off)
				}
			}
		})
	}
}

func TestLexEndRepeats(t *testing.T) {
	for _, src := range []string{"", "   ", "1+2"} {
		scan := NewTokenizer(src)
		for {
			tok, err := scan.Next()
			if err != nil {
				t.Fatalf("scanning %q: unexpected error %v", src, err)
			}
			if tok.Kind == TokenEnd {
				break
			}
		}
		off := scan.Offset()
		for i := 0; i < 5; i++ {
			tok, err := scan.Next()
			if err != nil {
				t.Errorf("scanning %q: error after end: %v", src, err)
			}
			if tok.Kind != TokenEnd {
				t.Errorf("scanning %q: got %v after end", src, tok)
			}
			if scan.Offset() != off {
				t.Errorf("scanning %q: offset moved from %d to %d after end", src, off, scan.Offset())
			}
		}
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		src string
		// ok is the number of tokens scanned before the error.
		ok  int
		col int
		num bool
	}{
		{"$", 0, 1, false},
		{"a", 0, 1, false},
		{"2#3", 1, 2, false},
		{"1 @", 1, 3, false},
		{"π", 0, 1, false},
		{"1e5", 1, 2, false},
		{".", 0, 1, true},
		{"1+.", 2, 3, true},
		{"..", 0, 1, true},
		// Too large for float64.
		{"1" + strings.Repeat("9", 400), 0, 1, true},
	}
	for _, c := range cases {
		t.Run(strconv.Quote(c.src), func(t *testing.T) {
			scan := NewTokenizer(c.src)
			for i := 0; i < c.ok; i++ {
				if _, err := scan.Next(); err != nil {
					t.Fatalf("token %d: unexpected error %v", i, err)
				}
			}
			_, err := scan.Next()
			if err == nil {
				t.Fatal("no error")
			}
			var ierr InputError
			if !errors.As(err, &ierr) {
				t.Fatalf("error %v is not an InputError", err)
			}
			if ierr.Pos() != c.col {
				t.Errorf("wrong position: want %d, got %d", c.col, ierr.Pos())
			}
			var nerr *NumberError
			var cerr *CharError
			switch {
			case c.num && !errors.As(err, &nerr):
				t.Errorf("want NumberError, got %#v", err)
			case !c.num && !errors.As(err, &cerr):
				t.Errorf("want CharError, got %#v", err)
			}
			// The tokenizer must not move past the error.
			_, again := scan.Next()
			if again == nil || again.Error() != err.Error() {
				t.Errorf("second scan: want %v, got %v", err, again)
			}
		})
	}
}

func TestNumberErrorUnwraps(t *testing.T) {
	_, err := NewTokenizer(".").Next()
	var nerr *strconv.NumError
	if !errors.As(err, &nerr) {
		t.Fatalf("%v does not wrap a *strconv.NumError", err)
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("%v is not strconv.ErrSyntax", err)
	}
}

func TestTokenKindString(t *testing.T) {
	cases := []struct {
		k    TokenKind
		want string
	}{
		{TokenEnd, "end of input"},
		{TokenNum, "number"},
		{TokenPlus, "+"},
		{TokenClose, ")"},
		{TokenKind(100), "TokenKind(100)"},
		{TokenKind(-1), "TokenKind(-1)"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Errorf("%d: want %q, got %q", c.k, c.want, got)
		}
	}
}
