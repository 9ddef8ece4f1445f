package arith

import "strconv"

// CharError is an error indicating a character that does not begin any token.
// It implements InputError.
type CharError struct {
	// Col is the position of the character.
	Col int
	// Char is the character, or utf8.RuneError if the input is not valid
	// UTF-8 at Col.
	Char rune
}

func (err *CharError) Error() string {
	return errpos(err.Col, "unknown character "+strconv.QuoteRune(err.Char))
}

func (err *CharError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a numeric token that cannot be converted
// to a float64, e.g. a lone "." or a value out of range. It implements
// InputError.
type NumberError struct {
	// Col is the position of the start of the number.
	Col int
	// Text is the scanned text of the number.
	Text string
	// Err is the conversion error.
	Err error
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

func (err *NumberError) Pos() int {
	return err.Col
}

// ZeroDivisionError is an error indicating a division whose divisor evaluated
// to zero. It implements InputError.
type ZeroDivisionError struct {
	// Col is the position of the division operator.
	Col int
	// Dividend is the value that was to be divided.
	Dividend float64
}

func (err *ZeroDivisionError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *ZeroDivisionError) Pos() int {
	return err.Col
}

// BracketError is an error indicating an open parenthesis whose expression
// was followed by something other than a close parenthesis. It implements
// InputError.
type BracketError struct {
	// Col is the position of the token found instead of the close parenthesis.
	Col int
	// Open is the position of the open parenthesis.
	Open int
	// Found is the token found instead of the close parenthesis.
	Found Token
}

func (err *BracketError) Error() string {
	if err.Found.Kind == TokenEnd {
		return errpos(err.Col, "expected ')' to match '(' at column "+strconv.Itoa(err.Open))
	}
	return errpos(err.Col, "expected ')' to match '(' at column "+strconv.Itoa(err.Open)+", found "+quotetok(err.Found))
}

func (err *BracketError) Pos() int {
	return err.Col
}

// TokenError is an error indicating a token that cannot begin a factor, i.e. a
// missing operand. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the unexpected token.
	Token Token
}

func (err *TokenError) Error() string {
	if err.Token.Kind == TokenEnd {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "unexpected end of input")
	}
	return errpos(err.Col, "unexpected "+quotetok(err.Token))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// TrailingError is an error indicating input remaining after a complete
// expression. It implements InputError.
type TrailingError struct {
	// Col is the position of the first unconsumed token.
	Col int
	// Token is the first unconsumed token.
	Token Token
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "unexpected "+quotetok(err.Token)+" after expression")
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// quotetok formats a token for an error message.
func quotetok(tok Token) string {
	switch tok.Kind {
	case TokenEnd:
		return tok.Kind.String()
	case TokenNum:
		return "number " + tok.String()
	default:
		return strconv.Quote(tok.Kind.String())
	}
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based byte column of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*CharError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*ZeroDivisionError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*TrailingError)(nil)
)
