package arith

// Expr   = Term { ('+' | '-') Term }
// Term   = Factor { ('*' | '/') Factor }
// Factor = num | '(' Expr ')' | '+' Factor | '-' Factor

// Parser evaluates an expression as it parses it. A Parser is single-use; it
// is not safe to call Parse more than once.
type Parser struct {
	scan *Tokenizer
	// cur is the next unconsumed token and col is its 1-based column.
	cur Token
	col int
}

// NewParser creates a parser over src and scans its first token.
func NewParser(src string) (*Parser, error) {
	p := Parser{scan: NewTokenizer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Parse evaluates the entire input. Any tokens remaining after a complete
// expression produce a TrailingError.
func (p *Parser) Parse() (float64, error) {
	r, err := p.expr()
	if err != nil {
		return 0, err
	}
	if p.cur.Kind != TokenEnd {
		return 0, &TrailingError{Col: p.col, Token: p.cur}
	}
	return r, nil
}

// advance discards the current token and scans the next one.
func (p *Parser) advance() error {
	tok, err := p.scan.Next()
	if err != nil {
		return err
	}
	p.cur = tok
	p.col = p.scan.Offset() + 1
	return nil
}

func (p *Parser) expr() (float64, error) {
	r, err := p.term()
	if err != nil {
		return 0, err
	}
	for p.cur.Kind == TokenPlus || p.cur.Kind == TokenMinus {
		op := p.cur.Kind
		if err := p.advance(); err != nil {
			return 0, err
		}
		rhs, err := p.term()
		if err != nil {
			return 0, err
		}
		if op == TokenPlus {
			r += rhs
		} else {
			r -= rhs
		}
	}
	return r, nil
}

func (p *Parser) term() (float64, error) {
	r, err := p.factor()
	if err != nil {
		return 0, err
	}
	for p.cur.Kind == TokenStar || p.cur.Kind == TokenSlash {
		op, col := p.cur.Kind, p.col
		if err := p.advance(); err != nil {
			return 0, err
		}
		rhs, err := p.factor()
		if err != nil {
			return 0, err
		}
		if op == TokenStar {
			r *= rhs
			continue
		}
		// Both +0 and -0 compare equal to 0.
		if rhs == 0 {
			return 0, &ZeroDivisionError{Col: col, Dividend: r}
		}
		r /= rhs
	}
	return r, nil
}

func (p *Parser) factor() (float64, error) {
	switch p.cur.Kind {
	case TokenNum:
		v := p.cur.Value
		if err := p.advance(); err != nil {
			return 0, err
		}
		return v, nil
	case TokenOpen:
		open := p.col
		if err := p.advance(); err != nil {
			return 0, err
		}
		r, err := p.expr()
		if err != nil {
			return 0, err
		}
		if p.cur.Kind != TokenClose {
			return 0, &BracketError{Col: p.col, Open: open, Found: p.cur}
		}
		if err := p.advance(); err != nil {
			return 0, err
		}
		return r, nil
	case TokenPlus:
		if err := p.advance(); err != nil {
			return 0, err
		}
		return p.factor()
	case TokenMinus:
		if err := p.advance(); err != nil {
			return 0, err
		}
		r, err := p.factor()
		if err != nil {
			return 0, err
		}
		return -r, nil
	default:
		return 0, &TokenError{Col: p.col, Token: p.cur}
	}
}
