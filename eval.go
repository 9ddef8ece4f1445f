package arith

// Eval is a shortcut to parse and evaluate an expression.
func Eval(src string) (float64, error) {
	p, err := NewParser(src)
	if err != nil {
		return 0, err
	}
	return p.Parse()
}
