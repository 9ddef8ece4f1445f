package arith_test

import (
	"errors"
	"fmt"

	"github.com/zephyrtronium/arith"
)

func ExampleEval() {
	r, err := arith.Eval("-(1 + 2) * 3 / .5")
	fmt.Println(r, err)

	_, err = arith.Eval("4 / (2 - 2)")
	var zero *arith.ZeroDivisionError
	fmt.Println(errors.As(err, &zero), err)

	// Output:
	// -18 <nil>
	// true 3: division by zero
}

func ExampleTokenizer() {
	scan := arith.NewTokenizer("(1.5+2)")
	for {
		tok, err := scan.Next()
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%d %v\n", scan.Offset(), tok)
		if tok.Kind == arith.TokenEnd {
			return
		}
	}

	// Output:
	// 0 (
	// 1 1.5
	// 4 +
	// 5 2
	// 6 )
	// 7 end of input
}
