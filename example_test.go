package flt_test

import (
	"errors"
	"fmt"

	"github.com/zephyrtronium/flt"
)

func ExampleParse() {
	e, rest, err := flt.Parse("(1 + 2) * -3 and more")
	if err != nil {
		panic(err)
	}
	fmt.Println(e)
	fmt.Printf("%q\n", rest)

	_, _, err = flt.Parse("(1 + 2")
	fmt.Println(err, errors.Is(err, flt.UnclosedGroup))

	// Output:
	// (1 + 2) * -3
	// "and more"
	// 6: open bracket with no close bracket at 0 true
}
