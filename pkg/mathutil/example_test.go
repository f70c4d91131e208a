package mathutil_test

import (
	"fmt"

	"github.com/calclab/intcalc/pkg/mathutil"
)

func ExampleDivide() {
	q, err := mathutil.Divide(7, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(q)
	// Output: 2
}

func ExampleDivide_byZero() {
	_, err := mathutil.Divide(5, 0)
	fmt.Println(err)
	// Output: division by zero: invalid argument
}

func ExampleIsPrime() {
	fmt.Println(mathutil.IsPrime(13))
	fmt.Println(mathutil.IsPrime(9))
	// Output:
	// true
	// false
}

func ExampleFactorial() {
	f, _ := mathutil.Factorial(5)
	fmt.Println(f)
	// Output: 120
}
