// Package mathutil provides pure integer arithmetic helpers.
// Every function is a pure computation over its arguments with no
// shared state, so all of them are safe for concurrent use.
package mathutil

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a precondition on an argument is
// violated: a zero divisor, or a negative factorial input. Callers
// detect it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// Add returns the sum of two integers. Overflow wraps around.
func Add(a, b int32) int32 {
	return a + b
}

// Subtract returns the difference of two integers. Overflow wraps around.
func Subtract(a, b int32) int32 {
	return a - b
}

// Multiply returns the product of two integers. Overflow wraps around.
func Multiply(a, b int32) int32 {
	return a * b
}

// Divide returns the quotient of a and b, truncated toward zero.
// A zero divisor is reported as ErrInvalidArgument; no remainder is
// returned.
func Divide(a, b int32) (int32, error) {
	if b == 0 {
		return 0, fmt.Errorf("division by zero: %w", ErrInvalidArgument)
	}
	return a / b, nil
}

// IsPrime reports whether n is prime, by trial division over odd
// candidates up to the square root of n. Anything below 2 (including
// all negative numbers) is not prime.
func IsPrime(n int32) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	// The square is taken in 64 bits so the guard holds even for
	// candidates past 46340, where d*d no longer fits in an int32.
	for d := int64(3); d*d <= int64(n); d += 2 {
		if int64(n)%d == 0 {
			return false
		}
	}
	return true
}

// Factorial returns n! for non-negative n. A negative argument is
// reported as ErrInvalidArgument. The result is accumulated in 64 bits
// but is not checked for overflow; past 20! it silently wraps.
func Factorial(n int32) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("factorial of negative number %d: %w", n, ErrInvalidArgument)
	}
	if n == 0 || n == 1 {
		return 1, nil
	}
	result := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		result *= i
	}
	return result, nil
}
