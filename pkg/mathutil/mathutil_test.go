package mathutil

import (
	"errors"
	"testing"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b int32
		want int32
	}{
		{"simple", 2, 3, 5},
		{"negative operand", 7, -10, -3},
		{"both negative", -4, -6, -10},
		{"zero identity", 42, 0, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Add(tt.a, tt.b); got != tt.want {
				t.Errorf("Add(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			// Addition must be commutative.
			if got := Add(tt.b, tt.a); got != tt.want {
				t.Errorf("Add(%d, %d) = %d, want %d", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestAddSubtractRoundTrip(t *testing.T) {
	pairs := [][2]int32{{0, 0}, {1, -1}, {100, 37}, {-250, 999}}
	for _, p := range pairs {
		if got := Subtract(Add(p[0], p[1]), p[1]); got != p[0] {
			t.Errorf("Add then Subtract of (%d, %d) = %d, want %d", p[0], p[1], got, p[0])
		}
	}
}

func TestSubtract(t *testing.T) {
	if got := Subtract(10, 4); got != 6 {
		t.Errorf("Subtract(10, 4) = %d, want 6", got)
	}
	// Subtract(a, b) == -Subtract(b, a)
	if got, mirror := Subtract(3, 8), Subtract(8, 3); got != -mirror {
		t.Errorf("Subtract(3, 8) = %d, want %d", got, -mirror)
	}
}

func TestMultiply(t *testing.T) {
	tests := []struct {
		a, b int32
		want int32
	}{
		{4, 5, 20},
		{-3, 6, -18},
		{-7, -8, 56},
		{12345, 0, 0},
	}

	for _, tt := range tests {
		if got := Multiply(tt.a, tt.b); got != tt.want {
			t.Errorf("Multiply(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDivide(t *testing.T) {
	tests := []struct {
		name string
		a, b int32
		want int32
	}{
		{"exact", 8, 2, 4},
		{"truncates", 7, 3, 2},
		{"negative dividend truncates toward zero", -7, 3, -2},
		{"negative divisor", 7, -3, -2},
		{"zero dividend", 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Divide(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Divide(%d, %d) returned error: %v", tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("Divide(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			// Quotient plus remainder reconstructs the dividend.
			if rem := tt.a - got*tt.b; got*tt.b+rem != tt.a {
				t.Errorf("Divide(%d, %d): quotient %d does not reconstruct dividend", tt.a, tt.b, got)
			}
		})
	}
}

func TestDivideByZero(t *testing.T) {
	for _, a := range []int32{5, 0, -17} {
		_, err := Divide(a, 0)
		if err == nil {
			t.Fatalf("Divide(%d, 0) returned nil error", a)
		}
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Divide(%d, 0) error = %v, want ErrInvalidArgument", a, err)
		}
	}
}

func TestIsPrime(t *testing.T) {
	tests := []struct {
		n    int32
		want bool
	}{
		{-13, false},
		{-1, false},
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{9, false},
		{13, true},
		{25, false},
		{97, true},
		{100, false},
		{7919, true}, // 1000th prime
		{7917, false},
	}

	for _, tt := range tests {
		if got := IsPrime(tt.n); got != tt.want {
			t.Errorf("IsPrime(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int32
		want int64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{4, 24},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000}, // largest n! that fits in int64
	}

	for _, tt := range tests {
		got, err := Factorial(tt.n)
		if err != nil {
			t.Fatalf("Factorial(%d) returned error: %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("Factorial(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestFactorialNegative(t *testing.T) {
	for _, n := range []int32{-1, -5, -100} {
		_, err := Factorial(n)
		if err == nil {
			t.Fatalf("Factorial(%d) returned nil error", n)
		}
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Factorial(%d) error = %v, want ErrInvalidArgument", n, err)
		}
	}
}

func BenchmarkIsPrime(b *testing.B) {
	for i := 0; i < b.N; i++ {
		IsPrime(2147483629) // large prime near the int32 ceiling
	}
}

func BenchmarkFactorial(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Factorial(20)
	}
}
