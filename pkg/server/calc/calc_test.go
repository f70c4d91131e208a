package calc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	calcv1 "github.com/calclab/intcalc/proto/calc/v1"
)

func TestBinaryOps(t *testing.T) {
	srv := NewServer()
	ctx := context.Background()

	tests := []struct {
		name string
		call func(context.Context, *calcv1.BinaryOpRequest) (*calcv1.BinaryOpResponse, error)
		a, b int32
		want int32
	}{
		{"add", srv.Add, 2, 3, 5},
		{"subtract", srv.Subtract, 10, 4, 6},
		{"multiply", srv.Multiply, -3, 6, -18},
		{"divide truncates", srv.Divide, 7, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := tt.call(ctx, &calcv1.BinaryOpRequest{A: tt.a, B: tt.b})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.GetResult())
		})
	}
}

func TestDivideByZero(t *testing.T) {
	srv := NewServer()

	resp, err := srv.Divide(context.Background(), &calcv1.BinaryOpRequest{A: 5, B: 0})
	require.Error(t, err)
	assert.Nil(t, resp)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestIsPrime(t *testing.T) {
	srv := NewServer()
	ctx := context.Background()

	tests := []struct {
		n    int32
		want bool
	}{
		{13, true},
		{9, false},
		{2, true},
		{1, false},
		{-7, false},
	}

	for _, tt := range tests {
		resp, err := srv.IsPrime(ctx, &calcv1.IsPrimeRequest{N: tt.n})
		require.NoError(t, err)
		assert.Equal(t, tt.want, resp.GetPrime(), "IsPrime(%d)", tt.n)
	}
}

func TestFactorial(t *testing.T) {
	srv := NewServer()
	ctx := context.Background()

	tests := []struct {
		n    int32
		want int64
	}{
		{0, 1},
		{1, 1},
		{4, 24},
		{5, 120},
	}

	for _, tt := range tests {
		resp, err := srv.Factorial(ctx, &calcv1.FactorialRequest{N: tt.n})
		require.NoError(t, err)
		assert.Equal(t, tt.want, resp.GetResult(), "Factorial(%d)", tt.n)
	}
}

func TestFactorialNegative(t *testing.T) {
	srv := NewServer()

	resp, err := srv.Factorial(context.Background(), &calcv1.FactorialRequest{N: -1})
	require.Error(t, err)
	assert.Nil(t, resp)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}
