// Package calc implements the Calc gRPC service on top of the pure
// math helpers in pkg/mathutil. The service holds no state; every RPC
// is a single pass-through computation.
package calc

import (
	"context"
	"errors"

	log "github.com/golang/glog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/calclab/intcalc/pkg/mathutil"
	calcv1 "github.com/calclab/intcalc/proto/calc/v1"
)

// Server implements calcv1.CalcServer.
type Server struct {
	calcv1.UnimplementedCalcServer
}

// NewServer returns a Calc service implementation.
func NewServer() *Server {
	return &Server{}
}

// Add implements the Add RPC.
func (s *Server) Add(ctx context.Context, req *calcv1.BinaryOpRequest) (*calcv1.BinaryOpResponse, error) {
	result := mathutil.Add(req.GetA(), req.GetB())
	log.V(2).Infof("[Add] %d + %d = %d", req.GetA(), req.GetB(), result)
	return &calcv1.BinaryOpResponse{Result: result}, nil
}

// Subtract implements the Subtract RPC.
func (s *Server) Subtract(ctx context.Context, req *calcv1.BinaryOpRequest) (*calcv1.BinaryOpResponse, error) {
	result := mathutil.Subtract(req.GetA(), req.GetB())
	log.V(2).Infof("[Subtract] %d - %d = %d", req.GetA(), req.GetB(), result)
	return &calcv1.BinaryOpResponse{Result: result}, nil
}

// Multiply implements the Multiply RPC.
func (s *Server) Multiply(ctx context.Context, req *calcv1.BinaryOpRequest) (*calcv1.BinaryOpResponse, error) {
	result := mathutil.Multiply(req.GetA(), req.GetB())
	log.V(2).Infof("[Multiply] %d * %d = %d", req.GetA(), req.GetB(), result)
	return &calcv1.BinaryOpResponse{Result: result}, nil
}

// Divide implements the Divide RPC. A zero divisor is rejected with
// INVALID_ARGUMENT.
func (s *Server) Divide(ctx context.Context, req *calcv1.BinaryOpRequest) (*calcv1.BinaryOpResponse, error) {
	result, err := mathutil.Divide(req.GetA(), req.GetB())
	if err != nil {
		log.V(1).Infof("[Divide] rejected %d / %d: %v", req.GetA(), req.GetB(), err)
		return nil, toStatus(err)
	}
	log.V(2).Infof("[Divide] %d / %d = %d", req.GetA(), req.GetB(), result)
	return &calcv1.BinaryOpResponse{Result: result}, nil
}

// IsPrime implements the IsPrime RPC.
func (s *Server) IsPrime(ctx context.Context, req *calcv1.IsPrimeRequest) (*calcv1.IsPrimeResponse, error) {
	prime := mathutil.IsPrime(req.GetN())
	log.V(2).Infof("[IsPrime] %d -> %t", req.GetN(), prime)
	return &calcv1.IsPrimeResponse{Prime: prime}, nil
}

// Factorial implements the Factorial RPC. A negative argument is
// rejected with INVALID_ARGUMENT.
func (s *Server) Factorial(ctx context.Context, req *calcv1.FactorialRequest) (*calcv1.FactorialResponse, error) {
	result, err := mathutil.Factorial(req.GetN())
	if err != nil {
		log.V(1).Infof("[Factorial] rejected %d: %v", req.GetN(), err)
		return nil, toStatus(err)
	}
	log.V(2).Infof("[Factorial] %d! = %d", req.GetN(), result)
	return &calcv1.FactorialResponse{Result: result}, nil
}

// toStatus translates library errors to gRPC status errors. The math
// helpers only fail on violated preconditions, so anything else is an
// internal error.
func toStatus(err error) error {
	if errors.Is(err, mathutil.ErrInvalidArgument) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}
