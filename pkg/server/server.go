// Package server assembles the gRPC server that fronts the Calc
// service: optional TLS, optional token authorization, reflection.
package server

import (
	"fmt"

	"github.com/golang/glog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/reflection"

	"github.com/calclab/intcalc/pkg/server/auth"
	"github.com/calclab/intcalc/pkg/server/calc"
	calcv1 "github.com/calclab/intcalc/proto/calc/v1"
)

// Options controls how the server is assembled.
type Options struct {
	// CertFile and KeyFile enable TLS when both are set.
	CertFile string
	KeyFile  string

	// Authorizer, when non-nil, is enforced on every Calc RPC.
	Authorizer auth.Authorizer
}

// New creates a gRPC server with the Calc service registered.
func New(opts Options) (*grpc.Server, error) {
	glog.V(1).Info("Creating Calc gRPC server")

	var serverOpts []grpc.ServerOption

	if opts.CertFile != "" && opts.KeyFile != "" {
		creds, err := credentials.NewServerTLSFromFile(opts.CertFile, opts.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load TLS credentials: %w", err)
		}
		serverOpts = append(serverOpts, grpc.Creds(creds))
		glog.V(1).Info("Added TLS credentials to server")
	} else {
		glog.V(1).Info("Creating insecure server (no TLS configured)")
	}

	if opts.Authorizer != nil {
		serverOpts = append(serverOpts,
			grpc.UnaryInterceptor(auth.AuthMiddleware(opts.Authorizer)),
			grpc.StreamInterceptor(auth.StreamAuthMiddleware(opts.Authorizer)),
		)
		glog.V(1).Info("Added authorization interceptors")
	} else {
		glog.V(1).Info("No authorization - creating server without auth middleware")
	}

	srv := grpc.NewServer(serverOpts...)

	calcv1.RegisterCalcServer(srv, calc.NewServer())

	// Register reflection service for development tools
	reflection.Register(srv)
	glog.V(2).Info("Registered gRPC reflection service")

	return srv, nil
}
