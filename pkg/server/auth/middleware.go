package auth

import (
	"context"
	"strings"

	"github.com/golang/glog"
	"google.golang.org/grpc"
)

// AuthMiddleware creates a gRPC unary interceptor for authorization.
func AuthMiddleware(auth Authorizer) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler) (interface{}, error) {
		service, compute := parseMethod(info.FullMethod)

		// Skip authorization for system services (empty service name)
		if service == "" {
			glog.V(3).Infof("Skipping authorization for method %s", info.FullMethod)
			return handler(ctx, req)
		}

		glog.V(2).Infof("Authorization check for method %s -> service=%s, compute=%t",
			info.FullMethod, service, compute)

		if err := auth.CheckAccess(ctx, service, compute); err != nil {
			glog.V(1).Infof("Authorization denied for method %s: %v", info.FullMethod, err)
			return nil, err
		}

		glog.V(2).Infof("Authorization granted for method %s", info.FullMethod)
		return handler(ctx, req)
	}
}

// StreamAuthMiddleware creates a gRPC stream interceptor for authorization.
func StreamAuthMiddleware(auth Authorizer) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo,
		handler grpc.StreamHandler) error {
		service, compute := parseMethod(info.FullMethod)

		// Skip authorization for system services (empty service name)
		if service == "" {
			glog.V(3).Infof("Skipping stream authorization for method %s", info.FullMethod)
			return handler(srv, ss)
		}

		glog.V(2).Infof("Stream authorization check for method %s -> service=%s, compute=%t",
			info.FullMethod, service, compute)

		if err := auth.CheckAccess(ss.Context(), service, compute); err != nil {
			glog.V(1).Infof("Stream authorization denied for method %s: %v", info.FullMethod, err)
			return err
		}

		glog.V(2).Infof("Stream authorization granted for method %s", info.FullMethod)
		return handler(srv, ss)
	}
}

// calcMethods maps Calc methods to their compute classification.
// Basic methods (false) are single arithmetic instructions; compute
// methods (true) do input-proportional work (trial division, iterated
// products) and can be withheld from basic-tier tokens.
var calcMethods = map[string]bool{
	"Add":       false, // basic
	"Subtract":  false, // basic
	"Multiply":  false, // basic
	"Divide":    false, // basic
	"IsPrime":   true,  // compute
	"Factorial": true,  // compute
}

// parseMethod extracts service name and compute classification from a
// gRPC method name.
func parseMethod(fullMethod string) (service string, compute bool) {
	glog.V(3).Infof("Parsing method: %s", fullMethod)

	// Skip authorization for gRPC reflection and health check services
	if strings.Contains(fullMethod, "grpc.reflection") ||
		strings.Contains(fullMethod, "grpc.health") {
		glog.V(3).Infof("Skipping authorization for system service: %s", fullMethod)
		return "", false // Empty service means skip authorization
	}

	// Extract service and method from fullMethod
	// Format: /package.ServiceName/MethodName
	parts := strings.Split(fullMethod, "/")
	if len(parts) < 3 {
		glog.V(2).Infof("Invalid method format: %s", fullMethod)
		return "unknown", false
	}

	grpcServiceName := parts[1] // e.g., "calc.v1.Calc"
	methodName := parts[2]      // e.g., "Divide"

	if grpcServiceName == "calc.v1.Calc" {
		if compute, exists := calcMethods[methodName]; exists {
			glog.V(3).Infof("Calc method %s mapped to compute=%t", methodName, compute)
			return "calc", compute
		}

		// Unknown Calc method - default to basic access
		glog.V(2).Infof("Unknown Calc method %s, defaulting to basic", methodName)
		return "calc", false
	}

	// Unknown service
	glog.V(2).Infof("Unknown service for method %s", fullMethod)
	return "unknown", false
}
