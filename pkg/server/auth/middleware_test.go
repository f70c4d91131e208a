package auth

import (
	"strings"
	"testing"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		name        string
		fullMethod  string
		wantService string
		wantCompute bool
	}{
		{"basic add", "/calc.v1.Calc/Add", "calc", false},
		{"basic subtract", "/calc.v1.Calc/Subtract", "calc", false},
		{"basic multiply", "/calc.v1.Calc/Multiply", "calc", false},
		{"basic divide", "/calc.v1.Calc/Divide", "calc", false},
		{"compute prime", "/calc.v1.Calc/IsPrime", "calc", true},
		{"compute factorial", "/calc.v1.Calc/Factorial", "calc", true},
		{"unknown calc method defaults to basic", "/calc.v1.Calc/Modulo", "calc", false},
		{"skip reflection", "/grpc.reflection.v1alpha.ServerReflection/ServerReflectionInfo", "", false},
		{"skip health", "/grpc.health.v1.Health/Check", "", false},
		{"unknown service", "/other.service/Method", "unknown", false},
		{"invalid format", "/invalid", "unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, compute := parseMethod(tt.fullMethod)
			if service != tt.wantService {
				t.Errorf("service = %v, want %v", service, tt.wantService)
			}
			if compute != tt.wantCompute {
				t.Errorf("compute = %v, want %v", compute, tt.wantCompute)
			}
		})
	}
}

func TestMethodConfiguration(t *testing.T) {
	// Every Calc RPC must be classified.
	if len(calcMethods) == 0 {
		t.Fatal("No Calc methods configured")
	}

	for _, method := range []string{"Add", "Subtract", "Multiply", "Divide", "IsPrime", "Factorial"} {
		if _, exists := calcMethods[method]; !exists {
			t.Errorf("Calc method %s is not classified", method)
		}
	}

	// Method names are bare (no service prefix); the single-service
	// lookup keys on method name only.
	for method := range calcMethods {
		if strings.Contains(method, ".") || strings.Contains(method, "/") {
			t.Errorf("Calc method %s should be a bare method name", method)
		}
	}
}
