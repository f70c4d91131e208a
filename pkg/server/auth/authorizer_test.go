package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// tokenContext builds an incoming context carrying an API token, the
// way the gRPC transport would present it to the interceptor.
func tokenContext(token string) context.Context {
	md := metadata.Pairs(TokenHeader, token)
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestCheckAccessRoles(t *testing.T) {
	authorizer := NewTokenAuthorizer()
	authorizer.AddToken("admin-token", "calc_full")
	authorizer.AddToken("basic-token", "calc_basic")
	authorizer.AddToken("denied-token", "calc_noaccess")
	authorizer.AddToken("other-token", "stats_full")

	tests := []struct {
		name     string
		token    string
		service  string
		compute  bool
		wantCode codes.Code
	}{
		{"full token basic method", "admin-token", "calc", false, codes.OK},
		{"full token compute method", "admin-token", "calc", true, codes.OK},
		{"basic token basic method", "basic-token", "calc", false, codes.OK},
		{"basic token compute method", "basic-token", "calc", true, codes.PermissionDenied},
		{"noaccess token basic method", "denied-token", "calc", false, codes.PermissionDenied},
		{"noaccess token compute method", "denied-token", "calc", true, codes.PermissionDenied},
		{"token for another service", "other-token", "calc", false, codes.PermissionDenied},
		{"unknown token", "bogus", "calc", false, codes.Unauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authorizer.CheckAccess(tokenContext(tt.token), tt.service, tt.compute)
			if tt.wantCode == codes.OK {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			st, ok := status.FromError(err)
			require.True(t, ok, "error should carry a gRPC status")
			assert.Equal(t, tt.wantCode, st.Code())
		})
	}
}

func TestCheckAccessNoMetadata(t *testing.T) {
	authorizer := NewTokenAuthorizer()
	authorizer.AddToken("admin-token", "calc_full")

	err := authorizer.CheckAccess(context.Background(), "calc", false)
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Unauthenticated, st.Code())
}

func TestAddTokenTrimsRoles(t *testing.T) {
	authorizer := NewTokenAuthorizer()
	authorizer.AddToken("t", " calc_full , stats_basic ")

	roles, err := authorizer.getRoles("t")
	require.NoError(t, err)
	assert.Equal(t, []string{"calc_full", "stats_basic"}, roles)
}
