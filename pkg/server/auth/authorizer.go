// Package auth provides simple authorization for the Calc gRPC service.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang/glog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// TokenHeader is the metadata key clients use to present their API token.
const TokenHeader = "x-api-token"

// Authorizer defines the interface for checking access permissions.
type Authorizer interface {
	CheckAccess(ctx context.Context, service string, compute bool) error
}

// TokenAuthorizer implements token-based authorization. Each token maps
// to a set of roles of the form "<service>_<level>", where level is one
// of "full" (all methods), "basic" (constant-time methods only) or
// "noaccess" (explicit denial).
type TokenAuthorizer struct {
	roles map[string][]string
}

// NewTokenAuthorizer creates an authorizer with an empty token table.
func NewTokenAuthorizer() *TokenAuthorizer {
	return &TokenAuthorizer{
		roles: make(map[string][]string),
	}
}

// AddToken registers a token with a comma-separated role list,
// e.g. "calc_full" or "calc_basic,stats_noaccess".
func (a *TokenAuthorizer) AddToken(token, roleList string) {
	var roles []string
	for _, role := range strings.Split(roleList, ",") {
		if role = strings.TrimSpace(role); role != "" {
			roles = append(roles, role)
		}
	}
	a.roles[token] = roles
}

// CheckAccess verifies if the client has the required permissions.
func (a *TokenAuthorizer) CheckAccess(ctx context.Context, service string, compute bool) error {
	token, err := a.extractToken(ctx)
	if err != nil {
		glog.V(2).Infof("Failed to extract token: %v", err)
		return status.Error(codes.Unauthenticated, "no valid API token")
	}

	roles, err := a.getRoles(token)
	if err != nil {
		glog.V(2).Infof("Failed to get roles: %v", err)
		return status.Error(codes.Unauthenticated, "unknown API token")
	}

	if a.hasAccess(roles, service, compute) {
		glog.V(2).Infof("Access granted for service %s (compute=%t)", service, compute)
		return nil
	}

	glog.V(1).Infof("Access denied for service %s (compute=%t)", service, compute)
	return status.Error(codes.PermissionDenied, "insufficient permissions")
}

// extractToken pulls the API token from the incoming request metadata.
func (a *TokenAuthorizer) extractToken(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", fmt.Errorf("no request metadata")
	}

	vals := md.Get(TokenHeader)
	if len(vals) == 0 || vals[0] == "" {
		return "", fmt.Errorf("metadata has no %s entry", TokenHeader)
	}

	return vals[0], nil
}

// getRoles retrieves the roles registered for a token.
func (a *TokenAuthorizer) getRoles(token string) ([]string, error) {
	roles, ok := a.roles[token]
	if !ok || len(roles) == 0 {
		return nil, fmt.Errorf("no roles found for token")
	}
	return roles, nil
}

// hasAccess checks if any of the roles grants access to the service.
func (a *TokenAuthorizer) hasAccess(roles []string, service string, compute bool) bool {
	for _, role := range roles {
		glog.V(3).Infof("Checking role %s for service %s", role, service)

		if strings.HasPrefix(role, service) {
			// Extract the access level (e.g., "calc_basic" -> "basic")
			suffix := strings.TrimPrefix(role, service+"_")

			switch suffix {
			case "full":
				glog.V(3).Infof("Role %s grants full access", role)
				return true
			case "basic":
				if !compute {
					glog.V(3).Infof("Role %s grants basic access", role)
					return true
				}
				glog.V(3).Infof("Role %s denies compute access", role)
			case "noaccess":
				glog.V(3).Infof("Role %s explicitly denies access", role)
				return false
			}
		}
	}

	glog.V(3).Infof("No matching roles found for service %s", service)
	return false
}
