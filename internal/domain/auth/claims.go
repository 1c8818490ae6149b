package auth

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

const (
	ClaimSubject = "sub"
	ClaimName    = "name"
	ClaimRole    = "role"
	ClaimType    = "type"

	TokenTypeAccess = "access"
)

// ActorFromContext reads the caller from the verified token in ctx.
func ActorFromContext(ctx context.Context) (user.Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.Actor{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	return ActorFromClaims(claims)
}

func ActorFromClaims(claims map[string]interface{}) (user.Actor, error) {
	if claims == nil {
		return user.Actor{}, ErrInvalidToken
	}
	role, _ := claims[ClaimRole].(string)
	if !user.Role(role).IsValid() {
		return user.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, user.ErrInvalidRole)
	}
	subject, _ := claims[ClaimSubject].(string)
	name, _ := claims[ClaimName].(string)
	return user.Actor{Subject: subject, Name: name, Role: user.Role(role)}, nil
}
