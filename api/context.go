package api

import (
	"context"

	"github.com/sncblog/backend/auth"
)

type keyType string

const adminClaimsKey keyType = "adminClaims"

// ctxWithAdmin attaches the verified admin claims to the request context
func ctxWithAdmin(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, adminClaimsKey, claims)
}

// adminFromCtx retrieves the verified admin claims from the context, or nil
// when the request did not pass through the guard
func adminFromCtx(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(adminClaimsKey).(*auth.Claims)
	return claims
}
