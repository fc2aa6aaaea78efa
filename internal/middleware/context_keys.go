package middleware

import (
	"context"

	"github.com/tripvault/tripvault/internal/utils"
)

const claimsCtxKey = contextKey("accessClaims")

// GetClaimsFromCtx retrieves the authenticated caller's token claims from a
// standard context. The second return is false when no authenticated caller
// is attached (e.g. on public routes).
func GetClaimsFromCtx(ctx context.Context) (*utils.AccessClaims, bool) {
	claims, ok := ctx.Value(claimsCtxKey).(*utils.AccessClaims)
	return claims, ok
}

// GetUserIDFromCtx retrieves the authenticated user's ID from a standard
// context.
func GetUserIDFromCtx(ctx context.Context) (int64, bool) {
	claims, ok := GetClaimsFromCtx(ctx)
	if !ok {
		return 0, false
	}
	userID, err := claims.SubjectUserID()
	if err != nil {
		return 0, false
	}
	return userID, true
}
