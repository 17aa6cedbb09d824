package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry returns the exp claim of an access token issued by the sync
// provider.
//
// The signature is not verified: the agent is the token's bearer, not its
// audience, and only needs the expiry to decide when to refresh. Returns an
// error if the token is malformed or carries no exp claim.
//
// Example usage:
//
//	exp, err := utils.TokenExpiry(cache.AccessToken)
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("error occurred parsing token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("error occurred reading exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, errors.New("token has no exp claim")
	}

	return exp.Time, nil
}

// TokenExpired reports whether tokenString expires within leeway of now.
// Tokens whose expiry cannot be read count as expired, so the caller
// refreshes them instead of sending a request that is bound to fail.
func TokenExpired(tokenString string, now time.Time, leeway time.Duration) bool {
	exp, err := TokenExpiry(tokenString)
	if err != nil {
		return true
	}
	return !now.Add(leeway).Before(exp)
}
