// Package identity extracts the current actor from a bearer token and
// threads the actor id through a context. Token issuance is the identity
// provider's job, not this module's.
package identity

import (
	"context"
	"errors"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type ctxKey string

const actorIDKey ctxKey = "actor_id"

// ActorFromToken verifies tokenString against secret and returns the actor
// id. The id lives in the "sub" claim as a decimal string; tokens from the
// older issuer carry a numeric "user_id" claim instead, which is accepted
// as a fallback.
func ActorFromToken(secret []byte, tokenString string) (int, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	if sub, ok := claims["sub"].(string); ok {
		id, err := strconv.Atoi(sub)
		if err != nil {
			return 0, ErrInvalidToken
		}
		return id, nil
	}
	if uid, ok := claims["user_id"].(float64); ok {
		return int(uid), nil
	}
	return 0, ErrInvalidToken
}

// WithActor stores the actor id on the context.
func WithActor(ctx context.Context, actorID int) context.Context {
	return context.WithValue(ctx, actorIDKey, actorID)
}

// ActorFromContext reads the actor id placed by WithActor.
func ActorFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(actorIDKey).(int)
	return id, ok
}
