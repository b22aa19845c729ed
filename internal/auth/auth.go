package auth

import (
	"context"
	"errors"
	"time"

	coreuser "github.com/frahmantamala/tracko/internal/core/user"
	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

const ContextUserKey ctxKey = "user"

func ActorFromContext(ctx context.Context) (*coreuser.Actor, bool) {
	a, ok := ctx.Value(ContextUserKey).(*coreuser.Actor)
	return a, ok
}

func ContextWithActor(ctx context.Context, actor *coreuser.Actor) context.Context {
	return context.WithValue(ctx, ContextUserKey, actor)
}

type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Claims represents JWT token claims. Role travels in the token so the
// middleware can build an Actor without a second lookup, but the user record
// is still re-read to catch deactivation between issue and use.
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   int8   `json:"role"`
	jwt.RegisteredClaims
}

// TokenGenerator creates and validates signed tokens.
type TokenGenerator interface {
	GenerateAccessToken(userID int64, email string, role coreuser.Role) (string, error)
	GenerateRefreshToken(userID int64, email string, role coreuser.Role) (string, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	ValidateRefreshToken(tokenString string) (*Claims, error)
}

type JWTTokenGenerator struct {
	AccessTokenSecret  []byte
	RefreshTokenSecret []byte
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrUserInactive       = errors.New("user is inactive")
	ErrEmailTaken         = errors.New("email already registered")
	ErrForbidden          = errors.New("forbidden")
)
