package userservice

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const AccessTokenTime time.Duration = 30 * 24 * time.Hour

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// TokenService issues and validates signed identity tokens. Tokens are not
// persisted; the claim set alone asserts the user identity.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token signing secret must be provided")
	}

	return &TokenService{
		secret: []byte(secret),
		ttl:    AccessTokenTime,
	}, nil
}

// Issue creates a signed token for the given user id, expiring ttl from now.
func (s *TokenService) Issue(userID int) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.Itoa(userID),
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate verifies the signature and expiry of a token and returns the user
// id it was issued for.
func (s *TokenService) Validate(tokenString string) (int, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		default:
			return 0, ErrTokenInvalid
		}
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return 0, ErrTokenInvalid
	}

	id, err := strconv.Atoi(sub)
	if err != nil || id < 1 {
		return 0, ErrTokenInvalid
	}

	return id, nil
}
