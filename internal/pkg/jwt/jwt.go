package jwt

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const sseTokenTTL = 5 * time.Minute

type Service interface {
	// GenerateAccessToken signs an access token; an empty ttl uses the configured expiration.
	GenerateAccessToken(subject string, name string, role user.Role, ttl string) (token string, expiresAt int64, err error)
	GenerateSSEToken(subject string) (token string, expiresIn int, err error)
	ValidateSSEToken(tokenString string) (subject string, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(subject string, name string, role user.Role, ttl string) (token string, expiresAt int64, err error) {
	if ttl == "" {
		ttl = j.accessTokenExpirationTime
	}
	expDuration, err := time.ParseDuration(ttl)
	if err != nil {
		return "", 0, fmt.Errorf("invalid token ttl %q: %w", ttl, err)
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		auth.ClaimSubject: subject,
		auth.ClaimName:    name,
		auth.ClaimRole:    string(role),
		auth.ClaimType:    auth.TokenTypeAccess,
		"exp":             expiresAt,
	})
	return tokenString, expiresAt, err
}

// GenerateSSEToken generates a short-lived token for the event stream,
// which browsers open without an Authorization header.
func (j *JWTService) GenerateSSEToken(subject string) (token string, expiresIn int, err error) {
	expiresIn = int(sseTokenTTL.Seconds())
	expiresAt := time.Now().Add(sseTokenTTL).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		auth.ClaimSubject: subject,
		auth.ClaimType:    "sse",
		"exp":             expiresAt,
	})
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresIn, nil
}

// ValidateSSEToken validates an SSE token and returns its subject
func (j *JWTService) ValidateSSEToken(tokenString string) (subject string, err error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	tokenType, ok := token.Get(auth.ClaimType)
	if !ok || tokenType != "sse" {
		return "", auth.ErrInvalidToken
	}

	subject = token.Subject()
	if subject == "" {
		return "", auth.ErrInvalidToken
	}

	return subject, nil
}
