package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"medclinic-client/internal/models"
)

// Claims represents the JWT claims issued by the clinic backend.
type Claims struct {
	Role     models.Role `json:"role"`
	IsActive *bool       `json:"is_active,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim.
func (c *Claims) UserID() string {
	return c.Subject
}

// Active reports the account status carried by the token. Tokens issued
// before the claim existed count as active.
func (c *Claims) Active() bool {
	return c.IsActive == nil || *c.IsActive
}

// DecodeClaims reads the claims of a token without verifying its signature.
// The client only uses them for display and routing; the backend verifies.
func DecodeClaims(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}
	return claims, nil
}

// GenerateToken signs an HS256 access token for a user.
func GenerateToken(userID string, role models.Role, active bool, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role:     role,
		IsActive: &active,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken validates a JWT token.
func ValidateToken(tokenString string, secretKey string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	return claims, nil
}
