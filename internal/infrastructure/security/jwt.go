// Package security provides JWT token utilities
package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/prelandr/prelandr-go/internal/domain/entities/user"
)

// ValidateJWT validates a JWT token and returns the claims
func ValidateJWT(tokenString, jwtSecret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// GetIdentityFromClaims extracts the account identity from JWT claims.
func GetIdentityFromClaims(claims jwt.MapClaims) *user.Identity {
	accountID, ok := claims["accountId"].(string)
	if !ok || accountID == "" {
		return nil
	}
	orgID, ok := claims["orgId"].(string)
	if !ok || orgID == "" {
		return nil
	}
	email, _ := claims["email"].(string)

	return &user.Identity{
		AccountID: accountID,
		OrgID:     orgID,
		Email:     email,
	}
}

// GenerateAccountToken creates a JWT token for a signed-in account.
func GenerateAccountToken(account *user.Account, jwtSecret string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"accountId": account.ID,
		"orgId":     account.OrgID,
		"email":     account.Email,
		"iat":       time.Now().UTC().Unix(),
		"exp":       time.Now().UTC().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}
