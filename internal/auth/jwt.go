// Package auth issues and validates reviewer session tokens.
package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"
)

// JwtIssuer identifies tokens minted by this service.
const JwtIssuer = "TheBetterHack"

var secretKey = os.Getenv("SECRET_KEY")

// GenerateToken mints an HS256 access token for the given user id.
func GenerateToken(userID uuid.UUID) (string, error) {
	token, _, err := GenerateTokenWithDuration(userID, time.Hour, JwtIssuer)
	return token, err
}

// GenerateTokenWithDuration mints a token with an explicit lifetime and
// issuer. Mainly used by tests to produce expired or foreign tokens.
func GenerateTokenWithDuration(userID uuid.UUID, duration time.Duration, issuer string) (string, *jwt.RegisteredClaims, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := accessToken.SignedString([]byte(secretKey))
	if err != nil {
		return "", nil, fmt.Errorf("Failed to sign token: %s", err)
	}

	return signedToken, &claims, nil
}

// ValidatedToken parses and verifies an access token.
func ValidatedToken(encodedToken string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(encodedToken, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, isValid := token.Method.(*jwt.SigningMethodHMAC); !isValid {
			return nil, fmt.Errorf("Invalid token")
		}
		return []byte(secretKey), nil
	})
}
