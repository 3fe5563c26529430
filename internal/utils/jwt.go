package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test_secret_key_minimum_32_characters_long_for_testing_only"

// AdminTokenTTL is how long an admin session token stays valid.
const AdminTokenTTL = 15 * time.Minute

var jwtKey = []byte(testSecret)

// SetJWTSecret installs the signing key. An empty secret keeps the test key.
func SetJWTSecret(secret string) {
	if secret == "" {
		secret = testSecret
	}
	jwtKey = []byte(secret)
}

func ValidateJWTSecret(secret string) error {
	if secret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if len(secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters long (current: %d)", len(secret))
	}

	if secret == testSecret {
		return fmt.Errorf("cannot use default test secret in production")
	}

	return nil
}

func GenerateJWT(subject, roleName string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": roleName,
		"exp":  time.Now().Add(AdminTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func ParseJWT(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
