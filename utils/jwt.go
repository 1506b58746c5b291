package utils

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Tokens expire a fixed duration after issuance. Rotating JWT_SECRET
// invalidates every outstanding token.
const tokenLifetime = 24 * time.Hour

var (
	secretOnce sync.Once
	secret     []byte
)

func secretKey() []byte {
	secretOnce.Do(func() {
		secret = []byte(os.Getenv("JWT_SECRET"))
		if len(secret) == 0 {
			log.Fatal("JWT_SECRET is not set")
		}
	})
	return secret
}

// Claims is the identity a token carries: who, and with which role.
type Claims struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// GenerateToken issues a signed token for the given user.
func GenerateToken(userID uint, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(tokenLifetime).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ParseToken verifies signature and expiry and returns the embedded claims.
// Any failure (bad signature, malformed payload, expired) is an error.
func ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secretKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
