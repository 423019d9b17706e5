// Package auth issues and verifies the HS256 session tokens that ride the
// Authorization header.
package auth

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Sessions live a week; re-login happens through a fresh OTP.
const TokenTTL = 7 * 24 * time.Hour

type Claims struct {
	UserID int64
	Role   string
}

func IssueToken(secret string, userID int64, role string) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"role":   role,
		"iat":    now.Unix(),
		"exp":    now.Add(TokenTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("issueToken: error signing token: %w", err)
	}
	return signed, nil
}

func VerifyToken(secret, t string) (*Claims, error) {
	parsed, err := jwt.Parse(t, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("verifyToken: unexpected signing method: %v", tk.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("verifyToken: error parsing token: %w", err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("verifyToken: invalid token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("verifyToken: could not parse claims")
	}

	userID, ok := claims["userId"].(float64)
	if !ok {
		return nil, fmt.Errorf("verifyToken: userId claim missing")
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, fmt.Errorf("verifyToken: role claim missing")
	}

	return &Claims{UserID: int64(userID), Role: role}, nil
}
