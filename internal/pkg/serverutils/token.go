package serverutils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CreateAccessToken issues a short-lived bearer token for the given user.
// Used by the seeder and by tests; a real deployment gets tokens from the
// identity provider in front of this service.
func CreateAccessToken(userId string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userId,
		"exp": time.Now().Add(30 * time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret()))
}
