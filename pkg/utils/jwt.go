package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

const TokenTTL = 14 * 24 * time.Hour

// CreateJWTToken signs payload as-is, overriding any exp claim it carries.
func CreateJWTToken(payload map[string]interface{}, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	for key, value := range payload {
		claims[key] = value
	}
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(TokenTTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecretKey))
}

func ExtractTokenEmail(c echo.Context) string {
	user, ok := c.Get("user").(*jwt.Token)
	if !ok || !user.Valid {
		return ""
	}

	claims, ok := user.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	email, _ := claims["email"].(string)
	return email
}
