package utils

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var SessionSecret = []byte("ecommify-sesja-dev")

func GenerateToken(userID string, name string, username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  userID,
		"name":     name,
		"username": username,
	})
	return token.SignedString(SessionSecret)
}

func VerifyToken(tokenString string) (jwt.MapClaims, error) {
	token, _ := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return SessionSecret, nil
	})

	if token != nil {
		if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
			return claims, nil
		}
	}
	return nil, errors.New("token niewazny")
}
