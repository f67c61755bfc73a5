package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWT struct {
	Secret string
}

func (j *JWT) CreateToken(userID int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour * 3).Unix(),
	})

	return token.SignedString([]byte(j.Secret))
}

// VerifyToken parses the token and returns the owning user id. Expired,
// malformed, and wrongly signed tokens all come back as a single error.
func (j *JWT) VerifyToken(tokenString string) (int, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}

		return []byte(j.Secret), nil
	})

	if err != nil {
		return 0, err
	}

	if !token.Valid {
		return 0, errors.New("invalid access token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return 0, errors.New("invalid token claims")
	}

	userID, ok := claims["user_id"].(float64)

	if !ok {
		return 0, errors.New("token missing user_id claim")
	}

	return int(userID), nil
}

func CreateJwtTokenForUser(userID int) (string, error) {
	j := JWT{Secret: os.Getenv("JWT_SECRET")}
	return j.CreateToken(userID)
}

func VerifyJwtToken(token string) (int, error) {
	j := JWT{Secret: os.Getenv("JWT_SECRET")}
	return j.VerifyToken(token)
}
