package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(staffID, email string, isAdmin bool) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey            string
	accessExpirationTime string
	tokenAuth            *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessExpirationTime string) Service {
	return &JWTService{
		secretKey:            secretKey,
		accessExpirationTime: accessExpirationTime,
		tokenAuth:            jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(staffID, email string, isAdmin bool) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.accessExpirationTime)
	if err != nil {
		return "", 0, err
	}
	now := time.Now()
	expiresAt := now.Add(expDuration).Unix()

	claims := map[string]interface{}{
		"sub":      staffID,
		"email":    email,
		"is_admin": isAdmin,
		"type":     "access",
		"iat":      now.Unix(),
		"exp":      expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	if err != nil {
		return "", 0, err
	}
	return tokenString, expiresAt, nil
}
