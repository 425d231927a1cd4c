package api

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/syahrillhaiqal/drinkify/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

type PictureStoreI interface {
	Upload(ctx context.Context, dataURI, prefix string) (string, error)
	URL(key string) string
	Delete(ctx context.Context, key string) error
}
