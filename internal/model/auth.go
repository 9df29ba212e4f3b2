package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type ContextKey string

const (
	UserIDKey   ContextKey = "userID"
	UserRoleKey ContextKey = "userRole"
)

// RoleGovernor は管理コンソール(ガバナー)の権限
const RoleGovernor = "governor"

// JWTCustomClaims はJWTに含めるカスタムクレーム
type JWTCustomClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}
