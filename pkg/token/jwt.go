// Package token 提供了用于生成和验证身份令牌 (JWT) 的功能。
// 令牌只承载展示身份，不代表任何服务端校验过的权限。
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager 负责管理 JWT 的生成和验证。
type JWTManager struct {
	secretKey []byte
	tokenDur  time.Duration
}

// IdentityClaims 把 Telegram 登录组件回传的展示身份装进 JWT。
type IdentityClaims struct {
	UserID    int64  `json:"userId"`
	FirstName string `json:"firstName"`
	Username  string `json:"username,omitempty"`
	PhotoURL  string `json:"photoUrl,omitempty"`
	jwt.RegisteredClaims
}

// NewJWTManager 创建一个新的 JWTManager 实例。
func NewJWTManager(secret string, tokenExpireHours int) *JWTManager {
	return &JWTManager{
		secretKey: []byte(secret),
		tokenDur:  time.Hour * time.Duration(tokenExpireHours),
	}
}

// GenerateToken 根据展示身份生成一个新的令牌。
func (m *JWTManager) GenerateToken(userID int64, firstName, username, photoURL string) (string, error) {
	claims := IdentityClaims{
		UserID:    userID,
		FirstName: firstName,
		Username:  username,
		PhotoURL:  photoURL,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.tokenDur)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// VerifyToken 验证令牌。有效时返回 IdentityClaims，否则返回错误。
func (m *JWTManager) VerifyToken(tokenString string) (*IdentityClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &IdentityClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*IdentityClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
