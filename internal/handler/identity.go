package handler

import (
	"gen-archive-go/internal/model"
	"gen-archive-go/pkg/token"

	"github.com/gin-gonic/gin"
)

// actingUser 从请求令牌解析本次操作的署名身份。请求未携带有效令牌时
// 返回 nil，由下层回退到持久化身份。
func actingUser(c *gin.Context) *model.TelegramUser {
	v, ok := c.Get("claims")
	if !ok {
		return nil
	}
	claims, ok := v.(*token.IdentityClaims)
	if !ok {
		return nil
	}
	return &model.TelegramUser{
		ID:        claims.UserID,
		FirstName: claims.FirstName,
		Username:  claims.Username,
		PhotoURL:  claims.PhotoURL,
	}
}
