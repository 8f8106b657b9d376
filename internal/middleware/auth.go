package middleware

import (
	"strings"

	"gen-archive-go/pkg/token"

	"github.com/gin-gonic/gin"
)

// OptionalAuth 创建一个宽松的认证中间件：携带有效 Bearer token 时把
// claims 存入上下文，缺失或无效时放行（画廊大部分接口允许匿名浏览）。
func OptionalAuth(jwtManager *token.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		const bearerPrefix = "Bearer "
		if strings.HasPrefix(authHeader, bearerPrefix) {
			tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
			if claims, err := jwtManager.VerifyToken(tokenString); err == nil {
				c.Set("claims", claims)
			}
		}
		c.Next()
	}
}
