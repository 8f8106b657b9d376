package handler

import (
	"net/http"

	"gen-archive-go/internal/model"
	"gen-archive-go/internal/service"
	"gen-archive-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// AuthHandler 负责处理 Telegram 登录与会话身份相关的 API 请求。
type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// TelegramLoginRequest 对应 Telegram Login Widget 的回调数据。
type TelegramLoginRequest struct {
	ID        int64  `json:"id" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	PhotoURL  string `json:"photo_url"`
	AuthDate  int64  `json:"auth_date" binding:"required"`
	Hash      string `json:"hash"`
}

// TelegramLogin 处理 Telegram 登录回调。
func (h *AuthHandler) TelegramLogin(c *gin.Context) {
	var req TelegramLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("TelegramLogin: 无效的请求负载: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的登录数据"})
		return
	}

	user := model.TelegramUser{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		PhotoURL:  req.PhotoURL,
		AuthDate:  req.AuthDate,
		Hash:      req.Hash,
	}

	jwtToken, err := h.authService.Login(user)
	if err != nil {
		log.Warnf("TelegramLogin: 登录校验失败: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "登录数据校验失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": http.StatusOK,
		"data": gin.H{
			"token": jwtToken,
			"user":  user,
		},
		"message": "success",
	})
}

// Logout 清除当前身份。
func (h *AuthHandler) Logout(c *gin.Context) {
	h.authService.Logout()
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"data":    nil,
		"message": "success",
	})
}

// Me 返回当前身份，未登录时 data 为 null。
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"data":    h.authService.Identity(),
		"message": "success",
	})
}
