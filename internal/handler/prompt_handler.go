package handler

import (
	"net/http"

	"gen-archive-go/internal/model"
	"gen-archive-go/internal/service"

	"github.com/gin-gonic/gin"
)

// PromptHandler 负责提示词模板库的 API。
type PromptHandler struct {
	promptService *service.PromptService
}

func NewPromptHandler(promptService *service.PromptService) *PromptHandler {
	return &PromptHandler{promptService: promptService}
}

// List 返回模板列表，支持 category 过滤和 sort=default|helpful。
func (h *PromptHandler) List(c *gin.Context) {
	category := c.Query("category")
	sortBy := c.DefaultQuery("sort", service.PromptSortDefault)

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"data":    h.promptService.List(category, sortBy),
		"message": "success",
	})
}

// VoteRequest 定义了模板投票的请求体结构。
type VoteRequest struct {
	Direction string `json:"direction"`
}

// Vote 记录对模板的投票。重复同向投票视为撤销。
func (h *PromptHandler) Vote(c *gin.Context) {
	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求负载"})
		return
	}
	if req.Direction != model.VoteUp && req.Direction != model.VoteDown {
		c.JSON(http.StatusBadRequest, gin.H{"error": "direction 必须是 up 或 down"})
		return
	}

	h.promptService.Vote(c.Param("id"), req.Direction)
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"data":    nil,
		"message": "success",
	})
}
