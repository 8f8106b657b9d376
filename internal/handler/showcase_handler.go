package handler

import (
	"net/http"

	"gen-archive-go/internal/model"
	"gen-archive-go/internal/service"

	"github.com/gin-gonic/gin"
)

// ShowcaseHandler 负责作品橱窗的 API。
type ShowcaseHandler struct {
	showcaseService *service.ShowcaseService
}

func NewShowcaseHandler(showcaseService *service.ShowcaseService) *ShowcaseHandler {
	return &ShowcaseHandler{showcaseService: showcaseService}
}

// List 返回全部橱窗条目。
func (h *ShowcaseHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"data":    h.showcaseService.List(),
		"message": "success",
	})
}

// CreateShowcaseRequest 定义了新增橱窗条目的请求体结构。
type CreateShowcaseRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	URL         string   `json:"url" binding:"required"`
	ImageURL    string   `json:"imageUrl"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags"`
}

// Create 新增一个橱窗条目。
func (h *ShowcaseHandler) Create(c *gin.Context) {
	var req CreateShowcaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "标题和链接不能为空"})
		return
	}

	item := h.showcaseService.Add(model.ShowcaseItem{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		ImageURL:    req.ImageURL,
		Author:      req.Author,
		Tags:        req.Tags,
	}, actingUser(c))

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"data":    item,
		"message": "success",
	})
}
