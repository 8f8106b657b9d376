package handler

import (
	"net/http"

	"gen-archive-go/internal/model"
	"gen-archive-go/internal/service"
	"gen-archive-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// PostHandler 负责本地投稿与评价相关的 API。
type PostHandler struct {
	feedService *service.FeedService
}

func NewPostHandler(feedService *service.FeedService) *PostHandler {
	return &PostHandler{feedService: feedService}
}

// CreatePostRequest 定义了本地投稿的请求体结构。
type CreatePostRequest struct {
	Title             string             `json:"title" binding:"required"`
	Category          string             `json:"category"`
	ModelName         string             `json:"modelName"`
	Prompt            string             `json:"prompt"`
	InputContent      string             `json:"inputContent" binding:"required"`
	InputAttachments  []model.Attachment `json:"inputAttachments"`
	OutputContent     string             `json:"outputContent"`
	OutputAttachments []model.Attachment `json:"outputAttachments"`
}

// CreatePost 创建一条本地投稿。作者字段由请求令牌或持久化身份决定，
// 请求体不可覆盖。
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("CreatePost: 无效的请求负载: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "标题和输入内容不能为空"})
		return
	}

	post := h.feedService.AddPost(model.Post{
		Title:             req.Title,
		Category:          model.CategoryType(req.Category),
		ModelName:         req.ModelName,
		Prompt:            req.Prompt,
		InputContent:      req.InputContent,
		InputAttachments:  req.InputAttachments,
		OutputContent:     req.OutputContent,
		OutputAttachments: req.OutputAttachments,
	}, actingUser(c))

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"data":    post,
		"message": "success",
	})
}

// CreateReviewRequest 定义了提交评价的请求体结构。快速评分允许正文为空。
type CreateReviewRequest struct {
	Text   string  `json:"text"`
	Rating float64 `json:"rating" binding:"required,min=0.5,max=5"`
}

// CreateReview 为帖子追加一条评价。身份来自请求令牌，缺失时回退到
// 持久化身份；两者都没有则拒绝。
func (h *PostHandler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "评分必须在 0.5 到 5 之间"})
		return
	}

	review, ok := h.feedService.AddReview(c.Param("id"), req.Text, req.Rating, actingUser(c))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "请先登录后再评分"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"data":    review,
		"message": "success",
	})
}
