// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"net/http"

	"gen-archive-go/internal/query"
	"gen-archive-go/internal/service"

	"github.com/gin-gonic/gin"
)

// FeedHandler 负责信息流相关的 API：视图、查询、分页、深链、
// 搜索建议和模型排行榜。
type FeedHandler struct {
	feedService *service.FeedService
}

func NewFeedHandler(feedService *service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// GetFeed 返回当前查询条件下的可见窗口。
func (h *FeedHandler) GetFeed(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"data":    h.feedService.View(),
		"message": "success",
	})
}

// QueryRequest 定义了查询条件更新的请求体结构。
type QueryRequest struct {
	Search    string  `json:"search"`
	Category  string  `json:"category"`
	MinRating float64 `json:"minRating"`
	Model     string  `json:"model"`
	SortBy    string  `json:"sortBy"`
}

// SetQuery 整体替换查询条件并返回重置后的视图。
func (h *FeedHandler) SetQuery(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的查询条件"})
		return
	}

	view := h.feedService.SetQuery(query.State{
		Search:    req.Search,
		Category:  req.Category,
		MinRating: req.MinRating,
		Model:     req.Model,
		SortBy:    query.SortMode(req.SortBy),
	})
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"data":    view,
		"message": "success",
	})
}

// LoadMore 扩大一页可见窗口并返回新视图。
func (h *FeedHandler) LoadMore(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"data":    h.feedService.LoadMore(),
		"message": "success",
	})
}

// Reveal 处理深链：扩大窗口使目标帖子可见，返回其位置。
func (h *FeedHandler) Reveal(c *gin.Context) {
	postID := c.Param("id")
	pos, ok := h.feedService.Reveal(postID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "帖子不在当前结果集中"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": http.StatusOK,
		"data": gin.H{
			"position": pos,
			"view":     h.feedService.View(),
		},
		"message": "success",
	})
}

// Suggestions 返回搜索建议。带 q 参数时按 q 匹配，否则沿用当前查询文本。
func (h *FeedHandler) Suggestions(c *gin.Context) {
	q, hasQ := c.GetQuery("q")
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"data":    h.feedService.Suggestions(q, !hasQ),
		"message": "success",
	})
}

// Ranking 返回模型排行榜，支持 sort 列与 order=asc|desc。
func (h *FeedHandler) Ranking(c *gin.Context) {
	sortKey := c.DefaultQuery("sort", "Overall")
	ascending := c.DefaultQuery("order", "desc") == "asc"

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"data":    h.feedService.Ranking(sortKey, ascending),
		"message": "success",
	})
}
