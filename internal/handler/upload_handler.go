package handler

import (
	"net/http"

	"gen-archive-go/internal/service"
	"gen-archive-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// UploadHandler 负责附件上传的 API 请求。
type UploadHandler struct {
	uploadService *service.UploadService
}

func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload 接收 multipart 表单中的 file 字段，存入对象存储后
// 返回可挂到帖子上的附件记录。
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未能获取上传的文件"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未能读取上传的文件"})
		return
	}
	defer file.Close()

	attachment, err := h.uploadService.Upload(
		c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		log.Error("Upload: 附件上传失败", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "附件上传失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"data":    attachment,
		"message": "success",
	})
}
