package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gen-archive-go/internal/config"
	"gen-archive-go/internal/model"
	"gen-archive-go/pkg/log"
	"gen-archive-go/pkg/storage"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// UploadService 把用户上传的附件写入 MinIO 并返回可引用的附件记录。
type UploadService struct {
	cfg config.MinIOConfig
}

func NewUploadService(cfg config.MinIOConfig) *UploadService {
	return &UploadService{cfg: cfg}
}

// Upload 以随机对象名存储文件，返回带预签名访问地址的附件。
func (s *UploadService) Upload(ctx context.Context, filename, contentType string, size int64, reader io.Reader) (model.Attachment, error) {
	objectName := fmt.Sprintf("uploads/%s%s", uuid.NewString(), filepath.Ext(filename))

	_, err := storage.MinioClient.PutObject(ctx, s.cfg.BucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		log.Errorf("上传附件到 MinIO 失败 (object=%s): %v", objectName, err)
		return model.Attachment{}, err
	}

	url, err := storage.GetPresignedURL(s.cfg.BucketName, objectName, 7*24*time.Hour)
	if err != nil {
		return model.Attachment{}, err
	}

	return model.Attachment{
		ID:   uuid.NewString(),
		Type: attachmentKind(contentType),
		URL:  url,
		Name: filename,
	}, nil
}

// attachmentKind 由 MIME 主类型推断附件类型，未知归为文档。
func attachmentKind(contentType string) model.AttachmentType {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return model.AttachmentImage
	case strings.HasPrefix(contentType, "audio/"):
		return model.AttachmentAudio
	default:
		return model.AttachmentDocument
	}
}
