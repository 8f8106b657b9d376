// Package pipeline 实现附件镜像链路的消费端处理器。
package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gen-archive-go/internal/config"
	"gen-archive-go/pkg/log"
	"gen-archive-go/pkg/storage"
	"gen-archive-go/pkg/tasks"

	"github.com/minio/minio-go/v7"
)

// MirrorProcessor 把导入记录引用的远程附件下载后落到对象存储，
// 避免外链失效导致画廊内容缺图。
type MirrorProcessor struct {
	cfg        config.MinIOConfig
	httpClient *http.Client
}

func NewMirrorProcessor(cfg config.MinIOConfig) *MirrorProcessor {
	return &MirrorProcessor{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Process 下载 task.URL 并写入 mirror/<postId>/<attachmentId>。
// 内联 data: 地址无需镜像，直接成功返回。
func (p *MirrorProcessor) Process(ctx context.Context, task tasks.AttachmentMirrorTask) error {
	if strings.HasPrefix(task.URL, "data:") || task.URL == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, task.URL, nil)
	if err != nil {
		return fmt.Errorf("构造附件下载请求失败: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("下载附件失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("下载附件返回异常状态码: %d", resp.StatusCode)
	}

	objectName := fmt.Sprintf("mirror/%s/%s", task.PostID, task.AttachmentID)
	contentType := resp.Header.Get("Content-Type")

	_, err = storage.MinioClient.PutObject(ctx, p.cfg.BucketName, objectName, resp.Body, resp.ContentLength, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("写入对象存储失败: %w", err)
	}

	log.Infof("[pipeline] 附件已镜像: %s", objectName)
	return nil
}
