package sheet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"gen-archive-go/internal/model"
	"gen-archive-go/pkg/log"
)

// Client 从远程地址抓取 CSV 表格。任何失败都吞掉并返回空列表，
// 导入失败对上层表现为「表格为空」，绝不向外抛错。
type Client struct {
	csvURL     string
	httpClient *http.Client
}

// NewClient 创建一个表格抓取客户端。timeout 为 0 时使用 15 秒。
func NewClient(csvURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		csvURL:     csvURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchPosts 抓取并解析远程表格。地址未配置、网络错误、非 2xx
// 响应都返回空列表。
func (c *Client) FetchPosts(ctx context.Context) []model.Post {
	if c.csvURL == "" {
		log.Info("[sheet] 未配置表格地址，跳过远程导入")
		return nil
	}

	text, err := c.fetchCSV(ctx)
	if err != nil {
		log.Error("[sheet] 抓取远程表格失败", err)
		return nil
	}

	posts := ParsePosts(text)
	log.Infof("[sheet] 远程表格导入完成，共 %d 条记录", len(posts))
	return posts
}

func (c *Client) fetchCSV(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.csvURL, nil)
	if err != nil {
		return "", fmt.Errorf("构造请求失败: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("请求远程表格失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("远程表格返回非成功状态: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("读取响应体失败: %w", err)
	}
	return string(body), nil
}
