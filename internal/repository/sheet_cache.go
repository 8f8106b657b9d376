package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gen-archive-go/internal/model"
	"gen-archive-go/pkg/log"

	"github.com/go-redis/redis/v8"
)

const sheetCacheKey = "sheet:posts"

// SheetCache 在 Redis 中缓存一份解析后的远程表格快照，
// TTL 内重启进程可以跳过一次远程抓取。
type SheetCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

// NewSheetCache 创建表格快照缓存。
func NewSheetCache(redisClient *redis.Client, ttl time.Duration) *SheetCache {
	return &SheetCache{redisClient: redisClient, ttl: ttl}
}

// Get 读取缓存的表格快照。未命中或内容损坏返回 (nil, false)。
func (c *SheetCache) Get(ctx context.Context) ([]model.Post, bool) {
	jsonData, err := c.redisClient.Get(ctx, sheetCacheKey).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Warnf("[repository] 读取表格快照缓存失败: %v", err)
		return nil, false
	}
	var posts []model.Post
	if err := json.Unmarshal([]byte(jsonData), &posts); err != nil {
		log.Warnf("[repository] 表格快照缓存损坏，已忽略: %v", err)
		return nil, false
	}
	return posts, true
}

// Set 写入表格快照。
func (c *SheetCache) Set(ctx context.Context, posts []model.Post) error {
	jsonData, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("序列化表格快照失败: %w", err)
	}
	if err := c.redisClient.Set(ctx, sheetCacheKey, jsonData, c.ttl).Err(); err != nil {
		return fmt.Errorf("写入表格快照缓存失败: %w", err)
	}
	return nil
}
