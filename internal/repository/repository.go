// Package repository 定义了本地持久化状态的存取接口和实现。
package repository

import "gen-archive-go/internal/model"

// Store 管理画廊的全部本地持久化状态：本地投稿的帖子、评价索引、
// 展示身份、橱窗条目以及提示词投票。每块状态独立读写，写入为
// 全量覆盖（write-through），由调用方保证调用顺序。
type Store interface {
	LoadLocalPosts() ([]model.Post, error)
	SaveLocalPosts(posts []model.Post) error

	LoadReviews() (map[string][]model.Review, error)
	SaveReviews(reviews map[string][]model.Review) error

	// LoadIdentity 未登录时返回 (nil, nil)。SaveIdentity 传 nil 表示登出。
	LoadIdentity() (*model.TelegramUser, error)
	SaveIdentity(user *model.TelegramUser) error

	LoadShowcases() ([]model.ShowcaseItem, error)
	SaveShowcases(items []model.ShowcaseItem) error

	// 提示词投票：模板 ID → "up" / "down"。
	LoadPromptVotes() (map[string]string, error)
	SavePromptVotes(votes map[string]string) error
}
