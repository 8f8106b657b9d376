package repository

import (
	"encoding/json"
	"fmt"

	"gen-archive-go/internal/model"
	"gen-archive-go/pkg/log"

	"gorm.io/gorm"
)

// blobRecord 对应 gallery_blobs 表：每块状态一行，内容为 JSON。
// 行结构与文件后端的键值语义保持一致，便于后端互换。
type blobRecord struct {
	Key       string `gorm:"type:varchar(64);primaryKey" json:"key"`
	Payload   string `gorm:"type:longtext;not null" json:"payload"`
	UpdatedAt int64  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (blobRecord) TableName() string {
	return "gallery_blobs"
}

// 各块状态在 gallery_blobs 表中的键。
const (
	keyLocalPosts  = "local_posts"
	keyReviews     = "reviews"
	keyIdentity    = "identity"
	keyShowcases   = "showcases"
	keyPromptVotes = "prompt_votes"
)

// GormStore 是 Store 接口的 GORM/MySQL 实现。
type GormStore struct {
	db *gorm.DB
}

// NewGormStore 创建 MySQL 后端并自动建表。
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&blobRecord{}); err != nil {
		return nil, fmt.Errorf("迁移 gallery_blobs 表失败: %w", err)
	}
	return &GormStore{db: db}, nil
}

// loadBlob 读取一个键的 JSON 内容。键不存在返回 false；
// 内容损坏时告警并按「无数据」处理。
func (s *GormStore) loadBlob(key string, v interface{}) bool {
	var record blobRecord
	err := s.db.Where("`key` = ?", key).First(&record).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Warnf("[repository] 读取 %s 失败: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(record.Payload), v); err != nil {
		log.Warnf("[repository] %s 内容损坏，已丢弃: %v", key, err)
		return false
	}
	return true
}

func (s *GormStore) saveBlob(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("序列化 %s 失败: %w", key, err)
	}
	record := blobRecord{Key: key, Payload: string(data)}
	return s.db.Save(&record).Error
}

func (s *GormStore) LoadLocalPosts() ([]model.Post, error) {
	var posts []model.Post
	s.loadBlob(keyLocalPosts, &posts)
	return posts, nil
}

func (s *GormStore) SaveLocalPosts(posts []model.Post) error {
	return s.saveBlob(keyLocalPosts, posts)
}

func (s *GormStore) LoadReviews() (map[string][]model.Review, error) {
	reviews := make(map[string][]model.Review)
	s.loadBlob(keyReviews, &reviews)
	return reviews, nil
}

func (s *GormStore) SaveReviews(reviews map[string][]model.Review) error {
	return s.saveBlob(keyReviews, reviews)
}

func (s *GormStore) LoadIdentity() (*model.TelegramUser, error) {
	var user model.TelegramUser
	if !s.loadBlob(keyIdentity, &user) {
		return nil, nil
	}
	return &user, nil
}

func (s *GormStore) SaveIdentity(user *model.TelegramUser) error {
	if user == nil {
		return s.db.Where("`key` = ?", keyIdentity).Delete(&blobRecord{}).Error
	}
	return s.saveBlob(keyIdentity, user)
}

func (s *GormStore) LoadShowcases() ([]model.ShowcaseItem, error) {
	var items []model.ShowcaseItem
	if !s.loadBlob(keyShowcases, &items) {
		return nil, nil
	}
	return items, nil
}

func (s *GormStore) SaveShowcases(items []model.ShowcaseItem) error {
	return s.saveBlob(keyShowcases, items)
}

func (s *GormStore) LoadPromptVotes() (map[string]string, error) {
	votes := make(map[string]string)
	s.loadBlob(keyPromptVotes, &votes)
	return votes, nil
}

func (s *GormStore) SavePromptVotes(votes map[string]string) error {
	return s.saveBlob(keyPromptVotes, votes)
}
