package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gen-archive-go/internal/model"
	"gen-archive-go/pkg/log"
)

// 各块状态对应的数据文件名。
const (
	fileLocalPosts  = "local_posts.json"
	fileReviews     = "reviews.json"
	fileIdentity    = "identity.json"
	fileShowcases   = "showcases.json"
	filePromptVotes = "prompt_votes.json"
)

// FileStore 把每块状态序列化为数据目录下的一个 JSON 文件。
// 文件损坏时丢弃内容并回退到空值，不向上传播错误。
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore 创建文件后端，确保数据目录存在。
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("创建数据目录失败: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// readJSON 读取并反序列化一个数据文件。文件不存在返回 false；
// 内容损坏时告警并同样按「无数据」处理。
func (s *FileStore) readJSON(name string, v interface{}) bool {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("[repository] 读取数据文件 %s 失败: %v", name, err)
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Warnf("[repository] 数据文件 %s 内容损坏，已丢弃: %v", name, err)
		return false
	}
	return true
}

func (s *FileStore) writeJSON(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化 %s 失败: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("写入 %s 失败: %w", name, err)
	}
	return nil
}

func (s *FileStore) LoadLocalPosts() ([]model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var posts []model.Post
	s.readJSON(fileLocalPosts, &posts)
	return posts, nil
}

func (s *FileStore) SaveLocalPosts(posts []model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeJSON(fileLocalPosts, posts)
}

func (s *FileStore) LoadReviews() (map[string][]model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reviews := make(map[string][]model.Review)
	s.readJSON(fileReviews, &reviews)
	return reviews, nil
}

func (s *FileStore) SaveReviews(reviews map[string][]model.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeJSON(fileReviews, reviews)
}

func (s *FileStore) LoadIdentity() (*model.TelegramUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var user model.TelegramUser
	if !s.readJSON(fileIdentity, &user) {
		return nil, nil
	}
	return &user, nil
}

func (s *FileStore) SaveIdentity(user *model.TelegramUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user == nil {
		// 登出即删除身份文件
		err := os.Remove(filepath.Join(s.dir, fileIdentity))
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("删除身份文件失败: %w", err)
		}
		return nil
	}
	return s.writeJSON(fileIdentity, user)
}

func (s *FileStore) LoadShowcases() ([]model.ShowcaseItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var items []model.ShowcaseItem
	if !s.readJSON(fileShowcases, &items) {
		return nil, nil
	}
	return items, nil
}

func (s *FileStore) SaveShowcases(items []model.ShowcaseItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeJSON(fileShowcases, items)
}

func (s *FileStore) LoadPromptVotes() (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	votes := make(map[string]string)
	s.readJSON(filePromptVotes, &votes)
	return votes, nil
}

func (s *FileStore) SavePromptVotes(votes map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeJSON(filePromptVotes, votes)
}
