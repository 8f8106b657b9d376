package service

import (
	"time"

	"gen-archive-go/internal/model"
	"gen-archive-go/internal/store"

	"github.com/google/uuid"
)

// ShowcaseService 提供作品橱窗的读写。
type ShowcaseService struct {
	store *store.RecordStore
}

func NewShowcaseService(recordStore *store.RecordStore) *ShowcaseService {
	return &ShowcaseService{store: recordStore}
}

// List 返回全部橱窗条目，最新在前。
func (s *ShowcaseService) List() []model.ShowcaseItem {
	return s.store.Showcases()
}

// Add 补全缺省字段后写入橱窗。actor 为 nil 时署名回退到持久化身份。
func (s *ShowcaseService) Add(item model.ShowcaseItem, actor *model.TelegramUser) model.ShowcaseItem {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt == "" {
		item.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return s.store.AddShowcase(item, actor)
}
