// Package store 维护帖子、评价与身份的统一内存视图，并同步写穿到
// 持久化后端。所有可变状态由一把互斥锁串行化，对应单线程事件模型。
package store

import (
	"sync"
	"time"

	"gen-archive-go/internal/model"
	"gen-archive-go/internal/repository"
	"gen-archive-go/pkg/log"

	"github.com/google/uuid"
)

// ChangeEvent 描述一次数据变更，用于通知实时事件通道。
type ChangeEvent struct {
	Type   string `json:"type"` // post_created / review_created / showcase_created / sheet_loaded
	PostID string `json:"postId,omitempty"`
}

// RecordStore 管理两个帖子分区（远程导入 / 本地投稿）、评价旁路索引、
// 展示身份、橱窗条目与提示词投票。
type RecordStore struct {
	mu   sync.Mutex
	repo repository.Store

	localPosts  []model.Post
	sheetPosts  []model.Post
	reviews     map[string][]model.Review
	identity    *model.TelegramUser
	showcases   []model.ShowcaseItem
	promptVotes map[string]string

	// ingesting 为真表示远程抓取仍在进行，此时不回退演示数据
	ingesting       bool
	sheetConfigured bool

	onChange func(ChangeEvent)
}

// NewRecordStore 创建 RecordStore 并从持久化后端加载全部状态。
// sheetConfigured 为假且合并视图为空时回退到内置演示数据。
func NewRecordStore(repo repository.Store, sheetConfigured bool) *RecordStore {
	s := &RecordStore{
		repo:            repo,
		reviews:         make(map[string][]model.Review),
		promptVotes:     make(map[string]string),
		sheetConfigured: sheetConfigured,
		ingesting:       sheetConfigured,
	}

	if posts, err := repo.LoadLocalPosts(); err == nil && posts != nil {
		s.localPosts = posts
	}
	if reviews, err := repo.LoadReviews(); err == nil && reviews != nil {
		s.reviews = reviews
	}
	if identity, err := repo.LoadIdentity(); err == nil {
		s.identity = identity
	}
	if items, err := repo.LoadShowcases(); err == nil && items != nil {
		s.showcases = items
	} else {
		// 首次启动时为橱窗填充内置条目
		s.showcases = SeedShowcases()
		s.persistShowcases()
	}
	if votes, err := repo.LoadPromptVotes(); err == nil && votes != nil {
		s.promptVotes = votes
	}

	log.Infof("[store] 本地状态加载完成：本地帖子 %d 条，评价桶 %d 个", len(s.localPosts), len(s.reviews))
	return s
}

// SetOnChange 注册数据变更回调，由实时事件通道消费。
func (s *RecordStore) SetOnChange(fn func(ChangeEvent)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// notify 在持锁状态下同步调用回调，保证事件按变更顺序送达。
// 回调必须非阻塞且不得回调本 store。
func (s *RecordStore) notify(ev ChangeEvent) {
	if s.onChange != nil {
		s.onChange(ev)
	}
}

// SetSheetPosts 整体替换远程导入分区，并标记本轮导入结束。
func (s *RecordStore) SetSheetPosts(posts []model.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sheetPosts = posts
	s.ingesting = false
	s.notify(ChangeEvent{Type: "sheet_loaded"})
}

// MergedPosts 返回合并视图：本地分区（新在前）拼接远程分区。
// id 冲突时本地记录遮蔽同 id 的导入记录，保证合并集内 id 唯一。
// 合并视图为空、导入已结束且未配置远程地址时，回退内置演示数据。
func (s *RecordStore) MergedPosts() []model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mergedLocked()
}

func (s *RecordStore) mergedLocked() []model.Post {
	merged := make([]model.Post, 0, len(s.localPosts)+len(s.sheetPosts))
	seen := make(map[string]bool, len(s.localPosts))
	for _, p := range s.localPosts {
		merged = append(merged, p)
		seen[p.ID] = true
	}
	for _, p := range s.sheetPosts {
		if seen[p.ID] {
			continue
		}
		merged = append(merged, p)
	}

	if len(merged) == 0 && !s.ingesting && !s.sheetConfigured {
		return SeedPosts()
	}
	return merged
}

// PostsWithReviews 返回合并视图，并把旁路索引中的评价拼接到每条帖子的
// 内联评价之后。两处评价不去重——导入记录从不携带内联评价。
func (s *RecordStore) PostsWithReviews() []model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := s.mergedLocked()
	out := make([]model.Post, len(merged))
	for i, p := range merged {
		combined := make([]model.Review, 0, len(p.Reviews)+len(s.reviews[p.ID]))
		combined = append(combined, p.Reviews...)
		combined = append(combined, s.reviews[p.ID]...)
		p.Reviews = combined
		out[i] = p
	}
	return out
}

// actingLocked 返回本次变更的署名身份：优先请求携带的令牌身份，
// 其次持久化身份。两者都没有时为 nil。
func (s *RecordStore) actingLocked(actor *model.TelegramUser) *model.TelegramUser {
	if actor != nil {
		return actor
	}
	return s.identity
}

// AddPost 署名后把帖子前插到本地分区并持久化。actor 是请求令牌解析出的
// 身份，nil 时回退到持久化身份。返回署名后的帖子。
func (s *RecordStore) AddPost(post model.Post, actor *model.TelegramUser) model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	author := "Anonymous"
	if acting := s.actingLocked(actor); acting != nil {
		author = acting.DisplayName()
	}
	post.Author = author
	if post.Reviews == nil {
		post.Reviews = []model.Review{}
	}

	s.localPosts = append([]model.Post{post}, s.localPosts...)
	if err := s.repo.SaveLocalPosts(s.localPosts); err != nil {
		log.Error("[store] 持久化本地帖子失败", err)
	}

	s.notify(ChangeEvent{Type: "post_created", PostID: post.ID})
	log.Infof("[store] 新增本地帖子 '%s' (id=%s, 作者=%s)", post.Title, post.ID, author)
	return post
}

// AddReview 为指定帖子追加一条评价并持久化。actor 与持久化身份都缺失
// 时静默拒绝，返回 (零值, false)，评价索引保持不变。
func (s *RecordStore) AddReview(postID, text string, rating float64, actor *model.TelegramUser) (model.Review, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acting := s.actingLocked(actor)
	if acting == nil {
		log.Warnf("[store] 未登录的评价请求被忽略 (postId=%s)", postID)
		return model.Review{}, false
	}

	review := model.Review{
		ID:           uuid.NewString(),
		Author:       acting.DisplayName(),
		AuthorAvatar: acting.PhotoURL,
		Text:         text,
		Rating:       rating,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	s.reviews[postID] = append([]model.Review{review}, s.reviews[postID]...)
	if err := s.repo.SaveReviews(s.reviews); err != nil {
		log.Error("[store] 持久化评价索引失败", err)
	}

	s.notify(ChangeEvent{Type: "review_created", PostID: postID})
	return review, true
}

// Identity 返回当前展示身份，未登录为 nil。
func (s *RecordStore) Identity() *model.TelegramUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// SetIdentity 保存登录身份。传 nil 表示登出。
func (s *RecordStore) SetIdentity(user *model.TelegramUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = user
	if err := s.repo.SaveIdentity(user); err != nil {
		log.Error("[store] 持久化身份失败", err)
	}
}

// Showcases 返回橱窗条目列表（新在前）。
func (s *RecordStore) Showcases() []model.ShowcaseItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ShowcaseItem, len(s.showcases))
	copy(out, s.showcases)
	return out
}

// AddShowcase 署名后前插一个橱窗条目并持久化。actor 为 nil 时回退到
// 持久化身份。
func (s *RecordStore) AddShowcase(item model.ShowcaseItem, actor *model.TelegramUser) model.ShowcaseItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	author := "Anonymous"
	if acting := s.actingLocked(actor); acting != nil {
		author = acting.DisplayName()
	}
	item.Author = author

	s.showcases = append([]model.ShowcaseItem{item}, s.showcases...)
	s.persistShowcases()
	s.notify(ChangeEvent{Type: "showcase_created"})
	return item
}

func (s *RecordStore) persistShowcases() {
	if err := s.repo.SaveShowcases(s.showcases); err != nil {
		log.Error("[store] 持久化橱窗条目失败", err)
	}
}

// PromptVotes 返回提示词投票表的一个副本。
func (s *RecordStore) PromptVotes() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.promptVotes))
	for k, v := range s.promptVotes {
		out[k] = v
	}
	return out
}

// SetPromptVote 记录提示词投票并持久化。vote 为空串表示撤销。
func (s *RecordStore) SetPromptVote(templateID, vote string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if vote == model.VoteNone {
		delete(s.promptVotes, templateID)
	} else {
		s.promptVotes[templateID] = vote
	}
	if err := s.repo.SavePromptVotes(s.promptVotes); err != nil {
		log.Error("[store] 持久化提示词投票失败", err)
	}
}
