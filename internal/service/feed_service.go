// Package service 实现了画廊的业务逻辑层。
package service

import (
	"context"
	"time"

	"gen-archive-go/internal/aggregate"
	"gen-archive-go/internal/model"
	"gen-archive-go/internal/query"
	"gen-archive-go/internal/repository"
	"gen-archive-go/internal/sheet"
	"gen-archive-go/internal/store"
	"gen-archive-go/internal/viewstate"
	"gen-archive-go/pkg/log"
	"gen-archive-go/pkg/tasks"

	"github.com/google/uuid"
)

// RankingRow 是排行榜的一行：模型名加各列分数。
// 分数为 nil 表示该列没有任何评分（与 0 分严格区分）。
type RankingRow struct {
	Model  string              `json:"model"`
	Scores map[string]*float64 `json:"scores"`
	Counts map[string]int      `json:"counts"`
}

// FeedService 组合记录仓库、视图状态与导入链路，向处理器层暴露
// 信息流的全部操作。
type FeedService struct {
	store      *store.RecordStore
	controller *viewstate.Controller
	sheets     *sheet.Client
	cache      *repository.SheetCache              // 可为 nil
	enqueue    func(tasks.AttachmentMirrorTask) error // 可为 nil
}

// NewFeedService 创建 FeedService。cache 与 enqueue 允许为 nil，
// 分别表示不启用表格快照缓存和附件镜像。
func NewFeedService(recordStore *store.RecordStore, sheets *sheet.Client, cache *repository.SheetCache, enqueue func(tasks.AttachmentMirrorTask) error) *FeedService {
	return &FeedService{
		store:      recordStore,
		controller: viewstate.NewController(recordStore.PostsWithReviews),
		sheets:     sheets,
		cache:      cache,
		enqueue:    enqueue,
	}
}

// LoadSheet 执行一次远程表格导入：优先读 Redis 快照，未命中时抓取
// 远端并回填缓存，最后整体替换导入分区并为带附件的记录排镜像任务。
// 每个进程生命周期只调用一次。
func (s *FeedService) LoadSheet(ctx context.Context) {
	var posts []model.Post

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			log.Infof("[feed] 命中表格快照缓存，共 %d 条记录", len(cached))
			s.store.SetSheetPosts(cached)
			return
		}
	}

	posts = s.sheets.FetchPosts(ctx)
	s.store.SetSheetPosts(posts)

	if s.cache != nil && len(posts) > 0 {
		if err := s.cache.Set(ctx, posts); err != nil {
			log.Error("[feed] 回填表格快照缓存失败", err)
		}
	}

	s.enqueueMirrorTasks(posts)
}

// enqueueMirrorTasks 为导入记录引用的远程附件排镜像任务。
func (s *FeedService) enqueueMirrorTasks(posts []model.Post) {
	if s.enqueue == nil {
		return
	}
	for _, post := range posts {
		for _, att := range post.InputAttachments {
			task := tasks.AttachmentMirrorTask{
				PostID:       post.ID,
				AttachmentID: att.ID,
				URL:          att.URL,
				Kind:         string(att.Type),
			}
			if err := s.enqueue(task); err != nil {
				log.Errorf("[feed] 附件镜像任务入队失败 (attachmentId=%s): %v", att.ID, err)
			}
		}
	}
}

// View 返回当前信息流视图。
func (s *FeedService) View() viewstate.FeedView {
	return s.controller.View()
}

// SetQuery 替换查询条件（窗口重置回一页）。
func (s *FeedService) SetQuery(state query.State) viewstate.FeedView {
	s.controller.SetState(state)
	return s.controller.View()
}

// LoadMore 扩大一页可见窗口。
func (s *FeedService) LoadMore() viewstate.FeedView {
	s.controller.LoadMore()
	return s.controller.View()
}

// Reveal 处理深链，返回帖子在结果集中的位置和是否命中。
func (s *FeedService) Reveal(postID string) (int, bool) {
	return s.controller.Reveal(postID)
}

// Suggestions 返回搜索建议。q 非空时覆盖当前查询文本。
func (s *FeedService) Suggestions(q string, useCurrent bool) []aggregate.Suggestion {
	text := q
	if useCurrent {
		text = s.controller.State().Search
	}
	return aggregate.Suggest(s.store.PostsWithReviews(), text)
}

// Ranking 构建排行榜：模型×类别（含 Overall）均分矩阵，
// 按 sortKey/ascending 排序后的行序列。
func (s *FeedService) Ranking(sortKey string, ascending bool) []RankingRow {
	matrix := aggregate.BuildMatrix(s.store.PostsWithReviews())

	columns := make([]string, 0, len(model.AllCategories)+1)
	columns = append(columns, aggregate.ColumnOverall)
	for _, c := range model.AllCategories {
		columns = append(columns, string(c))
	}

	rows := make([]RankingRow, 0, len(matrix.Models))
	for _, name := range matrix.SortedModels(sortKey, ascending) {
		row := RankingRow{
			Model:  name,
			Scores: make(map[string]*float64, len(columns)),
			Counts: make(map[string]int, len(columns)),
		}
		for _, col := range columns {
			cell := matrix.Data[name][col]
			row.Counts[col] = cell.Count
			if score := cell.Score(); score != aggregate.NoData {
				v := score
				row.Scores[col] = &v
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// AddPost 补全缺省字段后写入本地分区。actor 是请求令牌解析出的身份，
// nil 时署名回退到持久化身份。
func (s *FeedService) AddPost(post model.Post, actor *model.TelegramUser) model.Post {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if post.CreatedAt == "" {
		post.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if _, ok := model.CategoryFromLabel(string(post.Category)); !ok {
		post.Category = model.DefaultCategory
	}
	return s.store.AddPost(post, actor)
}

// AddReview 为帖子追加评价。actor 与持久化身份都缺失时返回 ok=false，
// 索引不变。
func (s *FeedService) AddReview(postID, text string, rating float64, actor *model.TelegramUser) (model.Review, bool) {
	return s.store.AddReview(postID, text, rating, actor)
}
