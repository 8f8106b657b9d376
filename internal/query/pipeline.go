// Package query 实现帖子列表的过滤与排序。纯函数，不持有状态。
package query

import (
	"sort"
	"strings"

	"gen-archive-go/internal/aggregate"
	"gen-archive-go/internal/model"
)

// SortMode 是列表排序方式。
type SortMode string

const (
	SortDateDesc    SortMode = "date"     // 新在前（默认）
	SortDateAsc     SortMode = "date_asc" // 旧在前
	SortRatingDesc  SortMode = "rating"   // 平均分高在前
	SortReviewsDesc SortMode = "reviews"  // 评价多在前
)

// CategoryAll 表示不按类别过滤。
const CategoryAll = "All"

// State 是一组可变的查询条件。零值即默认视图。
type State struct {
	Search    string   `json:"search"`
	Category  string   `json:"category"`  // 类别标签或 "All"
	MinRating float64  `json:"minRating"` // 阈值 0 放行一切（含未评分）
	Model     string   `json:"model"`     // 空串表示不过滤，否则精确匹配
	SortBy    SortMode `json:"sortBy"`
}

// Normalize 将零值字段补成默认值。
func (s State) Normalize() State {
	if s.Category == "" {
		s.Category = CategoryAll
	}
	if s.SortBy == "" {
		s.SortBy = SortDateDesc
	}
	return s
}

// Apply 对帖子列表执行过滤和排序，返回新切片，不修改输入。
func Apply(posts []model.Post, state State) []model.Post {
	state = state.Normalize()
	queryLower := strings.ToLower(state.Search)

	filtered := make([]model.Post, 0, len(posts))
	for _, post := range posts {
		if !matches(post, state, queryLower) {
			continue
		}
		filtered = append(filtered, post)
	}

	sortPosts(filtered, state.SortBy)
	return filtered
}

// matches 检查帖子是否满足全部过滤条件。
func matches(post model.Post, state State, queryLower string) bool {
	if state.Category != CategoryAll && string(post.Category) != state.Category {
		return false
	}
	if aggregate.AverageRating(post) < state.MinRating {
		return false
	}
	if state.Model != "" && post.ModelName != state.Model {
		return false
	}
	if queryLower != "" {
		// 标题、提示词、模型名、作者、类别标签任一命中即可
		haystacks := []string{post.Title, post.Prompt, post.ModelName, post.Author, string(post.Category)}
		hit := false
		for _, h := range haystacks {
			if strings.Contains(strings.ToLower(h), queryLower) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

func sortPosts(posts []model.Post, mode SortMode) {
	switch mode {
	case SortRatingDesc:
		sort.SliceStable(posts, func(i, j int) bool {
			return aggregate.AverageRating(posts[i]) > aggregate.AverageRating(posts[j])
		})
	case SortReviewsDesc:
		sort.SliceStable(posts, func(i, j int) bool {
			return len(posts[i].Reviews) > len(posts[j].Reviews)
		})
	case SortDateAsc:
		// 无法解析的时间戳按零值时间参与比较，等同最早
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].CreatedTime().Before(posts[j].CreatedTime())
		})
	default:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].CreatedTime().After(posts[j].CreatedTime())
		})
	}
}
