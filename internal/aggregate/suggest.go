package aggregate

import (
	"strings"

	"gen-archive-go/internal/model"
)

// maxSuggestions 限制一次返回的搜索建议总数。
const maxSuggestions = 8

// 建议类型，同时决定拼接次序：类别 → 模型 → 作者 → 帖子标题。
const (
	SuggestionCategory = "category"
	SuggestionModel    = "model"
	SuggestionAuthor   = "author"
	SuggestionPost     = "post"
)

// Suggestion 是一条搜索建议。
type Suggestion struct {
	Type     string `json:"type"`
	Label    string `json:"label"`
	Value    string `json:"value"`
	SubLabel string `json:"subLabel,omitempty"`
}

// Suggest 根据查询文本生成搜索建议。空查询返回固定的两个热门类别
// 加记录集中前 3 个不同的模型名；非空查询按类别→模型→作者→标题的
// 顺序做大小写不敏感的子串匹配，总数不超过 8 条。
func Suggest(posts []model.Post, query string) []Suggestion {
	queryLower := strings.ToLower(strings.TrimSpace(query))

	if queryLower == "" {
		suggestions := []Suggestion{
			{Type: SuggestionCategory, Label: "Транскрипция", Value: "Транскрипция", SubLabel: "Категория"},
			{Type: SuggestionCategory, Label: "Реставрация", Value: "Реставрация", SubLabel: "Категория"},
		}
		for _, m := range distinctModels(posts, 3) {
			suggestions = append(suggestions, Suggestion{Type: SuggestionModel, Label: m, Value: m, SubLabel: "Популярная модель"})
		}
		return suggestions
	}

	var suggestions []Suggestion
	for _, cat := range model.AllCategories {
		if strings.Contains(strings.ToLower(string(cat)), queryLower) {
			suggestions = append(suggestions, Suggestion{Type: SuggestionCategory, Label: string(cat), Value: string(cat), SubLabel: "Категория"})
		}
	}
	for _, m := range distinctModels(posts, 0) {
		if strings.Contains(strings.ToLower(m), queryLower) {
			suggestions = append(suggestions, Suggestion{Type: SuggestionModel, Label: m, Value: m, SubLabel: "AI Модель"})
		}
	}
	for _, a := range distinctAuthors(posts) {
		if strings.Contains(strings.ToLower(a), queryLower) {
			suggestions = append(suggestions, Suggestion{Type: SuggestionAuthor, Label: a, Value: a, SubLabel: "Автор"})
		}
	}
	for _, post := range posts {
		if strings.Contains(strings.ToLower(post.Title), queryLower) {
			suggestions = append(suggestions, Suggestion{Type: SuggestionPost, Label: post.Title, Value: post.Title, SubLabel: post.ModelName})
		}
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// distinctModels 返回按首次出现顺序去重的模型名。limit 为 0 表示不限。
func distinctModels(posts []model.Post, limit int) []string {
	seen := make(map[string]bool)
	var models []string
	for _, p := range posts {
		if seen[p.ModelName] {
			continue
		}
		seen[p.ModelName] = true
		models = append(models, p.ModelName)
		if limit > 0 && len(models) == limit {
			break
		}
	}
	return models
}

func distinctAuthors(posts []model.Post) []string {
	seen := make(map[string]bool)
	var authors []string
	for _, p := range posts {
		if seen[p.Author] {
			continue
		}
		seen[p.Author] = true
		authors = append(authors, p.Author)
	}
	return authors
}
