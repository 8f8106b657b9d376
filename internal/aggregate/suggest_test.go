package aggregate

import (
	"fmt"
	"testing"

	"gen-archive-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest_EmptyQueryReturnsDefaults(t *testing.T) {
	t.Parallel()

	posts := []model.Post{
		{ModelName: "GPT-4o"},
		{ModelName: "Claude"},
		{ModelName: "GPT-4o"}, // 重复模型不计
		{ModelName: "Gemini"},
		{ModelName: "Midjourney"}, // 超出前 3 个
	}

	got := Suggest(posts, "   ")

	require.Len(t, got, 5)
	assert.Equal(t, SuggestionCategory, got[0].Type)
	assert.Equal(t, "Транскрипция", got[0].Value)
	assert.Equal(t, "Реставрация", got[1].Value)
	assert.Equal(t, []string{"GPT-4o", "Claude", "Gemini"},
		[]string{got[2].Value, got[3].Value, got[4].Value})
}

func TestSuggest_OrderIsCategoryModelAuthorPost(t *testing.T) {
	t.Parallel()

	posts := []model.Post{
		{
			Title:     "перевод письма",
			Author:    "переводчик",
			ModelName: "Переводилка-1",
			Category:  model.CategoryTranslation,
		},
	}

	got := Suggest(posts, "перевод")

	require.Len(t, got, 4)
	assert.Equal(t, SuggestionCategory, got[0].Type)
	assert.Equal(t, string(model.CategoryTranslation), got[0].Value)
	assert.Equal(t, SuggestionModel, got[1].Type)
	assert.Equal(t, SuggestionAuthor, got[2].Type)
	assert.Equal(t, SuggestionPost, got[3].Type)
	assert.Equal(t, "Переводилка-1", got[3].SubLabel)
}

func TestSuggest_CaseInsensitive(t *testing.T) {
	t.Parallel()

	posts := []model.Post{{Title: "Старое Фото", ModelName: "M", Author: "A"}}

	got := Suggest(posts, "фото")

	// 类别 «Реставрация фото» 也命中
	require.Len(t, got, 2)
	assert.Equal(t, string(model.CategoryRestoration), got[0].Value)
	assert.Equal(t, "Старое Фото", got[1].Value)
}

func TestSuggest_CappedAtEight(t *testing.T) {
	t.Parallel()

	var posts []model.Post
	for i := 0; i < 12; i++ {
		posts = append(posts, model.Post{
			Title:     fmt.Sprintf("widget %d", i),
			ModelName: fmt.Sprintf("widget-model-%d", i),
			Author:    fmt.Sprintf("widget-author-%d", i),
		})
	}

	got := Suggest(posts, "widget")
	assert.Len(t, got, 8)
}
