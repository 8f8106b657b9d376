package query

import (
	"testing"

	"gen-archive-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkPost(id, title, author, modelName, prompt, createdAt string, category model.CategoryType, ratings ...float64) model.Post {
	reviews := make([]model.Review, len(ratings))
	for i, r := range ratings {
		reviews[i] = model.Review{Rating: r}
	}
	return model.Post{
		ID:        id,
		Title:     title,
		Author:    author,
		ModelName: modelName,
		Prompt:    prompt,
		Category:  category,
		Reviews:   reviews,
		CreatedAt: createdAt,
	}
}

func ids(posts []model.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func TestApply_ZeroRatingFloorPassesUnrated(t *testing.T) {
	t.Parallel()

	posts := []model.Post{
		mkPost("rated", "t", "a", "m", "", "2024-01-02T00:00:00Z", model.CategoryTranslation, 4),
		mkPost("unrated", "t", "a", "m", "", "2024-01-01T00:00:00Z", model.CategoryTranslation),
	}

	all := Apply(posts, State{MinRating: 0})
	assert.Equal(t, []string{"rated", "unrated"}, ids(all))

	// 阈值大于 0 时未评分记录被过滤
	some := Apply(posts, State{MinRating: 3})
	assert.Equal(t, []string{"rated"}, ids(some))
}

func TestApply_TextSearchSpansFiveFields(t *testing.T) {
	t.Parallel()

	posts := []model.Post{
		mkPost("by-title", "старая ГАЗета", "a", "m", "", "", model.CategoryTranslation),
		mkPost("by-prompt", "t", "a", "m", "восстанови газету", "", model.CategoryTranslation),
		mkPost("by-model", "t", "a", "Газета-GPT", "", "", model.CategoryTranslation),
		mkPost("by-author", "t", "газетчик", "m", "", "", model.CategoryTranslation),
		mkPost("miss", "t", "a", "m", "", "", model.CategoryTranslation),
	}

	got := Apply(posts, State{Search: "газет", SortBy: SortDateAsc})
	assert.ElementsMatch(t, []string{"by-title", "by-prompt", "by-model", "by-author"}, ids(got))

	// 类别标签同样参与匹配
	byCat := Apply(posts, State{Search: "перевод"})
	assert.Len(t, byCat, 5)
}

func TestApply_CategoryAndModelFilters(t *testing.T) {
	t.Parallel()

	posts := []model.Post{
		mkPost("p1", "t", "a", "GPT-4o", "", "", model.CategoryTranslation),
		mkPost("p2", "t", "a", "Claude", "", "", model.CategoryTranslation),
		mkPost("p3", "t", "a", "GPT-4o", "", "", model.CategoryAudio),
	}

	got := Apply(posts, State{Category: string(model.CategoryTranslation), Model: "GPT-4o"})
	assert.Equal(t, []string{"p1"}, ids(got))

	all := Apply(posts, State{Category: CategoryAll})
	assert.Len(t, all, 3)
}

func TestApply_SortModes(t *testing.T) {
	t.Parallel()

	posts := []model.Post{
		mkPost("old", "t", "a", "m", "", "2023-01-01T00:00:00Z", model.CategoryTranslation, 5),
		mkPost("new", "t", "a", "m", "", "2024-06-01T00:00:00Z", model.CategoryTranslation, 2),
		mkPost("busy", "t", "a", "m", "", "2024-01-01T00:00:00Z", model.CategoryTranslation, 3, 3, 3),
	}

	assert.Equal(t, []string{"new", "busy", "old"}, ids(Apply(posts, State{SortBy: SortDateDesc})))
	assert.Equal(t, []string{"old", "busy", "new"}, ids(Apply(posts, State{SortBy: SortDateAsc})))
	assert.Equal(t, []string{"old", "busy", "new"}, ids(Apply(posts, State{SortBy: SortRatingDesc})))
	assert.Equal(t, "busy", ids(Apply(posts, State{SortBy: SortReviewsDesc}))[0])
}

func TestApply_UnparsableTimestampSortsAsOldest(t *testing.T) {
	t.Parallel()

	posts := []model.Post{
		mkPost("good", "t", "a", "m", "", "2024-01-01T00:00:00Z", model.CategoryTranslation),
		mkPost("bad", "t", "a", "m", "", "вчера", model.CategoryTranslation),
	}

	desc := Apply(posts, State{SortBy: SortDateDesc})
	assert.Equal(t, []string{"good", "bad"}, ids(desc))

	asc := Apply(posts, State{SortBy: SortDateAsc})
	assert.Equal(t, []string{"bad", "good"}, ids(asc))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	posts := []model.Post{
		mkPost("a", "t", "a", "m", "", "2023-01-01T00:00:00Z", model.CategoryTranslation),
		mkPost("b", "t", "a", "m", "", "2024-01-01T00:00:00Z", model.CategoryTranslation),
	}

	_ = Apply(posts, State{SortBy: SortDateDesc})
	require.Equal(t, "a", posts[0].ID)
	require.Equal(t, "b", posts[1].ID)
}
