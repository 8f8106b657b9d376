package aggregate

import (
	"testing"

	"gen-archive-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(modelName string, category model.CategoryType, ratings ...float64) model.Post {
	reviews := make([]model.Review, len(ratings))
	for i, r := range ratings {
		reviews[i] = model.Review{Rating: r}
	}
	return model.Post{
		ID:        modelName + "-" + string(category),
		ModelName: modelName,
		Category:  category,
		Reviews:   reviews,
	}
}

func TestAverageRating(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, AverageRating(model.Post{}))
	assert.InDelta(t, 4.25, AverageRating(post("m", model.CategoryTranslation, 4, 4.5)), 1e-9)
}

func TestBuildMatrix_Empty(t *testing.T) {
	t.Parallel()

	m := BuildMatrix(nil)
	assert.Empty(t, m.Models)
}

func TestBuildMatrix_AveragesPerCategoryAndOverall(t *testing.T) {
	t.Parallel()

	posts := []model.Post{
		post("GPT-4o", model.CategoryTranscription, 5, 5),
		post("GPT-4o", model.CategoryTranslation, 1),
	}
	m := BuildMatrix(posts)

	require.Equal(t, []string{"GPT-4o"}, m.Models)
	assert.InDelta(t, 11.0/3.0, m.Score("GPT-4o", ColumnOverall), 1e-9)
	assert.InDelta(t, 5.0, m.Score("GPT-4o", string(model.CategoryTranscription)), 1e-9)
	assert.InDelta(t, 1.0, m.Score("GPT-4o", string(model.CategoryTranslation)), 1e-9)
}

func TestBuildMatrix_ModelWithoutReviewsIsPresent(t *testing.T) {
	t.Parallel()

	m := BuildMatrix([]model.Post{post("Claude", model.CategoryAudio)})

	require.Equal(t, []string{"Claude"}, m.Models)
	assert.Equal(t, NoData, m.Score("Claude", ColumnOverall))
	assert.Equal(t, NoData, m.Score("Claude", string(model.CategoryAudio)))
}

func TestSortedModels_NoDataAlwaysLast(t *testing.T) {
	t.Parallel()

	posts := []model.Post{
		post("A", model.CategoryTranscription, 2),
		post("B", model.CategoryTranscription), // 无评分
		post("C", model.CategoryTranscription, 4),
	}
	m := BuildMatrix(posts)

	assert.Equal(t, []string{"C", "A", "B"}, m.SortedModels(ColumnOverall, false))
	// 升序时无数据行仍然排在最后
	assert.Equal(t, []string{"A", "C", "B"}, m.SortedModels(ColumnOverall, true))
}

func TestSortedModels_ByName(t *testing.T) {
	t.Parallel()

	posts := []model.Post{
		post("Claude", model.CategoryTranscription, 3),
		post("Gemini", model.CategoryTranscription),
		post("GPT-4o", model.CategoryTranscription, 5),
	}
	m := BuildMatrix(posts)

	assert.Equal(t, []string{"Claude", "GPT-4o", "Gemini"}, m.SortedModels(ColumnModel, true))
	assert.Equal(t, []string{"Gemini", "GPT-4o", "Claude"}, m.SortedModels(ColumnModel, false))
}

func TestSortedModels_TiesKeepFirstSeenOrder(t *testing.T) {
	t.Parallel()

	posts := []model.Post{
		post("B", model.CategoryTranscription, 3),
		post("A", model.CategoryTranscription, 3),
	}
	m := BuildMatrix(posts)

	assert.Equal(t, []string{"B", "A"}, m.SortedModels(ColumnOverall, false))
}
