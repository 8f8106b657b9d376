package viewstate

import (
	"fmt"
	"testing"
	"time"

	"gen-archive-go/internal/model"
	"gen-archive-go/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedPosts 生成 n 条帖子，id 为 p0..p(n-1)，时间递减保证默认排序
// 下顺序稳定。
func fixedPosts(n int) []model.Post {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	posts := make([]model.Post, n)
	for i := 0; i < n; i++ {
		posts[i] = model.Post{
			ID:        fmt.Sprintf("p%d", i),
			Title:     fmt.Sprintf("Запись %d", i),
			Category:  model.CategoryTranslation,
			CreatedAt: base.Add(-time.Duration(i) * time.Hour).Format(time.RFC3339),
		}
	}
	return posts
}

func newTestController(n int) *Controller {
	posts := fixedPosts(n)
	return NewController(func() []model.Post { return posts })
}

func TestView_InitialWindowIsOnePage(t *testing.T) {
	t.Parallel()

	c := newTestController(12)
	view := c.View()

	assert.Len(t, view.Posts, PageSize)
	assert.Equal(t, 12, view.Total)
	assert.True(t, view.HasMore)
	assert.Equal(t, "p0", view.Posts[0].ID)
}

func TestLoadMore_GrowsWindowUntilExhausted(t *testing.T) {
	t.Parallel()

	c := newTestController(12)
	c.LoadMore()
	view := c.View()
	assert.Len(t, view.Posts, 10)
	assert.True(t, view.HasMore)

	c.LoadMore()
	view = c.View()
	assert.Len(t, view.Posts, 12)
	assert.False(t, view.HasMore)
}

func TestSetState_ResetsWindow(t *testing.T) {
	t.Parallel()

	c := newTestController(12)
	c.LoadMore()
	require.Len(t, c.View().Posts, 10)

	c.SetState(query.State{Search: "Запись"})
	assert.Len(t, c.View().Posts, PageSize)
}

func TestReveal_GrowsWindowToCoverPosition(t *testing.T) {
	t.Parallel()

	c := newTestController(20)

	// p12 位于位置 12，需要窗口扩到 15
	pos, ok := c.Reveal("p12")
	require.True(t, ok)
	assert.Equal(t, 12, pos)
	assert.Len(t, c.View().Posts, 15)
}

func TestReveal_NeverShrinksWindow(t *testing.T) {
	t.Parallel()

	c := newTestController(20)
	c.LoadMore()
	c.LoadMore()
	c.LoadMore() // 窗口 20

	pos, ok := c.Reveal("p2")
	require.True(t, ok)
	assert.Equal(t, 2, pos)
	assert.Len(t, c.View().Posts, 20)
}

func TestReveal_UnknownIDIsNoOp(t *testing.T) {
	t.Parallel()

	c := newTestController(12)
	_, ok := c.Reveal("нет-такого")
	assert.False(t, ok)
	assert.Len(t, c.View().Posts, PageSize)
}

func TestReveal_FilteredOutIDIsNoOp(t *testing.T) {
	t.Parallel()

	c := newTestController(12)
	c.SetState(query.State{Category: string(model.CategoryAudio)})

	// p7 存在于记录集但被过滤掉
	_, ok := c.Reveal("p7")
	assert.False(t, ok)
}
