package service

import (
	"testing"

	"gen-archive-go/internal/model"
	"gen-archive-go/internal/repository"
	"gen-archive-go/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPromptService(t *testing.T) *PromptService {
	t.Helper()
	repo, err := repository.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewPromptService(store.NewRecordStore(repo, true))
}

func templateByID(views []PromptView, id string) (PromptView, bool) {
	for _, v := range views {
		if v.ID == id {
			return v, true
		}
	}
	return PromptView{}, false
}

func TestPromptList_CategoryFilter(t *testing.T) {
	t.Parallel()

	s := newTestPromptService(t)

	all := s.List("", PromptSortDefault)
	require.NotEmpty(t, all)
	assert.Len(t, s.List("All", PromptSortDefault), len(all))

	filtered := s.List(string(model.CategoryTranscription), PromptSortDefault)
	require.NotEmpty(t, filtered)
	for _, v := range filtered {
		assert.Equal(t, model.CategoryTranscription, v.Category)
	}
	assert.Less(t, len(filtered), len(all))
}

func TestPromptVote_AddsToBaseline(t *testing.T) {
	t.Parallel()

	s := newTestPromptService(t)
	id := store.PromptTemplates()[0].ID
	baseline := store.PromptTemplates()[0].Helpful

	s.Vote(id, model.VoteUp)

	view, ok := templateByID(s.List("", PromptSortDefault), id)
	require.True(t, ok)
	assert.Equal(t, baseline+1, view.Helpful)
	assert.Equal(t, model.VoteUp, view.UserVote)
}

func TestPromptVote_SameDirectionToggles(t *testing.T) {
	t.Parallel()

	s := newTestPromptService(t)
	id := store.PromptTemplates()[0].ID
	baseline := store.PromptTemplates()[0].Helpful

	s.Vote(id, model.VoteUp)
	s.Vote(id, model.VoteUp) // 同向重复投票 = 撤销

	view, ok := templateByID(s.List("", PromptSortDefault), id)
	require.True(t, ok)
	assert.Equal(t, baseline, view.Helpful)
	assert.Equal(t, model.VoteNone, view.UserVote)
}

func TestPromptVote_OppositeDirectionSwitches(t *testing.T) {
	t.Parallel()

	s := newTestPromptService(t)
	tpl := store.PromptTemplates()[0]

	s.Vote(tpl.ID, model.VoteUp)
	s.Vote(tpl.ID, model.VoteDown)

	view, ok := templateByID(s.List("", PromptSortDefault), tpl.ID)
	require.True(t, ok)
	assert.Equal(t, tpl.Helpful, view.Helpful)
	assert.Equal(t, tpl.NotHelpful+1, view.NotHelpful)
	assert.Equal(t, model.VoteDown, view.UserVote)
}

func TestPromptList_SortByHelpful(t *testing.T) {
	t.Parallel()

	s := newTestPromptService(t)
	views := s.List("", PromptSortHelpful)

	require.NotEmpty(t, views)
	for i := 1; i < len(views); i++ {
		assert.GreaterOrEqual(t,
			views[i-1].Helpful-views[i-1].NotHelpful,
			views[i].Helpful-views[i].NotHelpful)
	}
}

func TestPromptList_SortUsesNetScoreNotRawHelpful(t *testing.T) {
	t.Parallel()

	repo, err := repository.NewFileStore(t.TempDir())
	require.NoError(t, err)
	s := &PromptService{
		store: store.NewRecordStore(repo, true),
		templates: []model.PromptTemplate{
			// 只看有用票时 a 在前；按净有用度 b 在前
			{ID: "a", Category: model.CategoryTranscription, Helpful: 10, NotHelpful: 9},
			{ID: "b", Category: model.CategoryTranscription, Helpful: 9, NotHelpful: 0},
		},
	}

	views := s.List("", PromptSortHelpful)
	require.Len(t, views, 2)
	assert.Equal(t, "b", views[0].ID)
	assert.Equal(t, "a", views[1].ID)
}
