package service

import (
	"sort"

	"gen-archive-go/internal/model"
	"gen-archive-go/internal/store"
)

// PromptSortDefault 保持模板的原始顺序，PromptSortHelpful 按净有用度降序。
const (
	PromptSortDefault = "default"
	PromptSortHelpful = "helpful"
)

// PromptView 是叠加了用户投票后的模板视图。
type PromptView struct {
	model.PromptTemplate
	UserVote string `json:"userVote"`
}

// PromptService 提供提示词模板库：固定模板集叠加本地投票。
type PromptService struct {
	store     *store.RecordStore
	templates []model.PromptTemplate
}

func NewPromptService(recordStore *store.RecordStore) *PromptService {
	return &PromptService{
		store:     recordStore,
		templates: store.PromptTemplates(),
	}
}

// List 返回模板列表，按类别过滤（空串或 All 表示全部），
// 计票时把当前用户的票叠加进基准票数。
func (s *PromptService) List(category, sortBy string) []PromptView {
	votes := s.store.PromptVotes()

	views := make([]PromptView, 0, len(s.templates))
	for _, tpl := range s.templates {
		if category != "" && category != "All" && string(tpl.Category) != category {
			continue
		}
		view := PromptView{PromptTemplate: tpl, UserVote: votes[tpl.ID]}
		switch view.UserVote {
		case model.VoteUp:
			view.Helpful++
		case model.VoteDown:
			view.NotHelpful++
		}
		views = append(views, view)
	}

	if sortBy == PromptSortHelpful {
		// 按净有用度（有用 - 无用）降序，投票已叠加进两个计数
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].Helpful-views[i].NotHelpful > views[j].Helpful-views[j].NotHelpful
		})
	}
	return views
}

// Vote 记录投票。重复投同一方向视为撤销（回到无票），
// 投相反方向则直接改票。
func (s *PromptService) Vote(promptID, direction string) {
	current := s.store.PromptVotes()[promptID]
	if current == direction {
		direction = model.VoteNone
	}
	s.store.SetPromptVote(promptID, direction)
}
