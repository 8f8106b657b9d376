// Package viewstate 维护信息流视图的可变状态：查询条件与分页游标，
// 并在其上派生可见窗口与深链定位。
package viewstate

import (
	"sync"

	"gen-archive-go/internal/model"
	"gen-archive-go/internal/query"
)

// PageSize 是信息流一页的条数。
const PageSize = 5

// FeedView 是暴露给展示层的视图模型。
type FeedView struct {
	Posts   []model.Post `json:"posts"`   // 可见窗口内的帖子
	Total   int          `json:"total"`   // 过滤后的总条数
	Visible int          `json:"visible"` // 当前窗口大小
	HasMore bool         `json:"hasMore"`
	State   query.State  `json:"state"`
}

// Controller 持有查询状态和分页游标。source 每次调用返回最新的
// 含评价合并记录集，派生视图按需全量重算。
type Controller struct {
	mu      sync.Mutex
	source  func() []model.Post
	state   query.State
	visible int
}

// NewController 创建控制器，窗口初始为一页。
func NewController(source func() []model.Post) *Controller {
	return &Controller{
		source:  source,
		state:   query.State{}.Normalize(),
		visible: PageSize,
	}
}

// SetState 替换查询条件。任何条件变化都会把窗口重置回一页。
func (c *Controller) SetState(state query.State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state.Normalize()
	c.visible = PageSize
}

// State 返回当前查询条件。
func (c *Controller) State() query.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LoadMore 把可见窗口扩大一页。
func (c *Controller) LoadMore() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible += PageSize
}

// Reveal 处理指向帖子的深链：若该帖子存在于当前过滤排序结果的第 P 位
// （从 0 数），把窗口扩大到不小于覆盖 P 的最小整页倍数。帖子不在结果
// 集中时不做任何事。返回帖子位置和是否命中。
func (c *Controller) Reveal(postID string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	processed := query.Apply(c.source(), c.state)
	for i, p := range processed {
		if p.ID == postID {
			needed := ((i / PageSize) + 1) * PageSize
			if needed > c.visible {
				c.visible = needed
			}
			return i, true
		}
	}
	return 0, false
}

// View 计算当前视图模型。
func (c *Controller) View() FeedView {
	c.mu.Lock()
	defer c.mu.Unlock()

	processed := query.Apply(c.source(), c.state)
	visible := c.visible
	if visible > len(processed) {
		visible = len(processed)
	}

	return FeedView{
		Posts:   processed[:visible],
		Total:   len(processed),
		Visible: c.visible,
		HasMore: c.visible < len(processed),
		State:   c.state,
	}
}
