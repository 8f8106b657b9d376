package model

// ShowcaseItem 是项目橱窗里的一个独立条目，不参与评分聚合。
type ShowcaseItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	ImageURL    string   `json:"imageUrl"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"createdAt"`
}

// PromptTemplate 是提示词库中的一个模板。
type PromptTemplate struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Category   CategoryType `json:"category"`
	Text       string       `json:"text"`
	Difficulty string       `json:"difficulty"` // Новичок / Продвинутый / Эксперт
	Helpful    int          `json:"helpful"`
	NotHelpful int          `json:"notHelpful"`
}

// 提示词投票取值。空串表示未投票。
const (
	VoteUp   = "up"
	VoteDown = "down"
	VoteNone = ""
)
