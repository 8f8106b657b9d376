// Package model 定义了画廊的核心数据模型。
package model

import "time"

// CategoryType 是帖子类别的封闭枚举，值即为前端展示的标签。
type CategoryType string

const (
	CategoryTranscription  CategoryType = "Транскрипция"
	CategoryRestoration    CategoryType = "Реставрация фото"
	CategoryAudio          CategoryType = "Расшифровка аудио"
	CategoryTranslation    CategoryType = "Перевод"
	CategoryIdentification CategoryType = "Идентификация лиц"
	CategoryInfographic    CategoryType = "Инфографика/схемы"
)

// DefaultCategory 是导入数据类别不可识别时的兜底类别。
const DefaultCategory = CategoryTranscription

// AllCategories 按展示顺序列出全部类别。排行榜的列顺序也依赖它。
var AllCategories = []CategoryType{
	CategoryTranscription,
	CategoryRestoration,
	CategoryAudio,
	CategoryTranslation,
	CategoryIdentification,
	CategoryInfographic,
}

// CategoryFromLabel 将标签精确匹配到已知类别。
func CategoryFromLabel(label string) (CategoryType, bool) {
	for _, c := range AllCategories {
		if string(c) == label {
			return c, true
		}
	}
	return "", false
}

// AttachmentType 标识附件的媒体种类。
type AttachmentType string

const (
	AttachmentImage    AttachmentType = "image"
	AttachmentAudio    AttachmentType = "audio"
	AttachmentDocument AttachmentType = "document"
)

// Attachment 是帖子输入或输出携带的一个媒体文件引用。
type Attachment struct {
	ID   string         `json:"id"`
	Type AttachmentType `json:"type"`
	URL  string         `json:"url"` // 内联数据或外部链接
	Name string         `json:"name"`
	Size int64          `json:"size,omitempty"`
}

// Review 是附加在帖子上的一条评价。快速评分允许正文为空。
type Review struct {
	ID           string  `json:"id"`
	Author       string  `json:"author"`
	AuthorAvatar string  `json:"authorAvatar,omitempty"`
	Text         string  `json:"text"`
	Rating       float64 `json:"rating"` // 1~5，允许半星
	CreatedAt    string  `json:"createdAt"`
}

// Post 是一条「输入/输出」对比记录，来源为表格导入或本地投稿。
type Post struct {
	ID                string       `json:"id"`
	Title             string       `json:"title"`
	Author            string       `json:"author"`
	Category          CategoryType `json:"category"`
	ModelName         string       `json:"modelName"`
	Prompt            string       `json:"prompt"`
	InputContent      string       `json:"inputContent"`
	InputAttachments  []Attachment `json:"inputAttachments,omitempty"`
	OutputContent     string       `json:"outputContent"`
	OutputAttachments []Attachment `json:"outputAttachments,omitempty"`
	Reviews           []Review     `json:"reviews"`
	CreatedAt         string       `json:"createdAt"` // ISO-8601
}

// CreatedTime 解析创建时间。解析失败按零值时间处理（排序时等同最早）。
func (p Post) CreatedTime() time.Time {
	t, err := time.Parse(time.RFC3339, p.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
