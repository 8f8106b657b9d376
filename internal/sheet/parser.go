// Package sheet 负责从发布为 CSV 的远程表格导入帖子。
package sheet

import (
	"fmt"
	"strings"
	"time"

	"gen-archive-go/internal/model"
	"gen-archive-go/pkg/log"
)

// 固定列序。表头按位置丢弃，不按名称解析。
const (
	colID = iota
	colTitle
	colAuthor
	colCategory
	colModel
	colPrompt
	colInputContent
	colOutputContent
	colCreatedAt
	colAttachmentURL
	colAttachmentType
)

// 空白字段的兜底值，与前端展示约定一致。
const (
	fallbackTitle  = "Без названия"
	fallbackAuthor = "Аноним"
	fallbackModel  = "Unknown Model"
)

// SplitRows 将 CSV 文本逐字符扫描为行与字段。
// 规则：引号切换「引号内」状态；引号内连续两个引号是转义的字面引号；
// 引号外的逗号结束字段；引号外的 \n 或 \r（\r\n 合并为一个）结束行；
// 文件末尾残留的非空行/字段照常输出。
func SplitRows(text string) [][]string {
	var rows [][]string
	var currentRow []string
	var cell strings.Builder
	insideQuotes := false

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		var next rune
		if i+1 < len(runes) {
			next = runes[i+1]
		}

		switch {
		case ch == '"':
			if insideQuotes && next == '"' {
				cell.WriteRune('"')
				i++ // 跳过转义引号
			} else {
				insideQuotes = !insideQuotes
			}
		case ch == ',' && !insideQuotes:
			currentRow = append(currentRow, cell.String())
			cell.Reset()
		case (ch == '\r' || ch == '\n') && !insideQuotes:
			if ch == '\r' && next == '\n' {
				i++
			}
			if len(currentRow) > 0 || cell.Len() > 0 {
				currentRow = append(currentRow, cell.String())
				rows = append(rows, currentRow)
			}
			currentRow = nil
			cell.Reset()
		default:
			cell.WriteRune(ch)
		}
	}
	if len(currentRow) > 0 || cell.Len() > 0 {
		currentRow = append(currentRow, cell.String())
		rows = append(rows, currentRow)
	}
	return rows
}

// ParsePosts 解析 CSV 文本为帖子列表。首行为表头，被丢弃。
// inputContent 为空的行不构成有效记录，整行丢弃。
func ParsePosts(text string) []model.Post {
	rows := SplitRows(text)
	if len(rows) == 0 {
		return nil
	}

	posts := make([]model.Post, 0, len(rows)-1)
	for index, row := range rows[1:] {
		post := mapRow(row, index)
		// title 有兜底值恒非空，实际只有 inputContent 为空时会丢行
		if post.Title == "" || post.InputContent == "" {
			continue
		}
		posts = append(posts, post)
	}
	return posts
}

// mapRow 将一行原始字段映射为 Post，空白字段按约定兜底。
func mapRow(row []string, index int) model.Post {
	get := func(idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	category := model.DefaultCategory
	if raw := get(colCategory); raw != "" {
		if c, ok := model.CategoryFromLabel(raw); ok {
			category = c
		} else {
			// 未知类别静默替换为默认类别，但留痕便于排查脏数据
			log.Warnf("[sheet] 第 %d 行类别 '%s' 无法识别，已替换为 '%s'", index, raw, model.DefaultCategory)
		}
	}

	var inputAttachments []model.Attachment
	if attURL := get(colAttachmentURL); attURL != "" {
		attType := model.AttachmentType(get(colAttachmentType))
		if attType == "" {
			attType = model.AttachmentDocument
		}
		inputAttachments = append(inputAttachments, model.Attachment{
			ID:   fmt.Sprintf("att-%d", index),
			Type: attType,
			URL:  attURL,
			Name: "Attachment",
		})
	}

	id := get(colID)
	if id == "" {
		id = fmt.Sprintf("sheet-%d", index)
	}
	title := get(colTitle)
	if title == "" {
		title = fallbackTitle
	}
	author := get(colAuthor)
	if author == "" {
		author = fallbackAuthor
	}
	modelName := get(colModel)
	if modelName == "" {
		modelName = fallbackModel
	}
	createdAt := get(colCreatedAt)
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}

	return model.Post{
		ID:                id,
		Title:             title,
		Author:            author,
		Category:          category,
		ModelName:         modelName,
		Prompt:            get(colPrompt),
		InputContent:      get(colInputContent),
		InputAttachments:  inputAttachments,
		OutputContent:     get(colOutputContent),
		OutputAttachments: nil,
		Reviews:           []model.Review{}, // 导入记录不携带内联评价
		CreatedAt:         createdAt,
	}
}
