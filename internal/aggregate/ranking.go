package aggregate

import (
	"sort"

	"gen-archive-go/internal/model"
)

// ColumnOverall 是跨类别汇总列的键。其余列键即类别标签。
const ColumnOverall = "Overall"

// ColumnModel 是按模型名排序时的排序键。
const ColumnModel = "Model"

// NoData 是单元格没有任何评分时的分数哨兵值，
// 展示层渲染为空而不是 0，排序时恒排在有数据的行之后。
const NoData = float64(-1)

// Cell 累积某个模型在某列上的评分。
type Cell struct {
	Sum   float64 `json:"sum"`
	Count int     `json:"count"`
}

// Score 返回平均分，Count 为 0 时返回 NoData。
func (c Cell) Score() float64 {
	if c.Count == 0 {
		return NoData
	}
	return c.Sum / float64(c.Count)
}

// Matrix 是模型×类别（外加 Overall 列）的评分矩阵。
// Models 保持在合并记录集中首次出现的顺序，作为确定性的并列次序。
type Matrix struct {
	Models []string
	Data   map[string]map[string]Cell
}

// BuildMatrix 扫描帖子集合构建排行矩阵。只要模型至少有一条记录，
// 即使没有任何评价也会出现在矩阵中（所有单元格为 NoData）。
func BuildMatrix(posts []model.Post) Matrix {
	m := Matrix{Data: make(map[string]map[string]Cell)}
	for _, post := range posts {
		name := post.ModelName
		cells, ok := m.Data[name]
		if !ok {
			cells = make(map[string]Cell)
			m.Data[name] = cells
			m.Models = append(m.Models, name)
		}
		for _, review := range post.Reviews {
			cat := cells[string(post.Category)]
			cat.Sum += review.Rating
			cat.Count++
			cells[string(post.Category)] = cat

			overall := cells[ColumnOverall]
			overall.Sum += review.Rating
			overall.Count++
			cells[ColumnOverall] = overall
		}
	}
	return m
}

// Score 返回某模型在某列上的平均分，没有数据返回 NoData。
func (m Matrix) Score(modelName, column string) float64 {
	return m.Data[modelName][column].Score()
}

// SortedModels 按排序键返回模型名列表。key 为 ColumnModel 时按模型名
// 字典序；否则按该列分数排序。无论方向如何，该列为 NoData 的行都排在
// 有数据的行之后；并列保持首次出现的顺序。
func (m Matrix) SortedModels(key string, ascending bool) []string {
	models := make([]string, len(m.Models))
	copy(models, m.Models)

	sort.SliceStable(models, func(i, j int) bool {
		if key == ColumnModel {
			if ascending {
				return models[i] < models[j]
			}
			return models[i] > models[j]
		}

		a := m.Score(models[i], key)
		b := m.Score(models[j], key)
		if a == NoData && b != NoData {
			return false
		}
		if a != NoData && b == NoData {
			return true
		}
		if ascending {
			return a < b
		}
		return a > b
	})
	return models
}
