// Package aggregate 实现评分聚合：平均分、模型×类别排行矩阵与搜索建议。
package aggregate

import "gen-archive-go/internal/model"

// AverageRating 计算帖子的平均评分。没有评价时返回 0，含义是
// 「未评分」，与真实低分在排序和展示上必须区分。
func AverageRating(post model.Post) float64 {
	if len(post.Reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range post.Reviews {
		sum += r.Rating
	}
	return sum / float64(len(post.Reviews))
}
