package services

import (
	"strings"

	"github.com/Zzipix/campushub/internal/models"
)

// ModerationStats 管理面板顶部的汇总数字
type ModerationStats struct {
	Total          int
	Moderation     int
	Active         int
	Rejected       int
	TotalCollected int
}

// SummarizeProjects 对一次性加载的全量项目做统计
func SummarizeProjects(projects []models.Project) ModerationStats {
	var stats ModerationStats
	stats.Total = len(projects)
	for _, p := range projects {
		switch p.Status {
		case models.StatusModeration:
			stats.Moderation++
		case models.StatusActive:
			stats.Active++
		case models.StatusRejected:
			stats.Rejected++
		}
		stats.TotalCollected += p.CollectedAmount
	}
	return stats
}

// FilterModeration 管理面板的内存过滤：标题/作者/院系子串搜索 + 状态筛选
func FilterModeration(projects []models.Project, search string, status models.ProjectStatus) []models.Project {
	filtered := make([]models.Project, 0, len(projects))
	needle := strings.ToLower(strings.TrimSpace(search))
	for _, p := range projects {
		if status != "" && p.Status != status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.AuthorName), needle) &&
			!strings.Contains(strings.ToLower(p.AuthorFaculty), needle) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}
