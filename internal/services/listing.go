package services

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Zzipix/campushub/internal/models"
)

// 列表过滤器
const (
	FilterAll       = "all"
	FilterTeam      = "team"
	FilterEnding    = "ending"
	FilterFavorites = "favorites"
)

// 排序方式
const (
	SortNewest      = "newest"
	SortPopular     = "popular"
	SortEnding      = "ending"
	SortMostFunded  = "most-funded"
	SortLeastFunded = "least-funded"
)

// EndingSoonDays "即将结束"过滤窗口：剩余天数在 (0, 7] 之内
const EndingSoonDays = 7

// ListQuery 列表页的显式视图状态，从请求参数解析而来
type ListQuery struct {
	Filter  string // all/team/ending/favorites
	Faculty string // 按院系子串过滤，空为不过滤
	Sort    string // 排序方式，默认 newest
	Search  string // 标题/描述子串搜索
}

// NormalizeListQuery 填充默认值并丢弃未知取值
func NormalizeListQuery(q ListQuery) ListQuery {
	switch q.Filter {
	case FilterAll, FilterTeam, FilterEnding, FilterFavorites:
	default:
		q.Filter = FilterAll
	}
	switch q.Sort {
	case SortNewest, SortPopular, SortEnding, SortMostFunded, SortLeastFunded:
	default:
		q.Sort = SortNewest
	}
	return q
}

// ApplyFiltersAndSort 纯函数：对内存中的项目集合做过滤和排序，不修改入参。
// favorites 以字符串 ID 为键，容忍数字/字符串混用。
func ApplyFiltersAndSort(projects []models.Project, favorites map[string]bool, q ListQuery, now time.Time) []models.Project {
	q = NormalizeListQuery(q)

	filtered := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		switch q.Filter {
		case FilterTeam:
			if !p.NeedsTeam {
				continue
			}
		case FilterEnding:
			if p.Deadline == nil {
				continue
			}
			days := p.DaysLeftAt(now)
			if days <= 0 || days > EndingSoonDays {
				continue
			}
		case FilterFavorites:
			if !favorites[strconv.FormatUint(uint64(p.ID), 10)] {
				continue
			}
		}

		if q.Faculty != "" && !strings.Contains(strings.ToLower(p.AuthorFaculty), strings.ToLower(q.Faculty)) {
			continue
		}

		if q.Search != "" {
			needle := strings.ToLower(q.Search)
			if !strings.Contains(strings.ToLower(p.Title), needle) &&
				!strings.Contains(strings.ToLower(p.Description), needle) {
				continue
			}
		}

		filtered = append(filtered, p)
	}

	// 稳定排序，平局保持原有顺序
	switch q.Sort {
	case SortPopular, SortMostFunded:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CollectedAmount > filtered[j].CollectedAmount
		})
	case SortLeastFunded:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CollectedAmount < filtered[j].CollectedAmount
		})
	case SortEnding:
		// 无截止日期的排在最后
		sort.SliceStable(filtered, func(i, j int) bool {
			return endingKey(&filtered[i], now) < endingKey(&filtered[j], now)
		})
	default: // SortNewest
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	}

	return filtered
}

func endingKey(p *models.Project, now time.Time) int {
	if p.Deadline == nil {
		return int(^uint(0) >> 1) // max int
	}
	return p.DaysLeftAt(now)
}

// DemoProjects 后端不可用时的演示数据集，保证列表页不会因故障而空白
func DemoProjects(now time.Time) []models.Project {
	deadline := func(days int) *time.Time {
		d := now.AddDate(0, 0, days)
		return &d
	}
	return []models.Project{
		{
			ID:              1,
			Title:           "StudySwap: textbook exchange",
			Description:     "A mobile app for swapping textbooks between students of our college. Save money and save paper!",
			AuthorName:      "Alex Petrov",
			AuthorFaculty:   "Computer Science",
			TargetAmount:    25000,
			CollectedAmount: 12500,
			Status:          models.StatusActive,
			ImageURL:        "https://images.unsplash.com/photo-1589998059171-988d887df646?w=400",
			NeedsTeam:       true,
			Deadline:        deadline(45),
			CreatedAt:       now.AddDate(0, 0, -14),
		},
		{
			ID:              2,
			Title:           "Spring on Campus art festival",
			Description:     "A spring festival with an exhibition of student works, performances and live music.",
			AuthorName:      "Maria Sokolova",
			AuthorFaculty:   "Design",
			TargetAmount:    50000,
			CollectedAmount: 32500,
			Status:          models.StatusActive,
			ImageURL:        "https://images.unsplash.com/photo-1514525253161-7a46d19cd819?w=400",
			NeedsTeam:       true,
			Deadline:        deadline(5),
			CreatedAt:       now.AddDate(0, 0, -19),
		},
		{
			ID:              3,
			Title:           "Smart campus parking",
			Description:     "A sensor network tracking free parking spots on campus, with a companion mobile app.",
			AuthorName:      "Dmitry Ivanov",
			AuthorFaculty:   "Economics",
			TargetAmount:    35000,
			CollectedAmount: 8000,
			Status:          models.StatusActive,
			ImageURL:        "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400",
			NeedsTeam:       false,
			Deadline:        deadline(80),
			CreatedAt:       now.AddDate(0, 0, -24),
		},
	}
}
