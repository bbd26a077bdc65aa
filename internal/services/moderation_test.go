package services

import (
	"testing"

	"github.com/Zzipix/campushub/internal/models"
)

func moderationProjects() []models.Project {
	return []models.Project{
		{ID: 1, Title: "Robot lab", AuthorName: "Alex", AuthorFaculty: "Engineering", Status: models.StatusActive, CollectedAmount: 5000},
		{ID: 2, Title: "Poetry night", AuthorName: "Maria", AuthorFaculty: "Humanities", Status: models.StatusModeration, CollectedAmount: 0},
		{ID: 3, Title: "Chess club", AuthorName: "Dmitry", AuthorFaculty: "Economics", Status: models.StatusRejected, CollectedAmount: 300},
		{ID: 4, Title: "Robot olympiad", AuthorName: "Alex", AuthorFaculty: "Engineering", Status: models.StatusModeration, CollectedAmount: 0},
	}
}

func TestSummarizeProjects(t *testing.T) {
	stats := SummarizeProjects(moderationProjects())
	if stats.Total != 4 {
		t.Errorf("Total = %d, want 4", stats.Total)
	}
	if stats.Moderation != 2 || stats.Active != 1 || stats.Rejected != 1 {
		t.Errorf("status counts = %d/%d/%d, want 2/1/1", stats.Moderation, stats.Active, stats.Rejected)
	}
	if stats.TotalCollected != 5300 {
		t.Errorf("TotalCollected = %d, want 5300", stats.TotalCollected)
	}
}

func TestFilterModeration(t *testing.T) {
	projects := moderationProjects()

	// 按状态筛选
	got := FilterModeration(projects, "", models.StatusModeration)
	if len(got) != 2 {
		t.Errorf("moderation tab returned %d projects, want 2", len(got))
	}

	// 标题/作者/院系子串搜索，大小写不敏感
	got = FilterModeration(projects, "ROBOT", "")
	if len(got) != 2 {
		t.Errorf("title search returned %d projects, want 2", len(got))
	}
	got = FilterModeration(projects, "maria", "")
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("author search returned %v", got)
	}

	// 搜索和状态同时生效
	got = FilterModeration(projects, "robot", models.StatusActive)
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("combined filter returned %v", got)
	}
}
