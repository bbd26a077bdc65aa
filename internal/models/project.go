package models

import (
	"math"
	"time"
)

type ProjectStatus string

const (
	StatusModeration ProjectStatus = "moderation"
	StatusActive     ProjectStatus = "active"
	StatusRejected   ProjectStatus = "rejected"
)

type Project struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	Title           string        `gorm:"not null" json:"title"`
	Description     string        `gorm:"type:text" json:"description"`
	AuthorName      string        `gorm:"not null" json:"author_name"`
	AuthorFaculty   string        `gorm:"index" json:"author_faculty"`
	AuthorEmail     string        `gorm:"index" json:"author_email"`
	TargetAmount    int           `gorm:"not null;default:0" json:"target_amount"`
	CollectedAmount int           `gorm:"not null;default:0" json:"collected_amount"`
	Status          ProjectStatus `gorm:"type:varchar(20);not null;default:'moderation';index" json:"status"`
	RejectionReason string        `gorm:"size:200" json:"rejection_reason"`
	NeedsTeam       bool          `gorm:"default:false" json:"needs_team"`
	ImageURL        string        `json:"image_url"`
	PaymentDetails  string        `gorm:"size:200" json:"payment_details"`
	Deadline        *time.Time    `json:"deadline"` // Nullable, date precision
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	TeamMembers []TeamMember `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"team_members"`
	BudgetItems []BudgetItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"budget_items"`

	// 非数据库字段，查询后填充
	CommentCount int `gorm:"-" json:"comment_count"`
}

// Progress 返回资金进度百分比，0-100 封顶
func (p *Project) Progress() int {
	if p.TargetAmount <= 0 {
		return 0
	}
	progress := int(math.Round(float64(p.CollectedAmount) / float64(p.TargetAmount) * 100))
	if progress > 100 {
		return 100
	}
	if progress < 0 {
		return 0
	}
	return progress
}

// DaysLeftAt 返回距截止日期的剩余天数。当天之后不足 24 小时按 1 天计，
// 已过期返回 0，从不返回负数。无截止日期时返回 DefaultDaysLeft。
func (p *Project) DaysLeftAt(now time.Time) int {
	if p.Deadline == nil {
		return DefaultDaysLeft
	}
	diff := p.Deadline.Sub(now)
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

func (p *Project) DaysLeft() int {
	return p.DaysLeftAt(time.Now())
}

// HasDeadline 用于区分"无期限"项目与真实倒计时
func (p *Project) HasDeadline() bool {
	return p.Deadline != nil
}

// DefaultDaysLeft 无截止日期项目在卡片上展示的占位天数
const DefaultDaysLeft = 30

type TeamMember struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"not null;index" json:"project_id"`
	Name      string    `gorm:"not null" json:"name"`
	Role      string    `json:"role"`
	Faculty   string    `json:"faculty"`
	Contacts  string    `json:"contacts"`
	CreatedAt time.Time `json:"created_at"`
}

type BudgetItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProjectID   uint      `gorm:"not null;index" json:"project_id"`
	Description string    `gorm:"not null" json:"description"`
	Amount      int       `gorm:"not null;default:0" json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}
