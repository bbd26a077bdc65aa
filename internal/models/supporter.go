package models

import (
	"time"
)

// Supporter 支持记录 - 只增不改不删
type Supporter struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ProjectID     uint      `gorm:"not null;index" json:"project_id"`
	Project       Project   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"project"`
	Amount        int       `gorm:"not null" json:"amount"`
	SupporterName *string   `json:"supporter_name"` // Nullable for anonymous supporters
	IsAnonymous   bool      `gorm:"default:false" json:"is_anonymous"`
	CreatedAt     time.Time `json:"created_at"`
}

// DisplayName 匿名或无名时展示 "Anonymous"
func (s *Supporter) DisplayName() string {
	if s.IsAnonymous || s.SupporterName == nil || *s.SupporterName == "" {
		return "Anonymous"
	}
	return *s.SupporterName
}
