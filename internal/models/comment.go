package models

import (
	"time"
)

type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProjectID  uint      `gorm:"not null;index" json:"project_id"`
	Project    Project   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"project"`
	ParentID   *uint     `gorm:"index" json:"parent_id"` // Nullable for top-level comments
	Parent     *Comment  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"parent"`
	AuthorName string    `gorm:"not null" json:"author_name"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Likes      int       `gorm:"default:0" json:"likes"`
	CreatedAt  time.Time `json:"created_at"`
	// 只支持一层嵌套：回复的 ParentID 必须指向顶层评论
}

// IsReply 判断是否为回复
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}
