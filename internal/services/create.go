package services

import (
	"errors"
	"strings"
)

// 项目创建表单的校验规则，和前端向导逐步校验保持一致
const (
	MinTitleLength       = 5
	MinDescriptionLength = 100
	MinTargetAmount      = 1000
)

var (
	ErrTitleTooShort       = errors.New("project title must be at least 5 characters")
	ErrDescriptionTooShort = errors.New("project description must be at least 100 characters")
	ErrAuthorNameRequired  = errors.New("author name is required")
	ErrFacultyRequired     = errors.New("faculty is required")
	ErrEmailInvalid        = errors.New("a valid email address is required")
	ErrTargetTooSmall      = errors.New("target amount must be at least 1000")
)

// ProjectInput 创建向导收集到的字段
type ProjectInput struct {
	Title         string
	Description   string
	AuthorName    string
	AuthorFaculty string
	AuthorEmail   string
	ImageURL      string
	NeedsTeam     bool
	TargetAmount  int
}

// ValidateProjectInput 提交前的本地校验，返回第一个不满足的规则
func ValidateProjectInput(in ProjectInput) error {
	if len([]rune(strings.TrimSpace(in.Title))) < MinTitleLength {
		return ErrTitleTooShort
	}
	if len([]rune(strings.TrimSpace(in.Description))) < MinDescriptionLength {
		return ErrDescriptionTooShort
	}
	if strings.TrimSpace(in.AuthorName) == "" {
		return ErrAuthorNameRequired
	}
	if strings.TrimSpace(in.AuthorFaculty) == "" {
		return ErrFacultyRequired
	}
	if !strings.Contains(in.AuthorEmail, "@") {
		return ErrEmailInvalid
	}
	if in.TargetAmount < MinTargetAmount {
		return ErrTargetTooSmall
	}
	return nil
}

// Faculties 创建表单里的院系选项
var Faculties = []string{
	"Computer Science",
	"Design",
	"Economics",
	"Engineering",
	"Humanities",
	"Law",
	"Medicine",
	"Natural Sciences",
}
