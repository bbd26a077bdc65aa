package services

import (
	"errors"
	"sort"
	"strings"

	"github.com/Zzipix/campushub/internal/models"
)

// CommentsPerPage 顶层评论每页展示数量
const CommentsPerPage = 3

// MinCommentLength 评论内容最短长度
const MinCommentLength = 5

var (
	ErrAuthorRequired  = errors.New("author name is required")
	ErrContentRequired = errors.New("comment content is required")
	ErrContentTooShort = errors.New("comment must be at least 5 characters")
)

// Thread 已分组的评论树：顶层评论（新在前）+ 按父评论分组的回复（旧在前）。
// 分组只在这里做一次，渲染侧拿到的已经是嵌套结构。
type Thread struct {
	TopLevel        []models.Comment
	RepliesByParent map[uint][]models.Comment
}

// BuildThread 把一次查询拿到的扁平评论集合整理成两层结构。
// 回复只挂一层：ParentID 指向不存在的顶层评论的回复会被保留在分组里，
// 但渲染时不可达。
func BuildThread(comments []models.Comment) Thread {
	t := Thread{
		TopLevel:        make([]models.Comment, 0, len(comments)),
		RepliesByParent: make(map[uint][]models.Comment),
	}

	for _, c := range comments {
		if c.ParentID == nil {
			t.TopLevel = append(t.TopLevel, c)
		} else {
			t.RepliesByParent[*c.ParentID] = append(t.RepliesByParent[*c.ParentID], c)
		}
	}

	// 顶层评论新在前
	sort.SliceStable(t.TopLevel, func(i, j int) bool {
		return t.TopLevel[i].CreatedAt.After(t.TopLevel[j].CreatedAt)
	})
	// 回复旧在前
	for id := range t.RepliesByParent {
		replies := t.RepliesByParent[id]
		sort.SliceStable(replies, func(i, j int) bool {
			return replies[i].CreatedAt.Before(replies[j].CreatedAt)
		})
	}

	return t
}

// ReplyCount 某条顶层评论下的回复数
func (t Thread) ReplyCount(parentID uint) int {
	return len(t.RepliesByParent[parentID])
}

// VisiblePage 计算分页展示数量："加载更多"只是增大 page，
// 服务端对同一份内存集合重新切片。
func VisiblePage(total, page int) (visible int, hasMore bool) {
	if page < 1 {
		page = 1
	}
	visible = page * CommentsPerPage
	if visible >= total {
		return total, false
	}
	return visible, true
}

// ValidateComment 顶层评论的本地校验，不通过则不发任何写请求
func ValidateComment(author, content string) error {
	if strings.TrimSpace(author) == "" {
		return ErrAuthorRequired
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrContentRequired
	}
	if len([]rune(content)) < MinCommentLength {
		return ErrContentTooShort
	}
	return nil
}

// ValidateReply 回复只要求内容非空
func ValidateReply(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrContentRequired
	}
	return nil
}
