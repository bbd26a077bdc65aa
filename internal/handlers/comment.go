package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Zzipix/campushub/internal/db"
	"github.com/Zzipix/campushub/internal/middleware"
	"github.com/Zzipix/campushub/internal/models"
	"github.com/Zzipix/campushub/internal/services"
	"github.com/Zzipix/campushub/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

// Create 发布顶层评论。校验不过时带错误码跳回详情页，不发任何写请求。
func (h *CommentHandler) Create(c *gin.Context) {
	projectID := c.Param("id")

	var project models.Project
	if err := db.DB.First(&project, utils.StringToUint(projectID)).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Project not found")
		return
	}

	author := strings.TrimSpace(c.PostForm("author"))
	content := strings.TrimSpace(c.PostForm("content"))

	if err := services.ValidateComment(author, content); err != nil {
		c.Redirect(http.StatusFound, "/p/"+projectID+"?cerr="+commentErrorCode(err)+"#comments")
		return
	}

	comment := models.Comment{
		ProjectID:  project.ID,
		AuthorName: author,
		Content:    content,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		c.Redirect(http.StatusFound, "/p/"+projectID+"?cerr=failed#comments")
		return
	}

	// 记住评论者姓名，下次自动填充
	session := sessions.Default(c)
	session.Set("profile_name", author)
	session.Save()

	c.Redirect(http.StatusFound, "/p/"+projectID+"#comments")
}

func commentErrorCode(err error) string {
	switch err {
	case services.ErrAuthorRequired:
		return "author"
	case services.ErrContentRequired:
		return "empty"
	case services.ErrContentTooShort:
		return "short"
	}
	return "failed"
}

// Reply 发布回复：父评论必须是同一项目下的顶层评论（只允许一层嵌套）
func (h *CommentHandler) Reply(c *gin.Context) {
	projectID := c.Param("id")
	parentID := utils.StringToUint(c.Param("cid"))

	content := strings.TrimSpace(c.PostForm("content"))
	if err := services.ValidateReply(content); err != nil {
		c.Redirect(http.StatusFound, "/p/"+projectID+"?cerr=empty#comment-"+c.Param("cid"))
		return
	}

	var parent models.Comment
	if err := db.DB.First(&parent, parentID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Comment not found")
		return
	}
	if parent.IsReply() || parent.ProjectID != utils.StringToUint(projectID) {
		c.Status(http.StatusBadRequest)
		return
	}

	author := strings.TrimSpace(c.PostForm("author"))
	if author == "" {
		author = middleware.CurrentIdentity(c).Name
	}
	if author == "" {
		author = "Anonymous"
	}

	reply := models.Comment{
		ProjectID:  parent.ProjectID,
		ParentID:   &parent.ID,
		AuthorName: author,
		Content:    content,
	}
	if err := db.DB.Create(&reply).Error; err != nil {
		c.Redirect(http.StatusFound, "/p/"+projectID+"?cerr=failed#comment-"+c.Param("cid"))
		return
	}

	c.Redirect(http.StatusFound, "/p/"+projectID+"?replies="+c.Param("cid")+"#comment-"+c.Param("cid"))
}

// ToggleLike 点赞/取消点赞，按会话去重：同一浏览器只能给一条评论 +1。
// 返回最新计数，前端原地替换。
func (h *CommentHandler) ToggleLike(c *gin.Context) {
	commentID := c.Param("cid")

	var comment models.Comment
	if err := db.DB.First(&comment, utils.StringToUint(commentID)).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	session := sessions.Default(c)
	liked := sessionStrings(session, "liked_comments")

	var expr string
	if services.HasFavorite(liked, commentID) {
		// 计数不会降到 0 以下
		expr = "GREATEST(likes - 1, 0)"
	} else {
		expr = "likes + 1"
	}

	if err := db.DB.Model(&models.Comment{}).
		Where("id = ?", comment.ID).
		UpdateColumn("likes", gorm.Expr(expr)).Error; err != nil {
		// 写失败时不动会话状态，客户端计数保持原值
		c.String(http.StatusOK, fmt.Sprintf("%d", comment.Likes))
		return
	}

	liked, nowLiked := services.ToggleFavorite(liked, commentID)
	session.Set("liked_comments", liked)
	session.Save()

	// 更新已提交，重读失败时按切换方向推算新计数
	count := likeCountAfterToggle(comment.Likes, nowLiked)
	if err := db.DB.First(&comment, comment.ID).Error; err == nil {
		count = comment.Likes
	}

	if nowLiked {
		c.Header("X-Liked", "1")
	}
	c.String(http.StatusOK, fmt.Sprintf("%d", count))
}

// likeCountAfterToggle 切换后的预期计数，0 以下不减
func likeCountAfterToggle(current int, nowLiked bool) int {
	if nowLiked {
		return current + 1
	}
	if current > 0 {
		return current - 1
	}
	return 0
}
