package handlers

import (
	"net/http"
	"strings"

	"github.com/Zzipix/campushub/internal/db"
	"github.com/Zzipix/campushub/internal/middleware"
	"github.com/Zzipix/campushub/internal/models"
	"github.com/Zzipix/campushub/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// Show 个人页：身份快照 + 以作者邮箱关联的"我的项目" + 汇总数字。
// 没有账号体系，快照就是全部的身份。
func (h *ProfileHandler) Show(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	var projects []models.Project
	if identity.Email != "" {
		db.DB.Preload("TeamMembers").
			Where("author_email = ?", identity.Email).
			Order("created_at DESC").
			Find(&projects)
	}

	collected := 0
	for _, p := range projects {
		collected += p.CollectedAmount
	}

	session := sessions.Default(c)
	favorites := sessionStrings(session, "favorites")

	Render(c, http.StatusOK, "profile/show.html", gin.H{
		"Title":          "My profile",
		"Projects":       projects,
		"ProjectCount":   len(projects),
		"TotalCollected": collected,
		"FavoriteSet":    services.FavoriteSet(favorites),
	})
}

// Update 更新身份快照，只写会话
func (h *ProfileHandler) Update(c *gin.Context) {
	session := sessions.Default(c)

	if name := strings.TrimSpace(c.PostForm("name")); name != "" {
		session.Set("profile_name", name)
	}
	if email := strings.TrimSpace(c.PostForm("email")); email != "" {
		session.Set("profile_email", email)
	}
	if faculty := strings.TrimSpace(c.PostForm("faculty")); faculty != "" {
		session.Set("profile_faculty", faculty)
	}
	session.Save()

	c.Redirect(http.StatusFound, "/profile")
}

// ClearFavorites 清空收藏集合（个人页上的显式操作）
func (h *ProfileHandler) ClearFavorites(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete("favorites")
	session.Save()
	c.Redirect(http.StatusFound, "/profile")
}
