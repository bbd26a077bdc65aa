package handlers

import (
	"net/http"
	"os"
	"strings"

	"github.com/Zzipix/campushub/internal/db"
	"github.com/Zzipix/campushub/internal/models"
	"github.com/Zzipix/campushub/internal/services"
	"github.com/Zzipix/campushub/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// checkPassword 对比管理口令。配置了 ADMIN_PASSWORD_HASH（bcrypt）时
// 优先使用，否则退回明文 ADMIN_PASSWORD 对比（仅限演示部署）。
func checkPassword(password string) bool {
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	expected := os.Getenv("ADMIN_PASSWORD")
	return expected != "" && password == expected
}

func (h *AdminHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "admin/login.html", gin.H{
		"Title": "Moderation",
	})
}

func (h *AdminHandler) Login(c *gin.Context) {
	password := strings.TrimSpace(c.PostForm("password"))

	if !checkPassword(password) {
		Render(c, http.StatusUnauthorized, "admin/login.html", gin.H{
			"Title": "Moderation",
			"Error": "Wrong password",
		})
		return
	}

	session := sessions.Default(c)
	session.Set("is_admin", true)
	session.Save()

	c.Redirect(http.StatusFound, "/admin")
}

func (h *AdminHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete("is_admin")
	session.Save()
	c.Redirect(http.StatusFound, "/")
}

// Panel 审核面板：一次加载全部项目，标签页/搜索/状态筛选都在内存里做
func (h *AdminHandler) Panel(c *gin.Context) {
	var projects []models.Project
	if err := db.DB.Order("created_at DESC").Find(&projects).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load projects")
		return
	}

	tab := c.DefaultQuery("tab", "moderation")
	search := c.Query("q")

	var status models.ProjectStatus
	switch tab {
	case "moderation":
		status = models.StatusModeration
	case "active":
		status = models.StatusActive
	case "rejected":
		status = models.StatusRejected
	case "all":
		status = models.ProjectStatus(c.Query("status"))
	default:
		tab = "moderation"
		status = models.StatusModeration
	}

	Render(c, http.StatusOK, "admin/panel.html", gin.H{
		"Title":    "Moderation",
		"Tab":      tab,
		"Search":   search,
		"Projects": services.FilterModeration(projects, search, status),
		"Stats":    services.SummarizeProjects(projects),
	})
}

// Approve 审核通过（也用于恢复被拒项目），项目上线
func (h *AdminHandler) Approve(c *gin.Context) {
	projectID := utils.StringToUint(c.Param("id"))

	result := db.DB.Model(&models.Project{}).
		Where("id = ?", projectID).
		Updates(map[string]interface{}{
			"status":           models.StatusActive,
			"rejection_reason": "",
		})
	if result.Error != nil || result.RowsAffected == 0 {
		c.Status(http.StatusNotFound)
		return
	}

	utils.GetCache().Delete(activeProjectsCacheKey)

	c.Redirect(http.StatusFound, "/admin?tab="+c.DefaultQuery("tab", "moderation"))
}

// Reject 拒绝项目并记录原因
func (h *AdminHandler) Reject(c *gin.Context) {
	projectID := utils.StringToUint(c.Param("id"))

	reason := strings.TrimSpace(c.PostForm("reason"))
	if reason == "" {
		reason = "The project does not meet the platform rules"
	}

	result := db.DB.Model(&models.Project{}).
		Where("id = ?", projectID).
		Updates(map[string]interface{}{
			"status":           models.StatusRejected,
			"rejection_reason": reason,
		})
	if result.Error != nil || result.RowsAffected == 0 {
		c.Status(http.StatusNotFound)
		return
	}

	utils.GetCache().Delete(activeProjectsCacheKey)

	c.Redirect(http.StatusFound, "/admin?tab="+c.DefaultQuery("tab", "moderation"))
}
