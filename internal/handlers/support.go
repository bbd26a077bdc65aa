package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/Zzipix/campushub/internal/db"
	"github.com/Zzipix/campushub/internal/models"
	"github.com/Zzipix/campushub/internal/services"
	"github.com/Zzipix/campushub/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SupportHandler struct{}

func NewSupportHandler() *SupportHandler {
	return &SupportHandler{}
}

// Create 支持项目：金额校验通过后在一个事务里原子累加已筹金额并追加
// 支持记录。写失败就明确报错——数据库是唯一的事实来源，没有本地账本。
func (h *SupportHandler) Create(c *gin.Context) {
	projectID := c.Param("id")

	amount := utils.StringToInt(c.PostForm("amount"))
	if err := services.ValidateSupportAmount(amount); err != nil {
		code := "min"
		if err == services.ErrAmountTooLarge {
			code = "max"
		}
		c.Redirect(http.StatusFound, "/p/"+projectID+"?serr="+code+"#support")
		return
	}

	var project models.Project
	if err := db.DB.First(&project, utils.StringToUint(projectID)).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Project not found")
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	var supporterName *string
	if name != "" {
		supporterName = &name
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		log.Printf("[support] begin failed: %v", tx.Error)
		c.Redirect(http.StatusFound, "/p/"+projectID+"?serr=failed#support")
		return
	}

	// 原子累加，避免读-改-写竞争
	if err := tx.Model(&models.Project{}).
		Where("id = ?", project.ID).
		UpdateColumn("collected_amount", gorm.Expr("collected_amount + ?", amount)).Error; err != nil {
		tx.Rollback()
		log.Printf("[support] amount update failed: %v", err)
		c.Redirect(http.StatusFound, "/p/"+projectID+"?serr=failed#support")
		return
	}

	supporter := models.Supporter{
		ProjectID:     project.ID,
		Amount:        amount,
		SupporterName: supporterName,
		IsAnonymous:   name == "",
	}
	if err := tx.Create(&supporter).Error; err != nil {
		tx.Rollback()
		log.Printf("[support] supporter insert failed: %v", err)
		c.Redirect(http.StatusFound, "/p/"+projectID+"?serr=failed#support")
		return
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("[support] commit failed: %v", err)
		c.Redirect(http.StatusFound, "/p/"+projectID+"?serr=failed#support")
		return
	}

	// 已筹金额变了,列表缓存失效
	utils.GetCache().Delete(activeProjectsCacheKey)

	c.Redirect(http.StatusFound, "/p/"+projectID+"?supported="+c.PostForm("amount")+"#support")
}

// ListAll "Show all supporters" 弹层的内容片段
func (h *SupportHandler) ListAll(c *gin.Context) {
	projectID := utils.StringToUint(c.Param("id"))

	var supporters []models.Supporter
	if err := db.DB.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&supporters).Error; err != nil {
		c.String(http.StatusInternalServerError, "Could not load the supporter list")
		return
	}

	c.HTML(http.StatusOK, "project/supporters.html", gin.H{
		"Supporters": supporters,
	})
}
