package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Zzipix/campushub/internal/db"
	"github.com/Zzipix/campushub/internal/models"
	"github.com/Zzipix/campushub/internal/services"
	"github.com/Zzipix/campushub/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct{}

func NewFavoriteHandler() *FavoriteHandler {
	return &FavoriteHandler{}
}

// Toggle 切换收藏状态。集合只存在于会话里，立即持久化，
// 响应返回星标的新状态片段。
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	projectID := c.Param("id")

	// 项目必须存在（演示数据集里的 ID 也允许收藏，与数据源解耦）
	if db.DB != nil {
		var project models.Project
		if err := db.DB.First(&project, utils.StringToUint(projectID)).Error; err != nil {
			demo := false
			for _, p := range services.DemoProjects(time.Now()) {
				if fmt.Sprintf("%d", p.ID) == projectID {
					demo = true
					break
				}
			}
			if !demo {
				c.Status(http.StatusNotFound)
				return
			}
		}
	}

	session := sessions.Default(c)
	favorites := sessionStrings(session, "favorites")

	favorites, added := services.ToggleFavorite(favorites, projectID)
	session.Set("favorites", favorites)
	session.Save()

	// 返回更新后的星标片段，前端原地替换
	if added {
		c.String(http.StatusOK, `<i class="fas fa-star favorite-star active" title="Remove from favorites"></i>`)
	} else {
		c.String(http.StatusOK, `<i class="fas fa-star favorite-star" title="Add to favorites"></i>`)
	}
}
