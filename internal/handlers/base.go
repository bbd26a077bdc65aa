package handlers

import (
	"github.com/Zzipix/campushub/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Render helper to inject common variables like the saved identity
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	obj["Identity"] = middleware.CurrentIdentity(c)
	if count, ok := c.Get(middleware.FavoritesKey); ok {
		obj["FavoriteCount"] = count.(int)
	} else {
		obj["FavoriteCount"] = 0
	}

	session := sessions.Default(c)
	if isAdmin, ok := session.Get("is_admin").(bool); ok {
		obj["IsAdmin"] = isAdmin
	}

	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// Error helper
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}

// sessionStrings 读取会话里的字符串列表（收藏、已点赞评论）
func sessionStrings(session sessions.Session, key string) []string {
	if values, ok := session.Get(key).([]string); ok {
		return values
	}
	return nil
}
