package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const IdentityKey = "identity"
const FavoritesKey = "favorites_count"

// Identity 会话里保存的作者身份快照，只用于表单自动填充和"我的项目"，
// 不是账号体系
type Identity struct {
	Name    string
	Email   string
	Faculty string
	Guest   bool
}

// LoadIdentity 从会话恢复身份快照和收藏数，写入请求上下文
func LoadIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		identity := Identity{Guest: true}
		if name, ok := session.Get("profile_name").(string); ok && name != "" {
			identity.Name = name
			identity.Guest = false
		}
		if email, ok := session.Get("profile_email").(string); ok {
			identity.Email = email
		}
		if faculty, ok := session.Get("profile_faculty").(string); ok {
			identity.Faculty = faculty
		}
		c.Set(IdentityKey, &identity)

		if favorites, ok := session.Get("favorites").([]string); ok {
			c.Set(FavoritesKey, len(favorites))
		}

		c.Next()
	}
}

// AdminRequired 审核面板的会话门禁
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		isAdmin, ok := session.Get("is_admin").(bool)
		if !ok || !isAdmin {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentIdentity 取出 LoadIdentity 写入的身份快照
func CurrentIdentity(c *gin.Context) *Identity {
	if v, exists := c.Get(IdentityKey); exists {
		if identity, ok := v.(*Identity); ok {
			return identity
		}
	}
	return &Identity{Guest: true}
}
