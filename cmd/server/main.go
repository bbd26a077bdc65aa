package main

import (
	"encoding/gob"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/Zzipix/campushub/internal/db"
	"github.com/Zzipix/campushub/internal/handlers"
	"github.com/Zzipix/campushub/internal/middleware"
	"github.com/Zzipix/campushub/internal/utils"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions（收藏集合和已点赞评论以 []string 存在会话里）
	gob.Register([]string{})
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("campushub_session", store))

	// Load Templates using Multitemplate to avoid collision and allow handler names
	r.HTMLRender = loadTemplates("./web/templates")

	// Static Assets
	r.Static("/static", "./web/static")

	// Middleware
	r.Use(middleware.LoadIdentity())

	// Handlers
	projectHandler := handlers.NewProjectHandler()
	commentHandler := handlers.NewCommentHandler()
	supportHandler := handlers.NewSupportHandler()
	favoriteHandler := handlers.NewFavoriteHandler()
	profileHandler := handlers.NewProfileHandler()
	adminHandler := handlers.NewAdminHandler()

	// Public Routes
	r.GET("/", projectHandler.List)
	r.GET("/p/:id", projectHandler.Detail)
	r.GET("/p/:id/supporters", supportHandler.ListAll)
	r.GET("/create", projectHandler.ShowCreate)
	r.POST("/create", projectHandler.Create)

	r.POST("/p/:id/comment", commentHandler.Create)
	r.POST("/p/:id/comment/:cid/reply", commentHandler.Reply)
	r.POST("/comment/:cid/like", commentHandler.ToggleLike)

	r.POST("/p/:id/support", supportHandler.Create)
	r.POST("/favorite/:id", favoriteHandler.Toggle)

	r.GET("/profile", profileHandler.Show)
	r.POST("/profile", profileHandler.Update)
	r.POST("/profile/favorites/clear", profileHandler.ClearFavorites)

	// Moderation Routes
	r.GET("/admin/login", adminHandler.ShowLogin)
	r.POST("/admin/login", adminHandler.Login)
	r.GET("/admin/logout", adminHandler.Logout)

	admin := r.Group("/admin")
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("", adminHandler.Panel)
		admin.POST("/project/:id/approve", adminHandler.Approve)
		admin.POST("/project/:id/reject", adminHandler.Reject)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("CampusHub server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	includes, err := filepath.Glob(templatesDir + "/includes/*.html")
	if err != nil {
		panic(err)
	}

	components, err := filepath.Glob(templatesDir + "/components/*.html")
	if err != nil {
		panic(err)
	}

	// Helper to assemble files
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, includes...)
		files = append(files, components...)
		files = append(files, view)
		return files
	}

	// FuncMap
	funcMap := template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, fmt.Errorf("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"add": func(a, b int) int {
			return a + b
		},
		"money": func(amount int) string {
			return utils.FormatAmount(amount)
		},
		"timeAgo": func(t interface{}) string {
			var timeVal time.Time
			switch v := t.(type) {
			case time.Time:
				timeVal = v
			default:
				return ""
			}

			duration := time.Since(timeVal)
			seconds := int(duration.Seconds())

			if seconds < 60 {
				return "just now"
			} else if seconds < 3600 {
				return fmt.Sprintf("%d min ago", seconds/60)
			} else if seconds < 86400 {
				return fmt.Sprintf("%d h ago", seconds/3600)
			} else if seconds < 172800 {
				return "yesterday"
			} else if seconds < 604800 {
				return fmt.Sprintf("%d days ago", seconds/86400)
			}
			return timeVal.Format("2 January 2006")
		},
		"eq": func(a, b interface{}) bool {
			return a == b
		},
		"gt": func(a, b int) bool {
			return a > b
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	}

	// Project
	r.AddFromFilesFuncs("project/list.html", funcMap, assemble(templatesDir+"/views/project/list.html")...)
	r.AddFromFilesFuncs("project/detail.html", funcMap, assemble(templatesDir+"/views/project/detail.html")...)
	r.AddFromFilesFuncs("project/create.html", funcMap, assemble(templatesDir+"/views/project/create.html")...)
	// 弹层片段，不套布局
	r.AddFromFilesFuncs("project/supporters.html", funcMap, templatesDir+"/views/project/supporters.html")

	// Profile
	r.AddFromFilesFuncs("profile/show.html", funcMap, assemble(templatesDir+"/views/profile/show.html")...)

	// Admin
	r.AddFromFilesFuncs("admin/login.html", funcMap, assemble(templatesDir+"/views/admin/login.html")...)
	r.AddFromFilesFuncs("admin/panel.html", funcMap, assemble(templatesDir+"/views/admin/panel.html")...)

	// Error
	r.AddFromFilesFuncs("error.html", funcMap, assemble(templatesDir+"/views/error.html")...)

	return r
}
