package handlers

import (
	"html/template"
	"testing"

	"github.com/Zzipix/campushub/internal/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB 把全局连接替换成 sqlmock，返回清理函数
func newMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New failed: %v", err)
	}

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("gorm.Open failed: %v", err)
	}

	old := db.DB
	db.DB = gdb
	return mock, func() {
		db.DB = old
		sqlDB.Close()
	}
}

// 只渲染测试需要的字段
const testTemplates = `
{{define "project/detail.html"}}comments-unavailable={{.CommentsUnavailable}};supporters-unavailable={{.SupportersUnavailable}}{{end}}
{{define "error.html"}}{{.Error}}{{end}}`

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("test_session", store))
	r.SetHTMLTemplate(template.Must(template.New("views").Parse(testTemplates)))
	return r
}
