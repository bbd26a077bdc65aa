package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

// 评论读失败时详情页要给出"评论暂不可用"，而不是伪装成没有评论
func TestDetailCommentsUnavailable(t *testing.T) {
	mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE "projects"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "author_name"}).
			AddRow(7, "Campus garden", "Olga"))
	mock.ExpectQuery(`SELECT \* FROM "budget_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id"}))
	mock.ExpectQuery(`SELECT \* FROM "team_members"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id"}))
	mock.ExpectQuery(`SELECT \* FROM "comments"`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectQuery(`SELECT \* FROM "supporters"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "amount"}))

	r := newTestRouter()
	r.GET("/p/:id", NewProjectHandler().Detail)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/p/7", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Detail returned %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "comments-unavailable=true") {
		t.Errorf("comments load failure not surfaced: %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "supporters-unavailable=false") {
		t.Errorf("supporters flag wrongly set: %s", w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
