package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func postSupport(r http.Handler, amount string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/p/7/support", strings.NewReader("amount="+amount))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

// 提交失败不能跳到成功横幅
func TestSupportCommitFailure(t *testing.T) {
	mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE "projects"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(7, "Campus garden"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "projects" SET "collected_amount"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "supporters"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	r := newTestRouter()
	r.POST("/p/:id/support", NewSupportHandler().Create)

	w := postSupport(r, "500")
	if w.Code != http.StatusFound {
		t.Fatalf("got status %d, want 302", w.Code)
	}
	location := w.Header().Get("Location")
	if !strings.Contains(location, "serr=failed") {
		t.Errorf("redirect %q does not report the failure", location)
	}
	if strings.Contains(location, "supported=") {
		t.Errorf("redirect %q shows the success banner after a failed commit", location)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSupportBeginFailure(t *testing.T) {
	mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE "projects"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(7, "Campus garden"))
	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	r := newTestRouter()
	r.POST("/p/:id/support", NewSupportHandler().Create)

	w := postSupport(r, "500")
	if w.Code != http.StatusFound {
		t.Fatalf("got status %d, want 302", w.Code)
	}
	if location := w.Header().Get("Location"); !strings.Contains(location, "serr=failed") {
		t.Errorf("redirect %q does not report the failure", location)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
