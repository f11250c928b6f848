package controllers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kmch-aqps/ovr-portal/controllers"
	"github.com/kmch-aqps/ovr-portal/models"
	"github.com/kmch-aqps/ovr-portal/routes"
)

// stubSender records reports instead of dialing SMTP.
type stubSender struct {
	reports []models.Report
	err     error
}

func (s *stubSender) SendReport(r models.Report) error {
	s.reports = append(s.reports, r)
	return s.err
}

// setupPortal wires the full router against an in-memory database, one
// per test so unique-email collisions cannot leak between tests.
func setupPortal(t *testing.T, sender controllers.ReportSender) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	r := gin.New()
	r.LoadHTMLGlob("../templates/*.html")
	r.Use(sessions.Sessions("ovr_session", cookie.NewStore([]byte("test-secret"))))
	routes.SetupRoutes(r, db, sender)
	return r, db
}

func getPage(t *testing.T, r http.Handler, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(t *testing.T, r http.Handler, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates an account, logs in, and returns the session
// cookies of the authenticated browser context.
func registerAndLogin(t *testing.T, r http.Handler, email, password string) []*http.Cookie {
	t.Helper()
	form := url.Values{"email": {email}, "password": {password}}

	w := postForm(t, r, "/register", form, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))

	w = postForm(t, r, "/login", form, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/submit", w.Header().Get("Location"))
	return w.Result().Cookies()
}
