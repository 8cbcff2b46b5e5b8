package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"webafan-portfolio/app/server/config"
	"webafan-portfolio/app/server/constants"
	"webafan-portfolio/app/server/jwt"
	"webafan-portfolio/app/server/models"
	"webafan-portfolio/app/server/whatsapp"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newTestApp 组装一个由 sqlmock 与 miniredis 支撑的 App ，
// WhatsApp 默认未配置，需要时由测试自行替换 a.wa 。
func newTestApp(t *testing.T) (*App, sqlmock.Sqlmock, *miniredis.Miniredis) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db, err := gorm.Open(gormpg.New(gormpg.Config{Conn: mockDB}), &gorm.Config{})
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	j, err := jwt.New("test-secret")
	require.NoError(t, err)

	a := NewApp(zap.NewNop(), db, rdb, j, whatsapp.New("", "", ""), &config.Config{})

	return a, mock, mr
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func asAdmin(c echo.Context) {
	c.Set(constants.ContextKeyAuthUser, &models.User{
		Username: "afan",
		Role:     models.RoleAdmin,
		IsActive: true,
	})
}

func asUser(c echo.Context) {
	c.Set(constants.ContextKeyAuthUser, &models.User{
		Username: "viewer",
		Role:     models.RoleUser,
		IsActive: true,
	})
}
