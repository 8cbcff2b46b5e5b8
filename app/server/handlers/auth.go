package handlers

import (
	"fmt"
	"net/http"

	"webafan-portfolio/app/server/constants"
	"webafan-portfolio/app/server/models"

	"github.com/labstack/echo/v4"
)

// authUser 读取认证中间件写入的身份：没有身份返回 401 ，
// 需要管理员而角色不符返回 403 。
func (a *App) authUser(c echo.Context, requireAdminRole bool) (*models.User, error, int) {
	user, ok := c.Get(constants.ContextKeyAuthUser).(*models.User)
	if !ok || user == nil {
		return nil, fmt.Errorf("missing or invalid auth token"), http.StatusUnauthorized
	}

	// 验证权限
	if requireAdminRole && user.Role != models.RoleAdmin {
		return nil, fmt.Errorf("requires admin role"), http.StatusForbidden
	}

	return user, nil, http.StatusOK
}
