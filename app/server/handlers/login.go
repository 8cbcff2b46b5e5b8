package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"webafan-portfolio/app/server/constants"
	"webafan-portfolio/app/server/jwt"
	"webafan-portfolio/app/server/models"

	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginUserInfo struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	FullName  string     `json:"fullName"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin"`
}

type loginResponse struct {
	Token string        `json:"token"`
	User  loginUserInfo `json:"user"`
}

func (a *App) AuthLogin(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 没有写用户名或密码
	if req.Username == "" || req.Password == "" {
		return a.er(c, http.StatusBadRequest)
	}

	// 只有启用的用户可以登录；用户不存在与密码错误返回完全一样的结果
	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "username = ? AND is_active = true", req.Username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusUnauthorized)
		} else {
			a.l.Error("failed to find user", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// 提取密码 hash 并进行校验；hash 异常时按认证失败处理，不区分原因
	if match, _, err := argon2id.CheckHash(req.Password, user.Password); err != nil {
		a.l.Error("failed to check password", zap.String("username", user.Username), zap.Error(err))
		return a.er(c, http.StatusUnauthorized)
	} else if !match {
		// 密码不一致
		return a.er(c, http.StatusUnauthorized)
	}

	// 更新最后登录时间
	now := time.Now()
	user.LastLogin = &now
	if err := a.db.WithContext(rctx).Model(&user).Update("last_login", now).Error; err != nil {
		a.l.Error("failed to update last login", zap.String("username", user.Username), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 刷新用户缓存，避免中间件读到旧数据
	cacheKey := fmt.Sprintf(constants.CacheKeyUserInfo, user.Username)
	if cacheBytes, err := json.Marshal(&user); err != nil {
		a.l.Error("failed to marshal user info", zap.String("username", user.Username), zap.Error(err))
	} else {
		a.rdb.Set(rctx, cacheKey, cacheBytes, constants.CacheExpireUserInfo)
	}

	// 签出 JWT
	expires := now.Add(constants.AuthTokenDuration)
	token, err := a.jwt.SignToken(&jwt.User{
		Subject: user.Username,
		Role:    user.Role,
		Expires: expires.Unix(),
	})
	if err != nil {
		a.l.Error("failed to sign token", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	fullName := user.FullName
	if fullName == "" {
		fullName = user.Username
	}

	// 返回
	return c.JSON(http.StatusOK, &loginResponse{
		Token: token,
		User: loginUserInfo{
			ID:        user.ID,
			Username:  user.Username,
			FullName:  fullName,
			Role:      user.Role,
			LastLogin: user.LastLogin,
		},
	})
}

type validateRequest struct {
	Token string `json:"token"`
}

type validateResponse struct {
	Valid    bool    `json:"valid"`
	Username *string `json:"username,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// AuthValidate 提供给前端检查持有的 token 是否仍然有效
func (a *App) AuthValidate(c echo.Context) error {
	var req validateRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	jwtUser, err := a.jwt.ParseUser(req.Token)
	if err != nil {
		return c.JSON(http.StatusOK, &validateResponse{Valid: false})
	}

	return c.JSON(http.StatusOK, &validateResponse{
		Valid:    true,
		Username: &jwtUser.Subject,
		Role:     &jwtUser.Role,
	})
}
