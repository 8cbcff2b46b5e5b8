package middlewares

import (
	"encoding/json"
	"errors"
	"fmt"

	"webafan-portfolio/app/server/constants"
	"webafan-portfolio/app/server/jwt"
	"webafan-portfolio/app/server/models"

	gojwt "github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthGate 在所有业务逻辑之前运行：有合法 token 时把用户身份写入 context ，
// 缺失或无效的 token 不在这里拦截，而是按匿名请求继续，由各端点自行做授权判断。
func AuthGate(db *gorm.DB, rdb *redis.Client, j *jwt.JWT, l *zap.Logger) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:             j.Key(),
		ContinueOnIgnoredError: true,
		ErrorHandler: func(c echo.Context, err error) error {
			if !errors.Is(err, echojwt.ErrJWTMissing) {
				// subject 只用于排查日志，不参与任何授权判断
				sub, _ := j.ExtractSubject(tokenFromHeader(c))
				l.Debug("ignoring invalid auth token", zap.String("sub", sub), zap.Error(err))
			}
			return nil
		},
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*gojwt.Token)
			if !ok {
				return
			}
			claims, ok := token.Claims.(gojwt.MapClaims)
			if !ok {
				return
			}
			sub, ok := claims["sub"].(string)
			if !ok || sub == "" {
				return
			}

			user, err := resolveUser(c, db, rdb, l, sub)
			if err != nil {
				// 未知的 subject 等同于未认证
				l.Debug("failed to resolve token subject", zap.String("sub", sub), zap.Error(err))
				return
			}

			// 设置 context
			c.Set(constants.ContextKeyAuthUser, user)
		},
	})
}

func resolveUser(c echo.Context, db *gorm.DB, rdb *redis.Client, l *zap.Logger, username string) (*models.User, error) {
	var user models.User

	rctx := c.Request().Context()

	// 查询缓存
	cacheKey := fmt.Sprintf(constants.CacheKeyUserInfo, username)
	if cacheBytes, err := rdb.Get(rctx, cacheKey).Bytes(); err != nil {
		if !errors.Is(err, redis.Nil) {
			l.Error("failed to query cache for user info", zap.String("username", username), zap.Error(err))
		}
	} else if err = json.Unmarshal(cacheBytes, &user); err != nil {
		l.Error("failed to unmarshal user info", zap.String("username", username), zap.ByteString("cacheBytes", cacheBytes), zap.Error(err))
		// 可能是无效的缓存，清理掉
		rdb.Del(rctx, cacheKey)
	} else {
		// 成功拉取到并格式化
		return &user, nil
	}

	// 查询数据库
	if err := db.WithContext(rctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no such user")
		} else {
			return nil, fmt.Errorf("error query user: %w", err)
		}
	}

	// 格式化并加入缓存，方便下一次查询
	if cacheBytes, err := json.Marshal(&user); err != nil {
		l.Error("failed to marshal user info", zap.String("username", username), zap.Error(err))
	} else {
		rdb.Set(rctx, cacheKey, cacheBytes, constants.CacheExpireUserInfo)
	}

	return &user, nil
}

func tokenFromHeader(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if len(auth) > len(prefix) {
		return auth[len(prefix):]
	}
	return ""
}
