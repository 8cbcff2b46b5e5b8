package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"webafan-portfolio/app/server/constants"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// cachedJSON 公共读取端点的读穿缓存：命中时直接返回缓存的 JSON ，
// 未命中时执行 load 查询并回填。缓存层面的错误只记录日志，不影响请求。
func (a *App) cachedJSON(c echo.Context, cacheKey string, load func() (any, error)) error {
	rctx := c.Request().Context()

	// 查询缓存
	if cacheBytes, err := a.rdb.Get(rctx, cacheKey).Bytes(); err != nil {
		if !errors.Is(err, redis.Nil) {
			a.l.Error("failed to query cache", zap.String("cacheKey", cacheKey), zap.Error(err))
		}
	} else {
		return c.JSONBlob(http.StatusOK, cacheBytes)
	}

	// 查询数据库
	data, err := load()
	if err != nil {
		a.l.Error("failed to load data", zap.String("cacheKey", cacheKey), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 格式化并加入缓存，方便下一次查询
	if cacheBytes, err := json.Marshal(data); err != nil {
		a.l.Error("failed to marshal data for cache", zap.String("cacheKey", cacheKey), zap.Error(err))
	} else {
		a.rdb.Set(rctx, cacheKey, cacheBytes, constants.CacheExpirePublic)
	}

	return c.JSON(http.StatusOK, data)
}

// dropCache 在数据变更后清理对应的公共缓存
func (a *App) dropCache(c echo.Context, cacheKeys ...string) {
	if err := a.rdb.Del(c.Request().Context(), cacheKeys...).Err(); err != nil {
		a.l.Error("failed to drop cache", zap.Strings("cacheKeys", cacheKeys), zap.Error(err))
	}
}
