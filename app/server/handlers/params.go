package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"webafan-portfolio/app/server/models"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func paramID(c echo.Context, name string) (uint, error) {
	idStr := c.Param(name)
	idUint64, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id param: %s", idStr)
	}
	return uint(idUint64), nil
}

// 方法不能有类型形参，所以这个不能用 (a *App)
func validateIDs[M models.Profile](db *gorm.DB, ids []uint) (error, int) {
	if len(ids) > 0 {
		var (
			count int64
			model M
		)
		if err := db.
			Model(&model).
			Where("id IN ?", ids).
			Count(&count).Error; err != nil {
			// 查询失败
			return fmt.Errorf("count: %w", err), http.StatusInternalServerError
		} else if int(count) != len(ids) {
			// 数量对不上
			return fmt.Errorf("count ids mismatch"), http.StatusBadRequest
		}
	}

	return nil, http.StatusOK
}
