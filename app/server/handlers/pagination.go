package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

func (a *App) parsePagination(c echo.Context) (bool, int, int) {
	page, pageOK := queryUint(c, "page")
	limit, limitOK := queryUint(c, "limit")

	if pageOK && page == 0 && limitOK && limit == 0 {
		// 特殊参数：展示全部
		return true, -1, -1
	}

	// 映射前：第几页，每页限制多少个
	// 映射后：页减一，限制不变
	var parsedPage, parsedLimit uint

	if !pageOK || page < 1 {
		parsedPage = 0
	} else {
		parsedPage = page - 1
	}

	if !limitOK || limit == 0 {
		parsedLimit = 100
	} else {
		parsedLimit = limit
	}

	return false, int(parsedPage), int(parsedLimit)
}

func (a *App) calcMaxPage(count int64, showAll bool, limit int) int64 {
	if showAll {
		return 1
	} else {
		pageMax := count / int64(limit)
		if (count % int64(limit)) != 0 {
			pageMax++
		}
		return pageMax
	}
}

func queryUint(c echo.Context, name string) (uint, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, false
	}
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(parsed), true
}
