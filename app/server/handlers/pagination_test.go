package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	a := &App{}

	runCase := func(query string) (bool, int, int) {
		c, _ := newJSONContext(http.MethodGet, "/?"+query, "")
		return a.parsePagination(c)
	}

	// 默认值
	showAll, page, limit := runCase("")
	assert.False(t, showAll)
	assert.Equal(t, 0, page)
	assert.Equal(t, 100, limit)

	// 页码从 1 起，内部减一
	showAll, page, limit = runCase("page=3&limit=20")
	assert.False(t, showAll)
	assert.Equal(t, 2, page)
	assert.Equal(t, 20, limit)

	// 特殊参数：展示全部
	showAll, page, limit = runCase("page=0&limit=0")
	assert.True(t, showAll)
	assert.Equal(t, -1, page)
	assert.Equal(t, -1, limit)

	// 非法参数回退默认值
	showAll, page, limit = runCase("page=abc&limit=-5")
	assert.False(t, showAll)
	assert.Equal(t, 0, page)
	assert.Equal(t, 100, limit)
}

func TestCalcMaxPage(t *testing.T) {
	a := &App{}

	assert.Equal(t, int64(1), a.calcMaxPage(42, true, -1))
	assert.Equal(t, int64(0), a.calcMaxPage(0, false, 10))
	assert.Equal(t, int64(1), a.calcMaxPage(10, false, 10))
	assert.Equal(t, int64(2), a.calcMaxPage(11, false, 10))
	assert.Equal(t, int64(5), a.calcMaxPage(42, false, 10))
}
