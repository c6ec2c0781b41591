package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/blakejoy/saccom-app/pkg/response"
)

// parseIDParam 解析路径中的数字 ID；非法时写出 400 并返回 false
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, 10001, "无效的 "+name)
		return 0, false
	}
	return uint(id), true
}
