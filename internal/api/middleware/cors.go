package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cors 浏览器前端跨域支持。前端直接用本地文件或 IDE 预览打开时 Origin 各不相同，
// 这里回显请求的 Origin；生产环境建议收紧为具体域名。
func Cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
		} else {
			c.Header("Access-Control-Allow-Origin", "*")
		}

		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Header("Access-Control-Allow-Credentials", "true")

		// 预检请求直接终止并返回 204
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
