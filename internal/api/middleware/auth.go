package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/leon37/WishLedger/internal/api/response"
	"github.com/leon37/WishLedger/internal/model"
	"github.com/leon37/WishLedger/internal/repository"
	"github.com/leon37/WishLedger/internal/service"
)

// currentUserKey 放进 gin.Context 的键
const currentUserKey = "currentUser"

// CurrentUser 从 Context 取出鉴权中间件解析好的用户。
// 只在 JWTAuth 保护的路由里调用，取不到说明路由注册错了。
func CurrentUser(c *gin.Context) *model.User {
	val, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}

// JWTAuth 解析 Bearer Token 并把对应的用户挂到 Context 上。
// 所有失败路径 (缺头/格式不对/签名不对/过期/用户已不存在) 返回同一个 401，
// 带 WWW-Authenticate: Bearer 质询头，不区分原因。
func JWTAuth(tokens *service.TokenManager, users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c)
			return
		}

		// 格式通常是 "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c)
			return
		}

		// 解析 Token，拿到 sub (用户名)
		username, err := tokens.Verify(parts[1])
		if err != nil {
			unauthorized(c)
			return
		}

		// Token 合法还不够，用户必须仍然存在。
		// 查不到也报一样的 401，不暴露"token 没问题但人没了"。
		user, err := users.GetByUsername(c.Request.Context(), username)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	response.Error(c, http.StatusUnauthorized, "未登录或凭证已失效")
	c.Abort()
}
