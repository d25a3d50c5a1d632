package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/leon37/WishLedger/internal/api/controller"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/leon37/WishLedger/docs"
)

// RegisterRoutes 注册所有路由。authMW 由 main 构造好传进来 (持有 TokenManager 和用户仓储)。
func RegisterRoutes(r *gin.Engine, authMW gin.HandlerFunc, authCtrl *controller.AuthController, wishCtrl *controller.WishListController, celCtrl *controller.CelebrationController, staticDir string) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := r.Group("/api/v1/auth")
	{
		public.POST("/signup", authCtrl.Signup)
		public.POST("/login", authCtrl.Login)
	}

	// API 组，全部在 JWT 鉴权之后
	protected := r.Group("/api/v1")
	protected.Use(authMW)
	{
		protected.POST("/wishlists", wishCtrl.Create)
		protected.GET("/wishlists", wishCtrl.List)
		protected.POST("/celebrations", celCtrl.Create)
		protected.GET("/celebrations", celCtrl.List)
	}

	// 静态前端：其余路径走 front/ 目录，找不到就回落到 index.html
	if staticDir != "" {
		registerStatic(r, staticDir)
	}
}

func registerStatic(r *gin.Engine, staticDir string) {
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, gin.H{"code": -1, "msg": "not found"})
			return
		}

		urlPath := c.Request.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			c.File(filepath.Join(staticDir, "index.html"))
			return
		}
		c.File(filePath)
	})
}
