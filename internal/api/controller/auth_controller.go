package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leon37/WishLedger/internal/api/response"
	"github.com/leon37/WishLedger/internal/service"
)

// AuthController 处理用户认证
type AuthController struct {
	authService *service.AuthService
}

// NewAuthController 构造函数
func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// ==========================================
// DTOs (请求/响应参数定义)
// ==========================================

type SignupRequest struct {
	Username string `json:"username" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required"`
}

type SignupResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // 固定 "bearer"
}

// ==========================================
// Handlers
// ==========================================

// Signup 用户注册
// @Summary 用户注册
// @Description 创建新用户，密码加密存储；用户名已占用返回 409
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "注册参数"
// @Success 200 {object} response.Response{data=controller.SignupResponse} "Code=0 成功"
// @Failure 400 {object} response.Response "参数错误"
// @Failure 409 {object} response.Response "用户名已占用"
// @Router /auth/signup [post]
func (ctrl *AuthController) Signup(c *gin.Context) {
	var req SignupRequest

	// 1. 参数校验
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("Signup params invalid", "err", err)
		response.Error(c, http.StatusBadRequest, "参数校验失败: "+err.Error())
		return
	}

	// 2. 业务逻辑
	user, err := ctrl.authService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			slog.Warn("Signup conflict", "username", req.Username)
			response.Error(c, http.StatusConflict, "用户名已被占用")
		case errors.Is(err, service.ErrWeakPassword):
			response.Error(c, http.StatusBadRequest, "密码太短")
		default:
			slog.Error("Signup failed", "username", req.Username, "err", err)
			response.Error(c, http.StatusInternalServerError, "注册失败")
		}
		return
	}

	// 3. 成功响应
	slog.Info("User registered", "user_id", user.ID, "username", user.Username)
	response.Success(c, SignupResponse{
		ID:       user.ID,
		Username: user.Username,
	})
}

// Login 用户登录
// @Summary 用户登录
// @Description 校验账号密码，颁发 JWT Token (30 分钟有效)
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录参数"
// @Success 200 {object} response.Response{data=controller.LoginResponse} "包含 access_token"
// @Failure 401 {object} response.Response "账号或密码错误"
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req LoginRequest

	// 1. 参数校验
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "参数格式错误")
		return
	}

	// 2. 业务逻辑
	token, err := ctrl.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// 为了防止暴力破解，提示信息模糊化：不区分"没这个人"和"密码不对"
		slog.Warn("Login failed", "username", req.Username)
		response.Error(c, http.StatusUnauthorized, "账号或密码错误")
		return
	}

	// 3. 成功响应
	slog.Info("User logged in", "username", req.Username)
	response.Success(c, LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
