package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leon37/WishLedger/internal/api/middleware"
	"github.com/leon37/WishLedger/internal/api/response"
	"github.com/leon37/WishLedger/internal/repository"
)

// CelebrationController 纪念日的增和查，结构和 WishListController 一致
type CelebrationController struct {
	repo repository.CelebrationRepo
}

// NewCelebrationController 构造函数
func NewCelebrationController(repo repository.CelebrationRepo) *CelebrationController {
	return &CelebrationController{repo: repo}
}

// CreateCelebrationRequest date 按字符串存，前端自己决定格式
type CreateCelebrationRequest struct {
	Title string `json:"title" binding:"required"`
	Date  string `json:"date" binding:"required"`
}

type CelebrationItem struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

// Create 新建纪念日
// @Summary 新建纪念日
// @Description 创建一条属于当前登录用户的纪念日 (生日/周年等)
// @Tags Celebration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCelebrationRequest true "纪念日参数"
// @Success 200 {object} response.Response{data=controller.CelebrationItem}
// @Router /celebrations [post]
func (ctrl *CelebrationController) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Error(c, http.StatusUnauthorized, "未登录")
		return
	}

	var req CreateCelebrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "参数错误: "+err.Error())
		return
	}

	cel, err := ctrl.repo.Create(c.Request.Context(), user.ID, req.Title, req.Date)
	if err != nil {
		slog.Error("Create celebration failed", "user_id", user.ID, "err", err)
		response.Error(c, http.StatusInternalServerError, "创建失败")
		return
	}

	response.Success(c, CelebrationItem{ID: cel.ID, Title: cel.Title, Date: cel.Date})
}

// List 获取纪念日列表
// @Summary 获取纪念日列表
// @Description 只返回当前登录用户自己的纪念日
// @Tags Celebration
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]controller.CelebrationItem}
// @Router /celebrations [get]
func (ctrl *CelebrationController) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Error(c, http.StatusUnauthorized, "未登录")
		return
	}

	cels, err := ctrl.repo.ListByOwner(c.Request.Context(), user.ID)
	if err != nil {
		slog.Error("List celebrations failed", "user_id", user.ID, "err", err)
		response.Error(c, http.StatusInternalServerError, "获取列表失败")
		return
	}

	items := make([]CelebrationItem, 0, len(cels))
	for _, cel := range cels {
		items = append(items, CelebrationItem{ID: cel.ID, Title: cel.Title, Date: cel.Date})
	}
	response.Success(c, items)
}
