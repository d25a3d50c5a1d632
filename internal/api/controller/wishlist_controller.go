package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leon37/WishLedger/internal/api/middleware"
	"github.com/leon37/WishLedger/internal/api/response"
	"github.com/leon37/WishLedger/internal/repository"
)

// WishListController 心愿清单的增和查。归属绑定在仓储层完成，
// 这里只负责把当前登录用户的 ID 传下去。
type WishListController struct {
	repo repository.WishListRepo
}

// NewWishListController 构造函数
func NewWishListController(repo repository.WishListRepo) *WishListController {
	return &WishListController{repo: repo}
}

// CreateWishListRequest 注意：没有 user_id 字段，归属永远是当前登录用户
type CreateWishListRequest struct {
	Name string `json:"name" binding:"required"`
}

type WishListItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Create 新建心愿清单
// @Summary 新建心愿清单
// @Description 创建一条属于当前登录用户的心愿清单
// @Tags WishList
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateWishListRequest true "清单参数"
// @Success 200 {object} response.Response{data=controller.WishListItem}
// @Router /wishlists [post]
func (ctrl *WishListController) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Error(c, http.StatusUnauthorized, "未登录")
		return
	}

	var req CreateWishListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "参数错误: "+err.Error())
		return
	}

	wl, err := ctrl.repo.Create(c.Request.Context(), user.ID, req.Name)
	if err != nil {
		slog.Error("Create wishlist failed", "user_id", user.ID, "err", err)
		response.Error(c, http.StatusInternalServerError, "创建失败")
		return
	}

	response.Success(c, WishListItem{ID: wl.ID, Name: wl.Name})
}

// List 获取心愿清单列表
// @Summary 获取心愿清单列表
// @Description 只返回当前登录用户自己的清单
// @Tags WishList
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]controller.WishListItem}
// @Router /wishlists [get]
func (ctrl *WishListController) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Error(c, http.StatusUnauthorized, "未登录")
		return
	}

	lists, err := ctrl.repo.ListByOwner(c.Request.Context(), user.ID)
	if err != nil {
		slog.Error("List wishlists failed", "user_id", user.ID, "err", err)
		response.Error(c, http.StatusInternalServerError, "获取列表失败")
		return
	}

	// 空列表也返回 []，不要返回 null
	items := make([]WishListItem, 0, len(lists))
	for _, wl := range lists {
		items = append(items, WishListItem{ID: wl.ID, Name: wl.Name})
	}
	response.Success(c, items)
}
