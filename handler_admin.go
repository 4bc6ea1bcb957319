package sac_cms

import (
	"net/http"

	"github.com/cydxin/sac-cms/middleware"
	"github.com/cydxin/sac-cms/response"
	"github.com/cydxin/sac-cms/service"
	"github.com/gin-gonic/gin"
)

// -------------------- 管理员（Admin）相关接口 --------------------

// GinHandleAdminLogin 管理员登录
// @Summary 管理员登录
// @Description 用户名密码换取访问令牌，后续请求放在 Authorization: Bearer 头
// @Tags 管理员
// @Accept json
// @Produce json
// @Param body body service.LoginReq true "登录参数"
// @Success 200 {object} response.Response{data=service.LoginResp} "登录成功"
// @Failure 400 {object} response.Response "参数错误"
// @Router /admin/login [post]
func (c *CmsEngine) GinHandleAdminLogin(ctx *gin.Context) {
	var req service.LoginReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid request body"))
		return
	}

	resp, err := c.AdminService.LoginWithToken(ctx, req)
	if err != nil {
		c.writeServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.Success(resp))
}

// GinHandleAdminLogout 退出登录
// @Summary 退出登录
// @Description 吊销当前请求携带的令牌
// @Tags 管理员
// @Produce json
// @Success 200 {object} response.Response "已退出"
// @Failure 401 {object} response.Response "未登录"
// @Security BearerAuth
// @Router /admin/logout [post]
func (c *CmsEngine) GinHandleAdminLogout(ctx *gin.Context) {
	if _, ok := adminIDFromContext(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeTokenInvalid, "not logged in"))
		return
	}

	token, _ := ctx.Get(middleware.ContextTokenKey)
	tokenStr, _ := token.(string)
	if tokenStr != "" {
		if err := c.AuthService.RevokeToken(ctx, tokenStr); err != nil {
			c.writeServiceError(ctx, err)
			return
		}
	}

	ctx.JSON(http.StatusOK, response.Success(nil))
}

// GinHandleAdminMe 查询当前登录管理员
// @Summary 当前管理员信息
// @Tags 管理员
// @Produce json
// @Success 200 {object} response.Response{data=service.AdminDTO} "查询成功"
// @Failure 401 {object} response.Response "未登录"
// @Security BearerAuth
// @Router /admin/me [get]
func (c *CmsEngine) GinHandleAdminMe(ctx *gin.Context) {
	adminID, ok := adminIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeTokenInvalid, "not logged in"))
		return
	}

	admin, err := c.AdminService.GetAdmin(adminID)
	if err != nil {
		c.writeServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.Success(admin))
}

// GinHandleAdminUpdatePassword 修改密码
// @Summary 修改密码
// @Description 校验旧密码后更新，成功后吊销该管理员的全部令牌
// @Tags 管理员
// @Accept json
// @Produce json
// @Param body body service.UpdatePasswordReq true "改密参数"
// @Success 200 {object} response.Response "修改成功"
// @Failure 400 {object} response.Response "参数错误"
// @Failure 401 {object} response.Response "未登录"
// @Security BearerAuth
// @Router /admin/password [put]
func (c *CmsEngine) GinHandleAdminUpdatePassword(ctx *gin.Context) {
	adminID, ok := adminIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeTokenInvalid, "not logged in"))
		return
	}

	var req service.UpdatePasswordReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid request body"))
		return
	}

	if err := c.AdminService.UpdatePassword(ctx, adminID, req); err != nil {
		c.writeServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.Success(nil))
}
