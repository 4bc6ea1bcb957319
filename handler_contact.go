package sac_cms

import (
	"net/http"

	"github.com/cydxin/sac-cms/cons"
	"github.com/cydxin/sac-cms/response"
	"github.com/cydxin/sac-cms/service"
	"github.com/gin-gonic/gin"
)

// -------------------- 联系人（Contact）相关接口 --------------------

// GinHandlePublicListContacts 公开联系人列表
// @Summary 公开联系人列表
// @Description 只返回启用中的联系人，按 display_order 升序；
// @Description category 不在枚举内时返回空列表而不是报错
// @Tags 联系人
// @Produce json
// @Param category query string false "分类过滤 faculty/club_secretary/por_holder/committee_member"
// @Success 200 {object} response.Response{data=[]service.ContactDTO} "查询成功"
// @Router /contacts [get]
func (c *CmsEngine) GinHandlePublicListContacts(ctx *gin.Context) {
	items, err := c.ContactService.ListActive(cons.ContactCategory(ctx.Query("category")))
	if err != nil {
		c.writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(items))
}

// GinHandleListContacts 管理端联系人列表（含停用）
// @Summary 管理端联系人列表
// @Tags 联系人
// @Produce json
// @Success 200 {object} response.Response{data=[]service.ContactDTO} "查询成功"
// @Failure 401 {object} response.Response "未登录"
// @Failure 403 {object} response.Response "无权限"
// @Security BearerAuth
// @Router /superadmin/contacts [get]
func (c *CmsEngine) GinHandleListContacts(ctx *gin.Context) {
	actor, ok := actorFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeTokenInvalid, "not logged in"))
		return
	}

	items, err := c.ContactService.ListAll(actor)
	if err != nil {
		c.writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(items))
}

// GinHandleCreateContact 创建联系人
// @Summary 创建联系人
// @Description club_secretary 必须带 club，faculty 必须带 department，邮箱全局唯一
// @Tags 联系人
// @Accept json
// @Produce json
// @Param body body service.CreateContactReq true "联系人内容"
// @Success 200 {object} response.Response{data=service.ContactDTO} "创建成功"
// @Failure 400 {object} response.Response "参数错误"
// @Failure 401 {object} response.Response "未登录"
// @Failure 403 {object} response.Response "无权限"
// @Security BearerAuth
// @Router /superadmin/contacts [post]
func (c *CmsEngine) GinHandleCreateContact(ctx *gin.Context) {
	actor, ok := actorFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeTokenInvalid, "not logged in"))
		return
	}

	var req service.CreateContactReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid request body"))
		return
	}

	item, err := c.ContactService.Create(actor, req)
	if err != nil {
		c.writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(item))
}

// GinHandleUpdateContact 更新联系人
// @Summary 更新联系人
// @Tags 联系人
// @Accept json
// @Produce json
// @Param id path uint64 true "联系人ID"
// @Param body body service.UpdateContactReq true "要更新的字段"
// @Success 200 {object} response.Response{data=service.ContactDTO} "更新成功"
// @Failure 400 {object} response.Response "参数错误"
// @Failure 401 {object} response.Response "未登录"
// @Failure 403 {object} response.Response "无权限"
// @Security BearerAuth
// @Router /superadmin/contacts/{id} [put]
func (c *CmsEngine) GinHandleUpdateContact(ctx *gin.Context) {
	actor, ok := actorFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeTokenInvalid, "not logged in"))
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req service.UpdateContactReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid request body"))
		return
	}

	item, err := c.ContactService.Update(actor, id, req)
	if err != nil {
		c.writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(item))
}

// GinHandleDeleteContact 删除联系人
// @Summary 删除联系人
// @Tags 联系人
// @Produce json
// @Param id path uint64 true "联系人ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 401 {object} response.Response "未登录"
// @Failure 403 {object} response.Response "无权限"
// @Security BearerAuth
// @Router /superadmin/contacts/{id} [delete]
func (c *CmsEngine) GinHandleDeleteContact(ctx *gin.Context) {
	actor, ok := actorFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeTokenInvalid, "not logged in"))
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.ContactService.Delete(actor, id); err != nil {
		c.writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil))
}
