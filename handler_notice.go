package sac_cms

import (
	"net/http"
	"strconv"

	"github.com/cydxin/sac-cms/cons"
	"github.com/cydxin/sac-cms/response"
	"github.com/cydxin/sac-cms/service"
	"github.com/gin-gonic/gin"
)

// -------------------- 公告（Notice）相关接口 --------------------

// parseListNoticesReq 解析列表查询参数。page/limit 留给 service 层兜底。
// dropInvalidFilters 只给公开接口用：枚举外的 category/priority 当作未传，
// 旧链接不报错；后台列表原样透传，过滤一个不存在的值就得到空页。
func parseListNoticesReq(ctx *gin.Context, dropInvalidFilters bool) service.ListNoticesReq {
	req := service.ListNoticesReq{
		Search:   ctx.Query("search"),
		Category: cons.NoticeCategory(ctx.Query("category")),
		Priority: cons.NoticePriority(ctx.Query("priority")),
	}
	if page, err := strconv.Atoi(ctx.Query("page")); err == nil {
		req.Page = page
	}
	if limit, err := strconv.Atoi(ctx.Query("limit")); err == nil {
		req.Limit = limit
	}
	if dropInvalidFilters {
		if !req.Category.Valid() {
			req.Category = ""
		}
		if !req.Priority.Valid() {
			req.Priority = ""
		}
	}
	return req
}

func parseIDParam(ctx *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid id"))
		return 0, false
	}
	return id, true
}

// GinHandlePublicListNotices 公开公告列表
// @Summary 公开公告列表
// @Description 只返回 is_active=true 的公告，按创建时间倒序分页；
// @Description 已过期但未手动下线的公告仍会返回
// @Tags 公告
// @Produce json
// @Param page query int false "页码，默认 1"
// @Param limit query int false "每页条数，默认 10，最大 100"
// @Param search query string false "标题/正文关键字"
// @Param category query string false "分类过滤"
// @Param priority query string false "优先级过滤"
// @Success 200 {object} response.Response{data=service.NoticeListResp} "查询成功"
// @Router /notices [get]
func (c *CmsEngine) GinHandlePublicListNotices(ctx *gin.Context) {
	resp, err := c.NoticeService.ListPublic(parseListNoticesReq(ctx, true))
	if err != nil {
		c.writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(resp))
}

// GinHandleListNotices 管理端公告列表（含已下线）
// @Summary 管理端公告列表
// @Tags 公告
// @Produce json
// @Param page query int false "页码，默认 1"
// @Param limit query int false "每页条数，默认 10，最大 100"
// @Param search query string false "标题/正文关键字"
// @Param category query string false "分类过滤"
// @Param priority query string false "优先级过滤"
// @Success 200 {object} response.Response{data=service.NoticeListResp} "查询成功"
// @Failure 401 {object} response.Response "未登录"
// @Failure 403 {object} response.Response "无权限"
// @Security BearerAuth
// @Router /superadmin/notices [get]
func (c *CmsEngine) GinHandleListNotices(ctx *gin.Context) {
	actor, ok := actorFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeTokenInvalid, "not logged in"))
		return
	}

	resp, err := c.NoticeService.List(actor, parseListNoticesReq(ctx, false))
	if err != nil {
		c.writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(resp))
}

// GinHandleGetNotice 查询单条公告
// @Summary 查询单条公告
// @Tags 公告
// @Produce json
// @Param id path uint64 true "公告ID"
// @Success 200 {object} response.Response{data=service.NoticeDTO} "查询成功"
// @Failure 401 {object} response.Response "未登录"
// @Failure 403 {object} response.Response "无权限"
// @Security BearerAuth
// @Router /superadmin/notices/{id} [get]
func (c *CmsEngine) GinHandleGetNotice(ctx *gin.Context) {
	actor, ok := actorFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeTokenInvalid, "not logged in"))
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	notice, err := c.NoticeService.Get(actor, id)
	if err != nil {
		c.writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(notice))
}

// GinHandleCreateNotice 创建公告
// @Summary 创建公告
// @Description 必填字段缺失时一次性报全部；expiresAt 必须晚于当前时间
// @Tags 公告
// @Accept json
// @Produce json
// @Param body body service.CreateNoticeReq true "公告内容"
// @Success 200 {object} response.Response{data=service.NoticeDTO} "创建成功"
// @Failure 400 {object} response.Response "参数错误"
// @Failure 401 {object} response.Response "未登录"
// @Failure 403 {object} response.Response "无权限"
// @Security BearerAuth
// @Router /superadmin/notices [post]
func (c *CmsEngine) GinHandleCreateNotice(ctx *gin.Context) {
	actor, ok := actorFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeTokenInvalid, "not logged in"))
		return
	}

	var req service.CreateNoticeReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid request body"))
		return
	}

	notice, err := c.NoticeService.Create(actor, req)
	if err != nil {
		c.writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(notice))
}

// GinHandleUpdateNotice 更新公告
// @Summary 更新公告
// @Description 部分更新：未提交的字段保持原值，posted_by 不可改
// @Tags 公告
// @Accept json
// @Produce json
// @Param id path uint64 true "公告ID"
// @Param body body service.UpdateNoticeReq true "要更新的字段"
// @Success 200 {object} response.Response{data=service.NoticeDTO} "更新成功"
// @Failure 400 {object} response.Response "参数错误"
// @Failure 401 {object} response.Response "未登录"
// @Failure 403 {object} response.Response "无权限"
// @Security BearerAuth
// @Router /superadmin/notices/{id} [put]
func (c *CmsEngine) GinHandleUpdateNotice(ctx *gin.Context) {
	actor, ok := actorFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeTokenInvalid, "not logged in"))
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req service.UpdateNoticeReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid request body"))
		return
	}

	notice, err := c.NoticeService.Update(actor, id, req)
	if err != nil {
		c.writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(notice))
}

// GinHandleDeleteNotice 删除公告
// @Summary 删除公告
// @Description 物理删除，不可恢复；临时下线请用更新接口把 isActive 置为 false
// @Tags 公告
// @Produce json
// @Param id path uint64 true "公告ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 401 {object} response.Response "未登录"
// @Failure 403 {object} response.Response "无权限"
// @Security BearerAuth
// @Router /superadmin/notices/{id} [delete]
func (c *CmsEngine) GinHandleDeleteNotice(ctx *gin.Context) {
	actor, ok := actorFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeTokenInvalid, "not logged in"))
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.NoticeService.Delete(actor, id); err != nil {
		c.writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil))
}
