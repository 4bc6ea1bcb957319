package sac_cms

import (
	"net/http"
	"strconv"

	"github.com/cydxin/sac-cms/cons"
	"github.com/cydxin/sac-cms/response"
	"github.com/cydxin/sac-cms/service"
	"github.com/gin-gonic/gin"
)

// -------------------- 成果（Achievement）相关接口 --------------------

// parseListAchievementsReq 同公告列表：公开接口丢弃枚举外的过滤值，
// 后台列表原样透传。
func parseListAchievementsReq(ctx *gin.Context, dropInvalidFilters bool) service.ListAchievementsReq {
	req := service.ListAchievementsReq{
		Category: cons.AchievementCategory(ctx.Query("category")),
		Status:   cons.AchievementStatus(ctx.Query("status")),
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
		if !req.Status.Valid() {
			req.Status = ""
		}
	}
	return req
}

// GinHandlePublicListAchievements 公开成果列表
// @Summary 公开成果列表
// @Description 只返回上架中的成果，按成果日期倒序分页
// @Tags 成果
// @Produce json
// @Param page query int false "页码，默认 1"
// @Param limit query int false "每页条数，默认 10"
// @Param category query string false "分类过滤"
// @Success 200 {object} response.Response{data=service.AchievementListResp} "查询成功"
// @Router /achievements [get]
func (c *CmsEngine) GinHandlePublicListAchievements(ctx *gin.Context) {
	resp, err := c.AchievementService.ListPublic(parseListAchievementsReq(ctx, true))
	if err != nil {
		c.writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(resp))
}

// GinHandleRecentAchievements 首页近期成果
// @Summary 近期成果
// @Description 取 is_recent 标记的成果，默认 3 条
// @Tags 成果
// @Produce json
// @Param limit query int false "返回条数，默认 3"
// @Success 200 {object} response.Response{data=[]service.AchievementDTO} "查询成功"
// @Router /achievements/recent [get]
func (c *CmsEngine) GinHandleRecentAchievements(ctx *gin.Context) {
	limit := 0
	if n, err := strconv.Atoi(ctx.Query("limit")); err == nil {
		limit = n
	}

	items, err := c.AchievementService.Recent(limit)
	if err != nil {
		c.writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(items))
}

// GinHandleAchievementStats 成果统计
// @Summary 成果统计
// @Description 总数、亮点总数、出现过的分类
// @Tags 成果
// @Produce json
// @Success 200 {object} response.Response{data=repository.AchievementStats} "查询成功"
// @Router /achievements/stats [get]
func (c *CmsEngine) GinHandleAchievementStats(ctx *gin.Context) {
	stats, err := c.AchievementService.Stats()
	if err != nil {
		c.writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(stats))
}

// GinHandleListAchievements 管理端成果列表（含下线/归档）
// @Summary 管理端成果列表
// @Tags 成果
// @Produce json
// @Param page query int false "页码，默认 1"
// @Param limit query int false "每页条数，默认 10"
// @Param category query string false "分类过滤"
// @Param status query string false "状态过滤 active/archived"
// @Success 200 {object} response.Response{data=service.AchievementListResp} "查询成功"
// @Failure 401 {object} response.Response "未登录"
// @Failure 403 {object} response.Response "无权限"
// @Security BearerAuth
// @Router /superadmin/achievements [get]
func (c *CmsEngine) GinHandleListAchievements(ctx *gin.Context) {
	actor, ok := actorFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeTokenInvalid, "not logged in"))
		return
	}

	resp, err := c.AchievementService.List(actor, parseListAchievementsReq(ctx, false))
	if err != nil {
		c.writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(resp))
}

// GinHandleGetAchievement 查询单条成果
// @Summary 查询单条成果
// @Tags 成果
// @Produce json
// @Param id path uint64 true "成果ID"
// @Success 200 {object} response.Response{data=service.AchievementDTO} "查询成功"
// @Failure 401 {object} response.Response "未登录"
// @Failure 403 {object} response.Response "无权限"
// @Security BearerAuth
// @Router /superadmin/achievements/{id} [get]
func (c *CmsEngine) GinHandleGetAchievement(ctx *gin.Context) {
	actor, ok := actorFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeTokenInvalid, "not logged in"))
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	item, err := c.AchievementService.Get(actor, id)
	if err != nil {
		c.writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(item))
}

// GinHandleCreateAchievement 创建成果
// @Summary 创建成果
// @Description status 不传默认 active，expiresAt 不传默认 30 天后
// @Tags 成果
// @Accept json
// @Produce json
// @Param body body service.CreateAchievementReq true "成果内容"
// @Success 200 {object} response.Response{data=service.AchievementDTO} "创建成功"
// @Failure 400 {object} response.Response "参数错误"
// @Failure 401 {object} response.Response "未登录"
// @Failure 403 {object} response.Response "无权限"
// @Security BearerAuth
// @Router /superadmin/achievements [post]
func (c *CmsEngine) GinHandleCreateAchievement(ctx *gin.Context) {
	actor, ok := actorFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeTokenInvalid, "not logged in"))
		return
	}

	var req service.CreateAchievementReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid request body"))
		return
	}

	item, err := c.AchievementService.Create(actor, req)
	if err != nil {
		c.writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(item))
}

// GinHandleUpdateAchievement 更新成果
// @Summary 更新成果
// @Tags 成果
// @Accept json
// @Produce json
// @Param id path uint64 true "成果ID"
// @Param body body service.UpdateAchievementReq true "要更新的字段"
// @Success 200 {object} response.Response{data=service.AchievementDTO} "更新成功"
// @Failure 400 {object} response.Response "参数错误"
// @Failure 401 {object} response.Response "未登录"
// @Failure 403 {object} response.Response "无权限"
// @Security BearerAuth
// @Router /superadmin/achievements/{id} [put]
func (c *CmsEngine) GinHandleUpdateAchievement(ctx *gin.Context) {
	actor, ok := actorFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeTokenInvalid, "not logged in"))
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req service.UpdateAchievementReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid request body"))
		return
	}

	item, err := c.AchievementService.Update(actor, id, req)
	if err != nil {
		c.writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(item))
}

// GinHandleDeleteAchievement 删除成果
// @Summary 删除成果
// @Tags 成果
// @Produce json
// @Param id path uint64 true "成果ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 401 {object} response.Response "未登录"
// @Failure 403 {object} response.Response "无权限"
// @Security BearerAuth
// @Router /superadmin/achievements/{id} [delete]
func (c *CmsEngine) GinHandleDeleteAchievement(ctx *gin.Context) {
	actor, ok := actorFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeTokenInvalid, "not logged in"))
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.AchievementService.Delete(actor, id); err != nil {
		c.writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil))
}
