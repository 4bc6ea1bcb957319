package sac_cms

import (
	"errors"
	"net/http"

	"github.com/cydxin/sac-cms/middleware"
	"github.com/cydxin/sac-cms/response"
	"github.com/cydxin/sac-cms/service"
	"github.com/gin-gonic/gin"
)

// -------------------- Handler 公共工具 --------------------

// actorFromContext 从 Gin Context 取出中间件写入的操作者身份。
// 管理接口必须挂 GinAuthMiddleware + GinSuperadminMiddleware，
// 否则这里拿不到 actor，统一按未登录处理。
func actorFromContext(ctx *gin.Context) (service.Actor, bool) {
	v, exists := ctx.Get(middleware.ContextActorKey)
	if !exists {
		return service.Actor{}, false
	}
	actor, ok := v.(service.Actor)
	return actor, ok
}

// adminIDFromContext 取当前登录管理员 ID（只挂了认证中间件的接口用）
func adminIDFromContext(ctx *gin.Context) (uint64, bool) {
	v, exists := ctx.Get(middleware.ContextAdminIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

// errorCode 把 service 层错误映射为业务码
func errorCode(err error) int {
	var ve *service.ValidationError
	switch {
	case errors.Is(err, service.ErrNotFound):
		return response.CodeNotFound
	case errors.Is(err, service.ErrInvalidCredentials):
		return response.CodePasswordError
	case errors.Is(err, service.ErrUnauthenticated):
		return response.CodeTokenInvalid
	case errors.Is(err, service.ErrPermissionDenied):
		return response.CodePermissionDeny
	case errors.As(err, &ve):
		return response.CodeValidationError
	default:
		return response.CodeInternalError
	}
}

// writeServiceError 按约定写出业务错误：
// 校验类 / 未找到走 HTTP 200 + 业务码，认证走 401，越权走 403。
// 内部错误在非 Debug 模式下不向外透出细节。
func (c *CmsEngine) writeServiceError(ctx *gin.Context, err error) {
	code := errorCode(err)
	msg := err.Error()

	switch code {
	case response.CodeTokenInvalid:
		ctx.JSON(http.StatusUnauthorized, response.Error(code, msg))
	case response.CodePermissionDeny:
		ctx.JSON(http.StatusForbidden, response.Error(code, msg))
	case response.CodeInternalError:
		if !c.config.Service.Debug {
			msg = "internal error"
		}
		ctx.JSON(http.StatusInternalServerError, response.Error(code, msg))
	default:
		ctx.JSON(http.StatusOK, response.Error(code, msg))
	}
}
