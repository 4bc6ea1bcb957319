package middleware

import (
	"errors"
	"net/http"

	"github.com/cydxin/sac-cms/cons"
	"github.com/cydxin/sac-cms/response"
	"github.com/cydxin/sac-cms/service"
	"github.com/gin-gonic/gin"
)

/*
	GinSuperadminMiddleware 角色闸门，必须挂在 GinAuthMiddleware 之后：

- 从 context 取出鉴权通过的 adminID
- 查库解析角色，要求严格等于 superadmin
- 通过后把 service.Actor 写入 context，handler 显式取用（不走全局登录态）

语义区分：
- 凭证无效/账号已停用 -> 401 (CodeTokenInvalid)
- 凭证有效但角色不符 -> 403 (CodePermissionDeny)
*/
func GinSuperadminMiddleware(admin *service.AdminService, opt *AuthOptions) gin.HandlerFunc {
	cfg := opt.withDefaults()

	return func(c *gin.Context) {
		if admin == nil {
			c.Header("Content-Type", "application/json")
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
				Code: response.CodeInternalError,
				Msg:  "admin service is nil",
			})
			return
		}

		idAny, exists := c.Get(cfg.AdminIDKey)
		if !exists {
			c.Header("Content-Type", "application/json")
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Response{
				Code: response.CodeTokenInvalid,
				Msg:  "admin_id not found in context",
			})
			return
		}
		adminID, ok := idAny.(uint64)
		if !ok {
			c.Header("Content-Type", "application/json")
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
				Code: response.CodeInternalError,
				Msg:  "invalid admin_id type",
			})
			return
		}

		actor, err := admin.RequireRole(adminID, cons.RoleSuperadmin)
		if err != nil {
			c.Header("Content-Type", "application/json")
			switch {
			case errors.Is(err, service.ErrPermissionDenied):
				c.AbortWithStatusJSON(http.StatusForbidden, response.Response{
					Code: response.CodePermissionDeny,
					Msg:  "Access denied. Only superadmins can access this endpoint.",
				})
			case errors.Is(err, service.ErrUnauthenticated):
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.Response{
					Code: response.CodeTokenInvalid,
					Msg:  err.Error(),
				})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
					Code: response.CodeInternalError,
					Msg:  err.Error(),
				})
			}
			return
		}

		c.Set(ContextActorKey, actor)
		c.Next()
	}
}
