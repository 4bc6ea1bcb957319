package service

import (
	"errors"
	"strings"
)

// 统一业务错误。handler 用 errors.Is / errors.As 映射到 response code，
// 不做字符串匹配。
var (
	// ErrNotFound 按 id 查不到记录
	ErrNotFound = errors.New("record not found")
	// ErrUnauthenticated 无凭证或凭证无效（与权限不足区分开）
	ErrUnauthenticated = errors.New("authentication required")
	// ErrPermissionDenied 凭证有效但角色不是 superadmin
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalidCredentials 登录失败（账号不存在/密码错误统一对外口径）
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError 字段级校验失败，Fields 记录全部无效字段（缺失字段一次报全）。
// 校验和鉴权都发生在任何写库之前。
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func newMissingFieldsError(fields []string) *ValidationError {
	return &ValidationError{
		Fields: fields,
		Reason: "Missing required fields: " + strings.Join(fields, ", "),
	}
}

func newFieldError(field, reason string) *ValidationError {
	return &ValidationError{Fields: []string{field}, Reason: reason}
}
