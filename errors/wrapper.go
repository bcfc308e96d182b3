package errors

import (
	"context"
	"fmt"
	"runtime"

	"patternkit/logging"
)

// WrapWithLog 包装错误并记录警告日志
// 建议：用于需要立即记录的错误场景（例如配置加载失败）
func WrapWithLog(ctx context.Context, err error, code ErrorCode, msg string, fields ...logging.Field) error {
	if err == nil {
		return nil
	}

	_, file, line, _ := runtime.Caller(1)

	wrapped := WrapError(err, code, msg)

	allFields := append([]logging.Field{
		logging.Error(err),
		logging.String("error_code", string(code)),
		logging.String("location", fmt.Sprintf("%s:%d", file, line)),
	}, fields...)

	logging.GetLogger().Warn(ctx, msg, allFields...)

	return wrapped
}

// Invalid 创建无效输入错误，附带出错字段
func Invalid(field, msg string) error {
	return NewError(ErrCodeInvalidInput, msg).WithContext("field", field)
}

// NotFound 创建未找到错误，附带查找的名称
func NotFound(kind, name string) error {
	return NewError(ErrCodeNotFound, fmt.Sprintf("%s %q not found", kind, name)).
		WithContext("name", name)
}
