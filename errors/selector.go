package errors

import (
	stdErrors "errors"
	"fmt"
)

// UnknownSelectorError 工厂收到未注册的选择键
//
// 属于配置/使用错误而非瞬时故障，调用方不应重试。
type UnknownSelectorError struct {
	// Kind 工厂名称，例如 "payment"
	Kind string
	// Key 调用方传入的原始键（未做大小写归一）
	Key string
}

// NewUnknownSelector 创建未知选择键错误
func NewUnknownSelector(kind, key string) *UnknownSelectorError {
	return &UnknownSelectorError{Kind: kind, Key: key}
}

// Error 实现 error 接口
func (e *UnknownSelectorError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("[%s] unknown selector: %q", ErrCodeInvalidInput, e.Key)
	}
	return fmt.Sprintf("[%s] unknown %s selector: %q", ErrCodeInvalidInput, e.Kind, e.Key)
}

// Code 未知选择键归类为无效输入
func (e *UnknownSelectorError) Code() ErrorCode {
	return ErrCodeInvalidInput
}

// Is 使 errors.Is(err, ErrInvalidInput) 成立
func (e *UnknownSelectorError) Is(target error) bool {
	appErr, ok := target.(*AppError)
	return ok && appErr.code == ErrCodeInvalidInput
}

// IsUnknownSelector 检查是否为未知选择键错误，并返回携带的键
func IsUnknownSelector(err error) (string, bool) {
	var selErr *UnknownSelectorError
	if stdErrors.As(err, &selErr) {
		return selErr.Key, true
	}
	return "", false
}
