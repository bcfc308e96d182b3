package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"patternkit/errors"
)

// ValidateRequired 验证必填字段
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewError(errors.ErrCodeValidation,
			fmt.Sprintf("%s不能为空", fieldName)).WithContext("field", fieldName)
	}
	return nil
}

// ValidateNonNegative 验证数值非负且有限（价格、附加费）
func ValidateNonNegative(value float64, fieldName string) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.NewError(errors.ErrCodeValidation,
			fmt.Sprintf("%s必须为有限数值", fieldName)).WithContext("field", fieldName)
	}
	if value < 0 {
		return errors.NewError(errors.ErrCodeValidation,
			fmt.Sprintf("%s不能为负数（当前%v）", fieldName, value)).WithContext("field", fieldName)
	}
	return nil
}

// ParseNumericID 把文本标识解析为整数
//
// 仅接受可选符号加十进制数字，与 strconv.Atoi 一致；解析失败返回 INVALID_INPUT。
func ParseNumericID(value, fieldName string) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.WrapError(err, errors.ErrCodeInvalidInput,
			fmt.Sprintf("%s必须为数字（当前%q）", fieldName, value)).WithContext("field", fieldName)
	}
	return id, nil
}
