package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharederrors "patternkit/errors"
)

// TestValidateRequired 测试必填字段验证
func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "有效值", value: "externala", wantErr: false},
		{name: "空字符串", value: "", wantErr: true},
		{name: "只有空格", value: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.value, "选择键")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, sharederrors.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestValidateNonNegative 测试非负数值验证
func TestValidateNonNegative(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{name: "零", value: 0, wantErr: false},
		{name: "正数", value: 0.7, wantErr: false},
		{name: "负数", value: -0.1, wantErr: true},
		{name: "NaN", value: math.NaN(), wantErr: true},
		{name: "无穷大", value: math.Inf(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNonNegative(tt.value, "附加费")
			if tt.wantErr {
				assert.True(t, sharederrors.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestParseNumericID 测试数字标识解析
func TestParseNumericID(t *testing.T) {
	id, err := ParseNumericID("123", "orderID")
	require.NoError(t, err)
	assert.Equal(t, 123, id)

	id, err = ParseNumericID("-7", "orderID")
	require.NoError(t, err)
	assert.Equal(t, -7, id)

	for _, bad := range []string{"", "PKG-456", "12a", " 1", "1.5"} {
		_, err := ParseNumericID(bad, "orderID")
		assert.True(t, sharederrors.IsInvalidInput(err), "value %q", bad)
	}
}
