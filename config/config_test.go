package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternkit/errors"
	"patternkit/logging"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, logging.InfoLevel, s.Level())
	assert.Equal(t, "patternkit", s.LogPrefix)
	assert.Equal(t, "cafe", s.Menu)
	assert.Equal(t, []string{"internal", "externala", "externalb"}, s.PaymentKeys)
	assert.Equal(t, []string{"externala", "externalb"}, s.DeliveryKeys)
}

func TestLoadSettings_Overrides(t *testing.T) {
	t.Setenv("PATTERNKIT_LOG_LEVEL", "debug")
	t.Setenv("PATTERNKIT_MENU", "house")
	t.Setenv("PATTERNKIT_PAYMENT_KEYS", "stripe, paypal ,")

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, logging.DebugLevel, s.Level())
	assert.Equal(t, "house", s.Menu)
	assert.Equal(t, []string{"stripe", "paypal"}, s.PaymentKeys)
}

func TestLoadSettings_BadLevel(t *testing.T) {
	t.Setenv("PATTERNKIT_LOG_LEVEL", "loud")

	_, err := LoadSettings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadMenus(t *testing.T) {
	c, err := LoadMenus()
	require.NoError(t, err)

	cafe, err := c.Menu("CAFE")
	require.NoError(t, err)
	require.Len(t, cafe.Bases, 2)
	assert.Equal(t, BaseSpec{Name: "Espresso", Price: 2.0}, cafe.Bases[0])
	assert.Contains(t, cafe.Addons, AddonSpec{Key: "whippedcream", Label: "Whipped Cream", Surcharge: 0.7})

	house, err := c.Menu("house")
	require.NoError(t, err)
	assert.Equal(t, "Coffee", house.Bases[0].Name)

	_, err = c.Menu("diner")
	assert.True(t, errors.IsNotFound(err))
}

func TestParseMenus_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.ErrorCode
	}{
		{
			name: "语法错误",
			data: "menus: [",
			code: errors.ErrCodeConfig,
		},
		{
			name: "负价格",
			data: "menus:\n  - name: x\n    bases:\n      - name: Tea\n        price: -1\n",
			code: errors.ErrCodeValidation,
		},
		{
			name: "缺少标签",
			data: "menus:\n  - name: x\n    addons:\n      - key: milk\n        surcharge: 1\n",
			code: errors.ErrCodeValidation,
		},
		{
			name: "重复菜单",
			data: "menus:\n  - name: x\n  - name: X\n",
			code: errors.ErrCodeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMenus([]byte(tt.data))
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}
}
