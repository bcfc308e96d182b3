// Package config 运行时配置：环境变量设置与内置菜单
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"patternkit/logging"
)

// Settings 演示程序的运行时设置
type Settings struct {
	LogLevel     string   `env:"PATTERNKIT_LOG_LEVEL" envDefault:"info"`
	LogPrefix    string   `env:"PATTERNKIT_LOG_PREFIX" envDefault:"patternkit"`
	Menu         string   `env:"PATTERNKIT_MENU" envDefault:"cafe"`
	PaymentKeys  []string `env:"PATTERNKIT_PAYMENT_KEYS" envSeparator:"," envDefault:"internal,externala,externalb"`
	DeliveryKeys []string `env:"PATTERNKIT_DELIVERY_KEYS" envSeparator:"," envDefault:"externala,externalb"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadSettings 从环境变量读取设置并校验日志级别
func LoadSettings() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	s.PaymentKeys = trimAll(s.PaymentKeys)
	s.DeliveryKeys = trimAll(s.DeliveryKeys)
	return s, nil
}

// Level 返回解析后的日志级别
func (s Settings) Level() logging.Level {
	level, _ := logging.ParseLevel(s.LogLevel)
	return level
}

func trimAll(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
