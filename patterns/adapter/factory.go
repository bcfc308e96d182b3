// Package adapter 提供按选择键构造能力实现的通用工厂
//
// 每个键对应一个构造函数；构造函数可以直接返回能力实现，也可以先创建外部协作者
// 再用适配器包装。键大小写不敏感，未注册的键返回 UnknownSelectorError。
// 工厂不缓存实例：每次 Resolve 都重新调用构造函数。
package adapter

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"patternkit/errors"
	"patternkit/logging"
	"patternkit/validation"
)

// Constructor 构造能力实例
type Constructor[T any] func() T

// Factory 选择键到构造函数的注册表
type Factory[T any] struct {
	name   string
	ctors  map[string]Constructor[T]
	logger logging.Logger
	mutex  sync.RWMutex
}

// Option 工厂选项
type Option func(*options)

type options struct {
	logger logging.Logger
}

// WithLogger 指定工厂使用的 Logger，默认使用全局 Logger
func WithLogger(logger logging.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New 创建工厂，name 用于日志和错误信息
func New[T any](name string, opts ...Option) *Factory[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.GetLogger()
	}
	return &Factory[T]{
		name:   name,
		ctors:  make(map[string]Constructor[T]),
		logger: o.logger.WithFields(logging.String("factory", name)),
	}
}

// normalize 归一选择键
func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Name 返回工厂名称
func (f *Factory[T]) Name() string {
	return f.name
}

// Register 注册构造函数
//
// 空键返回验证错误，重复键（忽略大小写）返回冲突错误。
func (f *Factory[T]) Register(key string, ctor Constructor[T]) error {
	if err := validation.ValidateRequired(key, "选择键"); err != nil {
		return err
	}
	if ctor == nil {
		return errors.NewError(errors.ErrCodeInvalidInput, "constructor cannot be nil").
			WithContext("key", key)
	}

	norm := normalize(key)

	f.mutex.Lock()
	defer f.mutex.Unlock()
	if _, exists := f.ctors[norm]; exists {
		return errors.NewError(errors.ErrCodeConflict,
			fmt.Sprintf("%s selector %s already registered", f.name, norm))
	}
	f.ctors[norm] = ctor
	return nil
}

// MustRegister 注册构造函数（panic版本），用于包初始化阶段
func (f *Factory[T]) MustRegister(key string, ctor Constructor[T]) *Factory[T] {
	if err := f.Register(key, ctor); err != nil {
		panic(err)
	}
	return f
}

// Resolve 按选择键构造新的能力实例
//
// 未注册的键返回 *errors.UnknownSelectorError，此时不会调用任何构造函数。
func (f *Factory[T]) Resolve(key string) (T, error) {
	f.mutex.RLock()
	ctor, ok := f.ctors[normalize(key)]
	f.mutex.RUnlock()

	if !ok {
		var zero T
		f.logger.Warn(context.Background(), "未知的选择键", logging.String("key", key))
		return zero, errors.NewUnknownSelector(f.name, key)
	}

	f.logger.Debug(context.Background(), "解析选择键", logging.String("key", normalize(key)))
	return ctor(), nil
}

// Has 检查选择键是否已注册
func (f *Factory[T]) Has(key string) bool {
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	_, ok := f.ctors[normalize(key)]
	return ok
}

// Keys 返回所有已注册的（归一后的）选择键，按字典序排列
func (f *Factory[T]) Keys() []string {
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	keys := make([]string, 0, len(f.ctors))
	for k := range f.ctors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
