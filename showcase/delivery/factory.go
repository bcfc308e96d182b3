package delivery

import (
	"patternkit/patterns/adapter"
	"patternkit/showcase/notify"
)

// 选择键
const (
	KeyInternal  = "internal"
	KeyExternalA = "externala"
	KeyExternalB = "externalb"
)

// NewFactory 创建配送服务工厂
func NewFactory(sink notify.Sink, opts ...adapter.Option) *adapter.Factory[Service] {
	return adapter.New[Service]("delivery", opts...).
		MustRegister(KeyInternal, func() Service { return NewInternalService(sink) }).
		MustRegister(KeyExternalA, func() Service { return NewLogisticsAdapterA(NewLogisticsA(sink)) }).
		MustRegister(KeyExternalB, func() Service { return NewLogisticsAdapterB(NewLogisticsB(sink)) })
}

var defaultFactory = NewFactory(notify.Stdout())

// Resolve 从默认工厂（输出到标准输出）解析配送服务
func Resolve(key string) (Service, error) {
	return defaultFactory.Resolve(key)
}
