package payment

import (
	"patternkit/patterns/adapter"
	"patternkit/showcase/notify"
)

// 选择键
const (
	KeyInternal  = "internal"
	KeyPayPal    = "paypal"
	KeyExternalA = "externala"
	KeyExternalB = "externalb"
	KeyStripe    = "stripe"
)

// NewFactory 创建支付处理器工厂，所有协作者的输出写到 sink
func NewFactory(sink notify.Sink, opts ...adapter.Option) *adapter.Factory[Processor] {
	return adapter.New[Processor]("payment", opts...).
		MustRegister(KeyInternal, func() Processor { return NewInternalProcessor(sink) }).
		MustRegister(KeyPayPal, func() Processor { return NewPayPalProcessor(sink) }).
		MustRegister(KeyExternalA, func() Processor { return NewAdapterA(NewSystemA(sink)) }).
		MustRegister(KeyExternalB, func() Processor { return NewAdapterB(NewSystemB(sink)) }).
		MustRegister(KeyStripe, func() Processor { return NewStripeAdapter(NewStripeService(sink)) })
}

var defaultFactory = NewFactory(notify.Stdout())

// Resolve 从默认工厂（输出到标准输出）解析处理器
func Resolve(key string) (Processor, error) {
	return defaultFactory.Resolve(key)
}

// Keys 默认工厂的选择键
func Keys() []string {
	return defaultFactory.Keys()
}
