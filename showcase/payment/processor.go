// Package payment 支付处理：统一的 Processor 接口与外部支付系统适配器
package payment

import (
	"patternkit/showcase/notify"
)

// Processor 支付能力
type Processor interface {
	Process(amount float64)
	Refund(amount float64)
}

// InternalProcessor 内部支付系统（直接实现）
type InternalProcessor struct {
	sink notify.Sink
}

// NewInternalProcessor 创建内部支付处理器
func NewInternalProcessor(sink notify.Sink) *InternalProcessor {
	return &InternalProcessor{sink: sink}
}

func (p *InternalProcessor) Process(amount float64) {
	p.sink.Emit("Processing payment of " + notify.Amount(amount) + " via internal system.")
}

func (p *InternalProcessor) Refund(amount float64) {
	p.sink.Emit("Refunding payment of " + notify.Amount(amount) + " via internal system.")
}

// PayPalProcessor PayPal 支付（直接实现）
type PayPalProcessor struct {
	sink notify.Sink
}

// NewPayPalProcessor 创建 PayPal 支付处理器
func NewPayPalProcessor(sink notify.Sink) *PayPalProcessor {
	return &PayPalProcessor{sink: sink}
}

func (p *PayPalProcessor) Process(amount float64) {
	p.sink.Emit("Processing PayPal payment of $" + notify.Amount(amount))
}

func (p *PayPalProcessor) Refund(amount float64) {
	p.sink.Emit("Refunding PayPal payment of $" + notify.Amount(amount))
}
