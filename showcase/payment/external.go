package payment

import (
	"patternkit/showcase/notify"
)

// 外部支付系统的桩实现，方法名与 Processor 不兼容，只能通过适配器使用。

// SystemA 外部支付系统 A
type SystemA struct {
	sink notify.Sink
}

func NewSystemA(sink notify.Sink) *SystemA { return &SystemA{sink: sink} }

func (s *SystemA) MakePayment(amount float64) {
	s.sink.Emit("Making payment of " + notify.Amount(amount) + " via External Payment System A.")
}

func (s *SystemA) MakeRefund(amount float64) {
	s.sink.Emit("Making refund of " + notify.Amount(amount) + " via External Payment System A.")
}

// SystemB 外部支付系统 B
type SystemB struct {
	sink notify.Sink
}

func NewSystemB(sink notify.Sink) *SystemB { return &SystemB{sink: sink} }

func (s *SystemB) SendPayment(amount float64) {
	s.sink.Emit("Sending payment of " + notify.Amount(amount) + " via External Payment System B.")
}

func (s *SystemB) ProcessRefund(amount float64) {
	s.sink.Emit("Processing refund of " + notify.Amount(amount) + " via External Payment System B.")
}

// StripeService Stripe 支付服务
type StripeService struct {
	sink notify.Sink
}

func NewStripeService(sink notify.Sink) *StripeService { return &StripeService{sink: sink} }

func (s *StripeService) MakeTransaction(totalAmount float64) {
	s.sink.Emit("Processing Stripe payment of $" + notify.Amount(totalAmount))
}

func (s *StripeService) ReverseTransaction(totalAmount float64) {
	s.sink.Emit("Reversing Stripe payment of $" + notify.Amount(totalAmount))
}
