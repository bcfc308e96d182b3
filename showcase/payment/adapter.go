package payment

// SystemAClient 外部系统 A 的方法集
type SystemAClient interface {
	MakePayment(amount float64)
	MakeRefund(amount float64)
}

// SystemBClient 外部系统 B 的方法集
type SystemBClient interface {
	SendPayment(amount float64)
	ProcessRefund(amount float64)
}

// StripeClient Stripe 的方法集
type StripeClient interface {
	MakeTransaction(totalAmount float64)
	ReverseTransaction(totalAmount float64)
}

// AdapterA 把 Processor 调用转换为系统 A 的调用
type AdapterA struct {
	system SystemAClient
}

func NewAdapterA(system SystemAClient) *AdapterA { return &AdapterA{system: system} }

func (a *AdapterA) Process(amount float64) { a.system.MakePayment(amount) }
func (a *AdapterA) Refund(amount float64)  { a.system.MakeRefund(amount) }

// AdapterB 把 Processor 调用转换为系统 B 的调用
type AdapterB struct {
	system SystemBClient
}

func NewAdapterB(system SystemBClient) *AdapterB { return &AdapterB{system: system} }

func (a *AdapterB) Process(amount float64) { a.system.SendPayment(amount) }
func (a *AdapterB) Refund(amount float64)  { a.system.ProcessRefund(amount) }

// StripeAdapter 把 Processor 调用转换为 Stripe 交易
type StripeAdapter struct {
	service StripeClient
}

func NewStripeAdapter(service StripeClient) *StripeAdapter {
	return &StripeAdapter{service: service}
}

func (a *StripeAdapter) Process(amount float64) { a.service.MakeTransaction(amount) }
func (a *StripeAdapter) Refund(amount float64)  { a.service.ReverseTransaction(amount) }
